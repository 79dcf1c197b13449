// Command boxkit resolves, renders and watches box layout documents.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/boxkit/cmd/boxkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
