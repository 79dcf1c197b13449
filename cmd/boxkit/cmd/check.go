package cmd

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-drift/boxkit/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate layout documents",
		Long: `Decode, validate and lay out one or more documents.

Each document is checked for a supported version, known node kinds and
fields, child counts, unique ids and flag syntax, then laid out once on
its canvas. Problems are reported per document.`,
		Usage: "boxkit check <doc>... [--flag name]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	var paths, shared []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--flag" || arg == "--width" || arg == "--height":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", arg)
			}
			shared = append(shared, arg, args[i+1])
			i++
		case strings.HasPrefix(arg, "-"):
			shared = append(shared, arg)
		default:
			paths = append(paths, arg)
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("document path is required\n\nUsage: boxkit check <doc>...")
	}

	failed := 0
	for _, path := range paths {
		summary, err := checkDocument(path, shared)
		if err != nil {
			failed++
			reportError("check", path, err)
			continue
		}
		fmt.Fprintf(stdout, "ok   %s: %s\n", path, summary)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(paths))
	}
	return nil
}

// checkDocument opens and lays out one document and summarises its kinds.
func checkDocument(path string, shared []string) (string, error) {
	opts, rest, err := parseDocArgs(append([]string{path}, shared...))
	if err != nil {
		return "", err
	}
	if len(rest) > 0 {
		return "", fmt.Errorf("unknown flag %q", rest[0])
	}
	s, err := openSession(opts)
	if err != nil {
		return "", err
	}

	counts := make(map[string]int)
	nodes := 0
	for _, p := range s.resolve() {
		counts[p.Kind]++
		nodes++
	}
	kinds := make([]string, 0, len(counts))
	for k, n := range counts {
		kinds = append(kinds, fmt.Sprintf("%s=%d", k, n))
	}
	sort.Strings(kinds)
	return fmt.Sprintf("%d nodes (%s)", nodes, strings.Join(kinds, ", ")), nil
}

// reportError sends err to the error handler, wrapping plain errors.
func reportError(op, path string, err error) {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		kind := errors.KindValidate
		var nodeErr *errors.NodeError
		if !stderrors.As(err, &nodeErr) {
			kind = errors.KindUnknown
		}
		e = errors.New(op, kind, path, err)
	}
	errors.Report(e)
}
