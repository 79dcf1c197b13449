package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Flags holds the named booleans conditional nodes are driven by.
type Flags map[string]bool

// Enabled evaluates a "when" expression: a flag name, optionally prefixed
// with "!" to negate it. Unknown flags are false.
func (f Flags) Enabled(expr string) bool {
	name, negate := strings.CutPrefix(strings.TrimSpace(expr), "!")
	return f[strings.TrimSpace(name)] != negate
}

// Merge returns a new set with other's values overriding f's.
func (f Flags) Merge(other Flags) Flags {
	out := make(Flags, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// ParseFlags parses command-line style flag specs: "name" and "name=true"
// enable a flag, "!name" and "name=false" disable it.
func ParseFlags(specs []string) (Flags, error) {
	out := make(Flags, len(specs))
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		if name, ok := strings.CutPrefix(spec, "!"); ok {
			out[name] = false
			continue
		}
		name, value, found := strings.Cut(spec, "=")
		if !found {
			out[name] = true
			continue
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid flag %q: %w", spec, err)
		}
		out[name] = b
	}
	return out, nil
}
