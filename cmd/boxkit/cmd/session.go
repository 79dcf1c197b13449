package cmd

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/go-drift/boxkit/cmd/boxkit/internal/config"
	"github.com/go-drift/boxkit/pkg/document"
	"github.com/go-drift/boxkit/pkg/geometry"
)

// docOptions are the flags shared by every command that opens a document.
type docOptions struct {
	path   string
	flags  []string
	width  float64
	height float64
}

// parseDocArgs consumes the document path and the shared flags
// (--flag, --width, --height) and returns the remaining arguments.
// valueFlags name command flags whose value is the following argument.
func parseDocArgs(args []string, valueFlags ...string) (docOptions, []string, error) {
	var opts docOptions
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case "--flag", "--width", "--height":
			if !hasValue {
				if i+1 >= len(args) {
					return opts, nil, fmt.Errorf("%s requires a value", name)
				}
				value = args[i+1]
				i++
			}
		default:
			if strings.HasPrefix(arg, "-") {
				rest = append(rest, arg)
				if slices.Contains(valueFlags, arg) && i+1 < len(args) {
					rest = append(rest, args[i+1])
					i++
				}
				continue
			}
			if opts.path != "" {
				return opts, nil, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.path = arg
			continue
		}

		switch name {
		case "--flag":
			opts.flags = append(opts.flags, value)
		case "--width", "--height":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || v <= 0 {
				return opts, nil, fmt.Errorf("%s must be a positive number (got %q)", name, value)
			}
			if name == "--width" {
				opts.width = v
			} else {
				opts.height = v
			}
		}
	}
	if opts.path == "" {
		return opts, nil, fmt.Errorf("document path is required")
	}
	return opts, rest, nil
}

// session is a loaded document with its project configuration.
type session struct {
	cfg    *config.Resolved
	doc    *document.Document
	tree   *document.Tree
	canvas geometry.Size
}

// openSession loads the project config around the document, then decodes
// and builds it. Flags apply in increasing priority: config, document,
// command line.
func openSession(opts docOptions) (*session, error) {
	root, err := config.FindProjectRoot(filepath.Dir(opts.path))
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(root, configOverride)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	doc, err := document.Load(opts.path)
	if err != nil {
		return nil, err
	}
	cli, err := document.ParseFlags(opts.flags)
	if err != nil {
		return nil, err
	}
	tree, err := document.Build(doc, cfg.Flags.Merge(doc.Flags).Merge(cli))
	if err != nil {
		return nil, err
	}

	canvas := doc.Canvas.Size(cfg.Canvas)
	if opts.width > 0 {
		canvas.Width = opts.width
	}
	if opts.height > 0 {
		canvas.Height = opts.height
	}
	return &session{cfg: cfg, doc: doc, tree: tree, canvas: canvas}, nil
}

// resolve lays the tree out on the session canvas.
func (s *session) resolve() []document.Placement {
	return s.tree.Resolve(geometry.Rect{Size: s.canvas})
}

// color reports whether output should be coloured.
func (s *session) color() bool {
	return s.cfg.Color && !noColor
}
