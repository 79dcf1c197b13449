package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/boxkit/pkg/document"
	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "resolve",
		Short: "Print the resolved frames of a document",
		Long: `Resolve a layout document and print the frame of every node.

Nodes are listed depth-first and indented by depth. Frames are relative to
the parent's coordinate space; screen rects are absolute. Hidden
conditional nodes are dimmed.

Flags:
  --flag NAME[=BOOL]   Set a flag for conditional nodes (repeatable, !NAME disables)
  --width N            Override the canvas width
  --height N           Override the canvas height
  --screen             Print screen rects instead of frames
  --yaml               Print YAML instead of a table`,
		Usage: "boxkit resolve <doc> [--flag name] [--width N] [--height N] [--screen] [--yaml]",
		Run:   runResolve,
	})
}

func runResolve(args []string) error {
	opts, rest, err := parseDocArgs(args)
	if err != nil {
		return fmt.Errorf("%w\n\nUsage: boxkit resolve <doc>", err)
	}
	var asYAML, screen bool
	for _, arg := range rest {
		switch arg {
		case "--yaml":
			asYAML = true
		case "--screen":
			screen = true
		default:
			return fmt.Errorf("unknown flag %q", arg)
		}
	}

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	placements := s.resolve()
	if asYAML {
		return writeYAML(stdout, s, placements)
	}
	writeTable(newOutput(stdout, s.color()), s, placements, screen)
	return nil
}

func newOutput(w io.Writer, color bool) *termenv.Output {
	if !color {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

// writeTable prints one row per placement, with ids indented by depth and
// coloured like the debug render.
func writeTable(out *termenv.Output, s *session, placements []document.Placement, screen bool) {
	idWidth, kindWidth := len("ID"), len("KIND")
	for _, p := range placements {
		idWidth = max(idWidth, 2*p.Depth+len(p.ID))
		kindWidth = max(kindWidth, len(p.Kind))
	}

	title := s.doc.Name
	if title == "" {
		title = "document"
	}
	fmt.Fprintf(out, "%s %s (%s x %s, %d passes)\n",
		out.String(title).Bold(), out.String("v"+strings.TrimPrefix(s.doc.Version, "v")).Faint(),
		formatFloat(s.canvas.Width), formatFloat(s.canvas.Height), s.tree.Passes())

	header := fmt.Sprintf("%-*s  %-*s  %8s %8s %8s %8s", idWidth, "ID", kindWidth, "KIND", "X", "Y", "W", "H")
	fmt.Fprintln(out, out.String(header).Underline())

	for _, p := range placements {
		r := p.Frame
		if screen {
			r = p.Screen
		}
		id := fmt.Sprintf("%-*s", idWidth, strings.Repeat("  ", p.Depth)+p.ID)
		kind := fmt.Sprintf("%-*s", kindWidth, p.Kind)
		nums := fmt.Sprintf("%8s %8s %8s %8s",
			formatFloat(r.MinX()), formatFloat(r.MinY()), formatFloat(r.Width()), formatFloat(r.Height()))

		if p.Hidden {
			fmt.Fprintln(out, out.String(id+"  "+kind+"  "+nums+"  (hidden)").Faint())
			continue
		}
		c := out.Color(render.DepthColor(p.Depth).Hex())
		fmt.Fprintf(out, "%s  %s  %s\n", out.String(id).Foreground(c), kind, nums)
	}
}

type resolvedOutput struct {
	Name       string            `yaml:"name,omitempty"`
	Version    string            `yaml:"version"`
	Canvas     []float64         `yaml:"canvas,flow"`
	Passes     int               `yaml:"passes"`
	Placements []placementOutput `yaml:"placements"`
}

type placementOutput struct {
	ID     string    `yaml:"id"`
	Kind   string    `yaml:"kind"`
	Depth  int       `yaml:"depth"`
	Frame  []float64 `yaml:"frame,flow"`
	Screen []float64 `yaml:"screen,flow"`
	Hidden bool      `yaml:"hidden,omitempty"`
}

func writeYAML(w io.Writer, s *session, placements []document.Placement) error {
	out := resolvedOutput{
		Name:       s.doc.Name,
		Version:    s.doc.Version,
		Canvas:     []float64{s.canvas.Width, s.canvas.Height},
		Passes:     s.tree.Passes(),
		Placements: make([]placementOutput, 0, len(placements)),
	}
	for _, p := range placements {
		out.Placements = append(out.Placements, placementOutput{
			ID:     p.ID,
			Kind:   p.Kind,
			Depth:  p.Depth,
			Frame:  rectValues(p.Frame),
			Screen: rectValues(p.Screen),
			Hidden: p.Hidden,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode placements: %w", err)
	}
	return enc.Close()
}

func rectValues(r geometry.Rect) []float64 {
	return []float64{r.MinX(), r.MinY(), r.Width(), r.Height()}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
