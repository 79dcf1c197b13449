package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/boxkit/pkg/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a document to a debug PNG",
		Long: `Render a layout document to a PNG with one outline per node.

Outlines are coloured by tree depth and labelled with node ids. Without
-o the image is written to the configured output directory as <doc>.png.

Flags:
  -o, --output FILE    Output file
  --scale N            Pixel scale (default from config, 1)
  --no-labels          Don't draw node ids
  --no-fill            Don't fill outlines
  --flag NAME[=BOOL]   Set a flag for conditional nodes (repeatable)
  --width N            Override the canvas width
  --height N           Override the canvas height`,
		Usage: "boxkit render <doc> [-o out.png] [--scale N] [--no-labels] [--no-fill]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, rest, err := parseDocArgs(args, "-o", "--output", "--scale")
	if err != nil {
		return fmt.Errorf("%w\n\nUsage: boxkit render <doc> [-o out.png]", err)
	}

	var output string
	var scale float64
	drawOpts := render.DefaultOptions()
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch arg {
		case "-o", "--output":
			if i+1 < len(rest) {
				output = rest[i+1]
				i++
			} else {
				return fmt.Errorf("%s requires a file path", arg)
			}
		case "--scale":
			if i+1 >= len(rest) {
				return fmt.Errorf("--scale requires a value")
			}
			if scale, err = parseScale(rest[i+1]); err != nil {
				return err
			}
			i++
		case "--no-labels":
			drawOpts.Labels = false
		case "--no-fill":
			drawOpts.Fill = false
		default:
			switch {
			case strings.HasPrefix(arg, "--output="):
				output = strings.TrimPrefix(arg, "--output=")
			case strings.HasPrefix(arg, "--scale="):
				if scale, err = parseScale(strings.TrimPrefix(arg, "--scale=")); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown flag %q", arg)
			}
		}
	}

	s, err := openSession(opts)
	if err != nil {
		return err
	}

	drawOpts.Scale = s.cfg.Scale
	if scale > 0 {
		drawOpts.Scale = scale
	}
	if output == "" {
		if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		base := strings.TrimSuffix(filepath.Base(opts.path), filepath.Ext(opts.path))
		output = filepath.Join(s.cfg.OutputDir, base+".png")
	}

	if err := render.WriteFile(output, s.resolve(), s.canvas, drawOpts); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s (%sx%s @%sx)\n", output,
		formatFloat(s.canvas.Width), formatFloat(s.canvas.Height), formatFloat(drawOpts.Scale))
	return nil
}

func parseScale(value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("--scale must be a positive number (got %q)", value)
	}
	return v, nil
}
