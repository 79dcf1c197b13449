// Package document decodes declarative layout documents into layout trees.
//
// A document is a YAML or TOML file describing a tree of nodes. Leaves are
// in-memory host views ("view", "scroll-view"); every other kind maps to one
// composite from package layouts. A built [Tree] resolves into an ordered
// list of [Placement] values, one per node, in depth-first order.
//
//	version: "1.0"
//	canvas: {width: 320, height: 480}
//	root:
//	  kind: linear
//	  axis: vertical
//	  spacing: 8
//	  children:
//	    - {kind: view, id: header, height: 44, fill: width}
//	    - {kind: view, id: banner, height: 120, fill: width, when: promo}
package document

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/boxkit/pkg/errors"
	"github.com/go-drift/boxkit/pkg/geometry"
)

// SupportedMajor is the only document major version this package reads.
const SupportedMajor = "v1"

// Format identifies a document encoding.
type Format int

const (
	// FormatYAML is a .yaml or .yml document.
	FormatYAML Format = iota
	// FormatTOML is a .toml document.
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported document extension %q", filepath.Ext(path))
	}
}

// Document is the decoded form of a layout file.
type Document struct {
	Version string          `yaml:"version" toml:"version"`
	Name    string          `yaml:"name,omitempty" toml:"name,omitempty"`
	Canvas  Canvas          `yaml:"canvas,omitempty" toml:"canvas,omitempty"`
	Flags   map[string]bool `yaml:"flags,omitempty" toml:"flags,omitempty"`
	Root    *Node           `yaml:"root" toml:"root"`
}

// Canvas is the default bounds a document is resolved in.
type Canvas struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Size returns the canvas size, or fallback when either side is unset.
func (c Canvas) Size(fallback geometry.Size) geometry.Size {
	if c.Width <= 0 || c.Height <= 0 {
		return fallback
	}
	return geometry.Size{Width: c.Width, Height: c.Height}
}

// Node is one entry of the document tree. Which fields apply depends on Kind.
type Node struct {
	Kind    string `yaml:"kind" toml:"kind"`
	ID      string `yaml:"id,omitempty" toml:"id,omitempty"`
	When    string `yaml:"when,omitempty" toml:"when,omitempty"`
	Margins Insets `yaml:"margins,omitempty" toml:"margins,omitempty"`
	Fill    string `yaml:"fill,omitempty" toml:"fill,omitempty"`

	// Intrinsic size of views, or the fixed extents of "fixed".
	Width    *float64 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height   *float64 `yaml:"height,omitempty" toml:"height,omitempty"`
	Rotation float64  `yaml:"rotation,omitempty" toml:"rotation,omitempty"`

	Axis     string  `yaml:"axis,omitempty" toml:"axis,omitempty"`
	Spacing  float64 `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	Reversed bool    `yaml:"reversed,omitempty" toml:"reversed,omitempty"`
	Gravity  string  `yaml:"gravity,omitempty" toml:"gravity,omitempty"`
	Square   string  `yaml:"square,omitempty" toml:"square,omitempty"`
	Pages    int     `yaml:"pages,omitempty" toml:"pages,omitempty"`

	WidthFactor  *float64 `yaml:"width-factor,omitempty" toml:"width-factor,omitempty"`
	HeightFactor *float64 `yaml:"height-factor,omitempty" toml:"height-factor,omitempty"`
	Report       string   `yaml:"report,omitempty" toml:"report,omitempty"`

	Child     *Node   `yaml:"child,omitempty" toml:"child,omitempty"`
	Children  []*Node `yaml:"children,omitempty" toml:"children,omitempty"`
	Container *Node   `yaml:"container,omitempty" toml:"container,omitempty"`
	Before    *Node   `yaml:"before,omitempty" toml:"before,omitempty"`
	Content   *Node   `yaml:"content,omitempty" toml:"content,omitempty"`
	After     *Node   `yaml:"after,omitempty" toml:"after,omitempty"`
}

// Insets describes margins. All, Horizontal and Vertical are added to the
// individual sides.
type Insets struct {
	All        float64 `yaml:"all,omitempty" toml:"all,omitempty"`
	Horizontal float64 `yaml:"horizontal,omitempty" toml:"horizontal,omitempty"`
	Vertical   float64 `yaml:"vertical,omitempty" toml:"vertical,omitempty"`
	Top        float64 `yaml:"top,omitempty" toml:"top,omitempty"`
	Left       float64 `yaml:"left,omitempty" toml:"left,omitempty"`
	Bottom     float64 `yaml:"bottom,omitempty" toml:"bottom,omitempty"`
	Right      float64 `yaml:"right,omitempty" toml:"right,omitempty"`
}

// EdgeInsets converts i to geometry insets.
func (i Insets) EdgeInsets() geometry.EdgeInsets {
	return geometry.EdgeInsets{
		Top:    i.All + i.Vertical + i.Top,
		Left:   i.All + i.Horizontal + i.Left,
		Bottom: i.All + i.Vertical + i.Bottom,
		Right:  i.All + i.Horizontal + i.Right,
	}
}

// Decode parses a document and checks its version. Unknown fields are
// rejected in both formats.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&doc)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
		if stderrors.Is(err, io.EOF) {
			err = fmt.Errorf("empty document")
		}
	}
	if err != nil {
		return nil, errors.New("document.Decode", errors.KindDecode, "", fmt.Errorf("failed to parse %s: %w", format, err))
	}
	if err := CheckVersion(doc.Version); err != nil {
		return nil, errors.New("document.Decode", errors.KindVersion, "", err)
	}
	return &doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, errors.New("document.Load", errors.KindDecode, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("document.Load", errors.KindIO, path, err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) {
			e.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// CheckVersion accepts semantic versions with major version 1, with or
// without the leading "v" ("1", "1.2", "v1.2.3").
func CheckVersion(version string) error {
	v := strings.TrimSpace(version)
	if v == "" {
		return fmt.Errorf("missing version")
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid version %q", version)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("unsupported version %q (want %s.x)", version, SupportedMajor)
	}
	return nil
}
