// Package netfile loads min-cost-flow network descriptions from disk.
//
// Two formats are accepted. The text format is a line-oriented edge list:
//
//	# comment
//	nodes 4
//	source 0        # optional
//	sink 3          # optional
//	limit 3         # optional
//	edge 0 1 2 1    # from to capacity cost
//
// The YAML format carries the same fields:
//
//	nodes: 4
//	source: 0
//	sink: 3
//	edges:
//	  - {from: 0, to: 1, capacity: 2, cost: 1}
package netfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcflow/flow"
)

// Sentinel errors for malformed descriptions.
var (
	// ErrSyntax indicates a line or document that cannot be parsed.
	ErrSyntax = errors.New("netfile: syntax error")

	// ErrInvalid indicates a parsed description that cannot describe a network.
	ErrInvalid = errors.New("netfile: invalid network")
)

// Format selects the on-disk encoding.
type Format int

const (
	// FormatText is the line-oriented edge list.
	FormatText Format = iota
	// FormatYAML is the YAML document form.
	FormatYAML
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}

	return "text"
}

// FormatFromPath picks FormatYAML for .yaml/.yml files and FormatText otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Edge is one directed edge of a description.
type Edge struct {
	From     int   `yaml:"from"`
	To       int   `yaml:"to"`
	Capacity int64 `yaml:"capacity"`
	Cost     int64 `yaml:"cost"`
}

// Description is a parsed network. Source, Sink and Limit are optional and
// nil when absent.
type Description struct {
	Nodes  int    `yaml:"nodes"`
	Source *int   `yaml:"source,omitempty"`
	Sink   *int   `yaml:"sink,omitempty"`
	Limit  *int64 `yaml:"limit,omitempty"`
	Edges  []Edge `yaml:"edges"`
}

// Load reads and validates the description at path, choosing the format by
// extension.
func Load(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Parse reads a description in the given format and validates it.
func Parse(r io.Reader, format Format) (*Description, error) {
	var (
		d   *Description
		err error
	)
	switch format {
	case FormatYAML:
		d, err = parseYAML(r)
	default:
		d, err = parseText(r)
	}
	if err != nil {
		return nil, err
	}
	if err = d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

func parseYAML(r io.Reader) (*Description, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Description
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrSyntax)
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return &d, nil
}

func parseText(r io.Reader) (*Description, error) {
	d := &Description{Nodes: -1}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := d.apply(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("netfile: reading text: %w", err)
	}
	if d.Nodes < 0 {
		return nil, fmt.Errorf("%w: missing nodes directive", ErrSyntax)
	}

	return d, nil
}

// apply folds one non-empty text line into d.
func (d *Description) apply(fields []string) error {
	want := map[string]int{"nodes": 2, "source": 2, "sink": 2, "limit": 2, "edge": 5}
	n, ok := want[fields[0]]
	if !ok {
		return fmt.Errorf("%w: unknown directive %q", ErrSyntax, fields[0])
	}
	if len(fields) != n {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrSyntax, fields[0], n-1, len(fields)-1)
	}

	nums := make([]int64, 0, n-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrSyntax, f)
		}
		nums = append(nums, v)
	}

	switch fields[0] {
	case "nodes":
		if d.Nodes >= 0 {
			return fmt.Errorf("%w: duplicate nodes directive", ErrSyntax)
		}
		d.Nodes = int(nums[0])
		if d.Nodes < 0 {
			return fmt.Errorf("%w: negative node count %d", ErrInvalid, nums[0])
		}
	case "source":
		v := int(nums[0])
		d.Source = &v
	case "sink":
		v := int(nums[0])
		d.Sink = &v
	case "limit":
		v := nums[0]
		d.Limit = &v
	case "edge":
		d.Edges = append(d.Edges, Edge{
			From:     int(nums[0]),
			To:       int(nums[1]),
			Capacity: nums[2],
			Cost:     nums[3],
		})
	}

	return nil
}

// Validate checks node ranges and capacities without building a network.
func (d *Description) Validate() error {
	if d.Nodes < 0 {
		return fmt.Errorf("%w: negative node count %d", ErrInvalid, d.Nodes)
	}
	inRange := func(v int) bool { return v >= 0 && v < d.Nodes }
	if d.Source != nil && !inRange(*d.Source) {
		return fmt.Errorf("%w: source %d out of range", ErrInvalid, *d.Source)
	}
	if d.Sink != nil && !inRange(*d.Sink) {
		return fmt.Errorf("%w: sink %d out of range", ErrInvalid, *d.Sink)
	}
	if d.Limit != nil && *d.Limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalid, *d.Limit)
	}
	for i, e := range d.Edges {
		if !inRange(e.From) || !inRange(e.To) {
			return fmt.Errorf("%w: edge %d (%d→%d) endpoint out of range", ErrInvalid, i, e.From, e.To)
		}
		if e.Capacity < 0 {
			return fmt.Errorf("%w: edge %d (%d→%d) has negative capacity %d", ErrInvalid, i, e.From, e.To, e.Capacity)
		}
	}

	return nil
}

// Build materializes the description as a network. Edge IDs equal the
// positions of the edges in d.Edges.
func (d *Description) Build() (*flow.Network[int64], error) {
	nw, err := flow.NewNetwork[int64](d.Nodes)
	if err != nil {
		return nil, err
	}
	for i, e := range d.Edges {
		if _, err = nw.AddEdge(e.From, e.To, e.Capacity, e.Cost); err != nil {
			return nil, fmt.Errorf("netfile: edge %d: %w", i, err)
		}
	}

	return nw, nil
}

// FromNetwork describes the edges of nw in ID order, with the given
// endpoints. Flows are not recorded.
func FromNetwork(nw *flow.Network[int64], source, sink int) *Description {
	d := &Description{
		Nodes:  nw.NodeCount(),
		Source: &source,
		Sink:   &sink,
		Edges:  make([]Edge, 0, nw.EdgeCount()),
	}
	for _, a := range nw.Arcs() {
		d.Edges = append(d.Edges, Edge{From: a.From, To: a.To, Capacity: a.Capacity, Cost: a.Cost})
	}

	return d
}

// Write encodes d in the given format. The output parses back to an equal
// description.
func (d *Description) Write(w io.Writer, format Format) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("netfile: encoding yaml: %w", err)
		}
		return enc.Close()
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "nodes %d\n", d.Nodes)
	if d.Source != nil {
		fmt.Fprintf(bw, "source %d\n", *d.Source)
	}
	if d.Sink != nil {
		fmt.Fprintf(bw, "sink %d\n", *d.Sink)
	}
	if d.Limit != nil {
		fmt.Fprintf(bw, "limit %d\n", *d.Limit)
	}
	for _, e := range d.Edges {
		fmt.Fprintf(bw, "edge %d %d %d %d\n", e.From, e.To, e.Capacity, e.Cost)
	}

	return bw.Flush()
}
