// SPDX-License-Identifier: MIT

// Package instance reads and writes VRP instances as YAML documents:
//
//	name: le-havre-small
//	capacity: 2
//	depot: D
//	clients: [A, B, C]
//	nodes: [spare]          # optional, vertices without edges
//	edges:
//	  - {from: D, to: A, length: 1}
//	  - {from: A, to: B, length: 1.5}
//
// Client order in the document is the client index order of the instance.
// Parallel edges are allowed.
package instance

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/vrp"
)

// ErrInvalidDocument wraps every structural problem found in a document.
var ErrInvalidDocument = errors.New("instance: invalid document")

// Document is the YAML form of an instance.
type Document struct {
	Name     string    `yaml:"name"`
	Capacity int       `yaml:"capacity"`
	Depot    string    `yaml:"depot"`
	Clients  []string  `yaml:"clients"`
	Nodes    []string  `yaml:"nodes,omitempty"`
	Edges    []EdgeDoc `yaml:"edges"`
}

// EdgeDoc is one undirected road segment.
type EdgeDoc struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Length *float64 `yaml:"length"`
}

// Decode reads one YAML document from r and builds the instance with opts.
// Unknown fields are rejected.
func Decode(r io.Reader, opts ...vrp.Option) (*vrp.Instance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return doc.Build(opts...)
}

// LoadFile decodes the instance stored at path.
func LoadFile(path string, opts ...vrp.Option) (*vrp.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	in, err := Decode(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("instance: %s: %w", path, err)
	}

	return in, nil
}

// Build validates the document and returns the instance it describes.
func (d *Document) Build(opts ...vrp.Option) (*vrp.Instance, error) {
	if d.Depot == "" {
		return nil, fmt.Errorf("%w: depot is required", ErrInvalidDocument)
	}
	if d.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be ≥ 1, got %d", ErrInvalidDocument, d.Capacity)
	}

	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i, id := range d.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: nodes[%d]: %v", ErrInvalidDocument, i, err)
		}
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edges[%d]: from and to are required", ErrInvalidDocument, i)
		}
		if e.Length == nil {
			return nil, fmt.Errorf("%w: edges[%d] %s—%s: length is required", ErrInvalidDocument, i, e.From, e.To)
		}
		if *e.Length < 0 {
			return nil, fmt.Errorf("%w: edges[%d] %s—%s: negative length %g", ErrInvalidDocument, i, e.From, e.To, *e.Length)
		}
		if _, err := g.AddEdge(e.From, e.To, *e.Length); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] %s—%s: %v", ErrInvalidDocument, i, e.From, e.To, err)
		}
	}

	in, err := vrp.NewInstance(d.Name, g, opts...)
	if err != nil {
		return nil, err
	}
	if err = in.SetDepot(d.Depot); err != nil {
		return nil, fmt.Errorf("%w: depot: %w", ErrInvalidDocument, err)
	}
	for i, c := range d.Clients {
		if err = in.AddClient(c); err != nil {
			return nil, fmt.Errorf("%w: clients[%d]: %w", ErrInvalidDocument, i, err)
		}
	}
	if err = in.SetCapacity(d.Capacity); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return in, nil
}

// DocumentOf captures in as a Document. Vertices without edges are listed
// under nodes.
func DocumentOf(in *vrp.Instance) (*Document, error) {
	depot, err := in.Depot()
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	capacity, err := in.Capacity()
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}

	g := in.Graph()
	doc := &Document{
		Name:     in.Name(),
		Capacity: capacity,
		Depot:    depot,
		Clients:  in.Clients(),
	}
	touched := make(map[string]bool)
	for _, e := range g.Edges() {
		length := e.Weight
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Length: &length})
		touched[e.From], touched[e.To] = true, true
	}
	for _, v := range g.Vertices() {
		if !touched[v] {
			doc.Nodes = append(doc.Nodes, v)
		}
	}

	return doc, nil
}

// Encode writes in to w as YAML.
func Encode(w io.Writer, in *vrp.Instance) error {
	doc, err := DocumentOf(in)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("instance: encode: %w", err)
	}

	return enc.Close()
}

// SaveFile writes in to path as YAML.
func SaveFile(path string, in *vrp.Instance) error {
	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("instance: write %s: %w", path, err)
	}

	return nil
}
