// Package persist encodes a layout.Layout to and from a YAML document: the
// generator catalog, the wiring, and every tile's grid position, tagged
// with a time-sortable revision identifier.
package persist

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/diagrammatic/hyperwire/grid"
	"github.com/diagrammatic/hyperwire/hypergraph"
	"github.com/diagrammatic/hyperwire/layout"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrUnknownOwner indicates a wire record names an owner that is neither
// "boundary" nor "gen:<id>".
var ErrUnknownOwner = errors.New("persist: unrecognized port owner")

// ErrUnknownRole indicates a wire record names a role that is neither
// "source" nor "target".
var ErrUnknownRole = errors.New("persist: unrecognized port role")

// Document is the on-disk representation of one layout revision.
type Document struct {
	Revision   string            `yaml:"revision"`
	Generators []GeneratorRecord `yaml:"generators"`
	Wires      []WireRecord      `yaml:"wires"`
	Placements []PlacementRecord `yaml:"placements"`
}

// GeneratorRecord is one entry in the signature catalog.
type GeneratorRecord struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Inputs  int    `yaml:"inputs"`
	Outputs int    `yaml:"outputs"`
}

// PortRecord is the textual form of a hypergraph.Port: Owner is either
// "boundary" or "gen:<id>".
type PortRecord struct {
	Role  string `yaml:"role"`
	Owner string `yaml:"owner"`
	Index int    `yaml:"index"`
}

// WireRecord is one connection between two ports.
type WireRecord struct {
	Source PortRecord `yaml:"source"`
	Target PortRecord `yaml:"target"`
}

// PlacementRecord is one tile's grid cell: Kind is "generator" or
// "pseudo"; Gen is meaningful only for "generator".
type PlacementRecord struct {
	Kind string `yaml:"kind"`
	Gen  int    `yaml:"gen,omitempty"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// NewRevision mints a fresh, time-sortable revision tag.
func NewRevision() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// Encode converts l into a Document tagged with revision.
func Encode(l *layout.Layout, revision string) Document {
	g := l.Graph()

	doc := Document{Revision: revision}

	for _, e := range g.Edges() {
		sig, _ := g.Signature(e)
		doc.Generators = append(doc.Generators, GeneratorRecord{
			ID:      int(e),
			Name:    signatureName(sig),
			Inputs:  sig.Inputs(),
			Outputs: sig.Outputs(),
		})
	}

	g.EachWire(func(s, t hypergraph.Port) {
		doc.Wires = append(doc.Wires, WireRecord{
			Source: encodePort(s),
			Target: encodePort(t),
		})
	})

	for _, tile := range l.Tiles() {
		pos, ok := l.Position(tile)
		if !ok {
			continue
		}
		rec := PlacementRecord{X: pos.X, Y: pos.Y}
		if tile.Kind == layout.TileGenerator {
			rec.Kind = "generator"
			rec.Gen = int(tile.Gen)
		} else {
			rec.Kind = "pseudo"
		}
		doc.Placements = append(doc.Placements, rec)
	}

	return doc
}

// signatureName extracts a display name for sig, falling back to a
// positional label for Signature implementations that are not a
// hypergraph.BasicSignature.
func signatureName(sig hypergraph.Signature) string {
	if bs, ok := sig.(hypergraph.BasicSignature); ok {
		return bs.Name
	}

	return fmt.Sprintf("sig(%d,%d)", sig.Inputs(), sig.Outputs())
}

// encodePort renders p as a PortRecord.
func encodePort(p hypergraph.Port) PortRecord {
	role := "source"
	if p.Role == hypergraph.Target {
		role = "target"
	}
	owner := "boundary"
	if e, isGen := p.Owner.Edge(); isGen {
		owner = fmt.Sprintf("gen:%d", e)
	}

	return PortRecord{Role: role, Owner: owner, Index: p.Index}
}

// decodePort parses a PortRecord back into a hypergraph.Port.
func decodePort(r PortRecord) (hypergraph.Port, error) {
	var role hypergraph.PortRole
	switch r.Role {
	case "source":
		role = hypergraph.Source
	case "target":
		role = hypergraph.Target
	default:
		return hypergraph.Port{}, fmt.Errorf("%w: %q", ErrUnknownRole, r.Role)
	}

	var owner hypergraph.PortOwner
	if r.Owner == "boundary" {
		owner = hypergraph.Boundary()
	} else {
		var id int
		if _, err := fmt.Sscanf(r.Owner, "gen:%d", &id); err != nil {
			return hypergraph.Port{}, fmt.Errorf("%w: %q", ErrUnknownOwner, r.Owner)
		}
		owner = hypergraph.Gen(hypergraph.HyperEdgeId(id))
	}

	return hypergraph.Port{Role: role, Owner: owner, Index: r.Index}, nil
}

// Marshal renders doc as YAML.
func Marshal(doc Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Unmarshal parses YAML into a Document, rejecting unrecognized fields so
// a typo in a hand-edited layout file surfaces immediately rather than
// silently losing data.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("persist: failed to parse YAML: %w", err)
	}

	return doc, nil
}

// ToLayout reconstructs a Hypergraph and Layout from doc.
func ToLayout(doc Document) (*layout.Layout, error) {
	sigs := make(map[hypergraph.HyperEdgeId]hypergraph.Signature, len(doc.Generators))
	maxID := hypergraph.HyperEdgeId(-1)
	for _, rec := range doc.Generators {
		id := hypergraph.HyperEdgeId(rec.ID)
		sigs[id] = hypergraph.BasicSignature{Name: rec.Name, K: rec.Inputs, N: rec.Outputs}
		if id > maxID {
			maxID = id
		}
	}

	wires := make([]hypergraph.Wire, 0, len(doc.Wires))
	for _, rec := range doc.Wires {
		s, err := decodePort(rec.Source)
		if err != nil {
			return nil, err
		}
		t, err := decodePort(rec.Target)
		if err != nil {
			return nil, err
		}
		wires = append(wires, hypergraph.Wire{Source: s, Target: t})
	}

	g := hypergraph.FromParts(sigs, wires, maxID+1)

	l, err := layout.New(g)
	if err != nil {
		return nil, err
	}

	for _, rec := range doc.Placements {
		if rec.Kind != "generator" {
			continue // pseudonode placements are re-derived by layout.New.
		}
		tile := layout.Tile{Kind: layout.TileGenerator, Gen: hypergraph.HyperEdgeId(rec.Gen)}
		if err := l.Move(tile, grid.V2{X: rec.X, Y: rec.Y}); err != nil {
			return nil, err
		}
	}

	return l, nil
}
