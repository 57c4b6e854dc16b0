package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSheet []byte

var (
	// ErrDuplicateID is returned when two entities, passives or tree nodes
	// share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrDuplicateRefDes is returned when two parts share a reference
	// designator, compared case-insensitively.
	ErrDuplicateRefDes = errors.New("duplicate reference designator")
	// ErrDanglingReference is returned when a tree file links to an unknown
	// entity.
	ErrDanglingReference = errors.New("dangling project reference")
	// ErrUnknownType is returned for a symbol tag outside the known set.
	ErrUnknownType = errors.New("unknown part type")
	// ErrEmpty is returned for a catalog without entities.
	ErrEmpty = errors.New("catalog has no entities")
)

// Default returns the sheet embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultSheet)
}

// Load reads and validates a catalog file. An empty path loads the default
// sheet.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the catalog invariants and builds the lookup indexes.
func (c *Catalog) Validate() error {
	if len(c.Entities) == 0 {
		return ErrEmpty
	}

	c.byID = make(map[string]int, len(c.Entities))
	c.byRefDes = make(map[string]int, len(c.Entities))
	partIDs := make(map[string]bool)
	refs := make(map[string]bool)

	for i, e := range c.Entities {
		if e.ID == "" {
			return fmt.Errorf("entity %d: %w: empty id", i, ErrDuplicateID)
		}
		if partIDs[e.ID] {
			return fmt.Errorf("entity %q: %w", e.ID, ErrDuplicateID)
		}
		if !e.Type.Valid() {
			return fmt.Errorf("entity %q: %w %q", e.ID, ErrUnknownType, e.Type)
		}
		key := refDesKey(e.RefDes)
		if key == "" || refs[key] {
			return fmt.Errorf("entity %q: %w %q", e.ID, ErrDuplicateRefDes, e.RefDes)
		}
		partIDs[e.ID] = true
		refs[key] = true
		c.byID[e.ID] = i
		c.byRefDes[key] = i
	}

	for _, p := range c.Passives {
		if partIDs[p.ID] {
			return fmt.Errorf("passive %q: %w", p.ID, ErrDuplicateID)
		}
		if !p.Type.Valid() {
			return fmt.Errorf("passive %q: %w %q", p.ID, ErrUnknownType, p.Type)
		}
		key := refDesKey(p.RefDes)
		if refs[key] {
			return fmt.Errorf("passive %q: %w %q", p.ID, ErrDuplicateRefDes, p.RefDes)
		}
		partIDs[p.ID] = true
		refs[key] = true
	}

	return c.validateTree(c.Tree, make(map[string]bool))
}

func (c *Catalog) validateTree(nodes []Node, seen map[string]bool) error {
	for _, n := range nodes {
		if seen[n.ID] {
			return fmt.Errorf("tree node %q: %w", n.ID, ErrDuplicateID)
		}
		seen[n.ID] = true
		if n.ProjectID != "" {
			if _, ok := c.byID[n.ProjectID]; !ok {
				return fmt.Errorf("tree node %q -> %q: %w", n.ID, n.ProjectID, ErrDanglingReference)
			}
		}
		if err := c.validateTree(n.Children, seen); err != nil {
			return err
		}
	}
	return nil
}

// ByID returns the entity with the given id.
func (c *Catalog) ByID(id string) (Entity, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entity{}, false
	}
	return c.Entities[i], true
}

// ByRefDes returns the entity whose reference designator matches ref,
// ignoring case.
func (c *Catalog) ByRefDes(ref string) (Entity, bool) {
	i, ok := c.byRefDes[refDesKey(ref)]
	if !ok {
		return Entity{}, false
	}
	return c.Entities[i], true
}

// IndexOf returns the position of the entity in catalog order, or -1.
func (c *Catalog) IndexOf(id string) int {
	i, ok := c.byID[id]
	if !ok {
		return -1
	}
	return i
}

// Len returns the number of navigable entities.
func (c *Catalog) Len() int {
	return len(c.Entities)
}

// RefDesList returns the entity reference designators in catalog order.
func (c *Catalog) RefDesList() []string {
	out := make([]string, len(c.Entities))
	for i, e := range c.Entities {
		out[i] = e.RefDes
	}
	return out
}

// ComponentCount is the bill of materials total: entities plus passives.
func (c *Catalog) ComponentCount() int {
	return len(c.Entities) + len(c.Passives)
}

// Part symbols extend this far around their placement point.
const (
	symbolHalfWidth  = 60
	symbolHalfHeight = 50
)

// Extent returns the width and height of the sheet content measured from the
// sheet origin.
func (c *Catalog) Extent() (float64, float64) {
	var w, h float64
	grow := func(x, y float64) {
		w = math.Max(w, x)
		h = math.Max(h, y)
	}
	for _, e := range c.Entities {
		grow(e.X+symbolHalfWidth, e.Y+symbolHalfHeight)
	}
	for _, p := range c.Passives {
		grow(p.X+symbolHalfWidth, p.Y+symbolHalfHeight)
	}
	for _, r := range c.Regions {
		grow(r.X+r.W, r.Y+r.H)
	}
	for _, wire := range c.Wires {
		for _, p := range wire.Points {
			grow(p.X, p.Y)
		}
	}
	tb := c.Sheet.TitleBlock
	if tb.W > 0 && tb.H > 0 {
		grow(tb.X+tb.W, tb.Y+tb.H)
	}
	return w, h
}

// FindNode returns the tree node with the given id.
func (c *Catalog) FindNode(id string) (Node, bool) {
	var walk func([]Node) (Node, bool)
	walk = func(nodes []Node) (Node, bool) {
		for _, n := range nodes {
			if n.ID == id {
				return n, true
			}
			if found, ok := walk(n.Children); ok {
				return found, true
			}
		}
		return Node{}, false
	}
	return walk(c.Tree)
}
