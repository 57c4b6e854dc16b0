package catalog

import "strings"

// Type is the symbol tag of a part on the sheet.
type Type string

const (
	TypeIC        Type = "IC"
	TypeOpAmp     Type = "OPAMP"
	TypeResistor  Type = "RESISTOR"
	TypeConnector Type = "CONNECTOR"
	TypeCapacitor Type = "CAPACITOR"
	TypeVCC       Type = "VCC"
	TypeGND       Type = "GND"
	TypeRelay     Type = "RELAY"
	TypeDiode     Type = "DIODE"
)

var knownTypes = map[Type]bool{
	TypeIC:        true,
	TypeOpAmp:     true,
	TypeResistor:  true,
	TypeConnector: true,
	TypeCapacitor: true,
	TypeVCC:       true,
	TypeGND:       true,
	TypeRelay:     true,
	TypeDiode:     true,
}

// Valid reports whether t is one of the known symbol tags.
func (t Type) Valid() bool {
	return knownTypes[t]
}

// Point is a position in sheet units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Entity is a navigable part: one project or role in the portfolio.
type Entity struct {
	ID          string   `yaml:"id"`
	RefDes      string   `yaml:"refDes"`
	Title       string   `yaml:"title"`
	Type        Type     `yaml:"type"`
	X           float64  `yaml:"x"`
	Y           float64  `yaml:"y"`
	Description string   `yaml:"description"`
	Details     string   `yaml:"details"`
	Role        string   `yaml:"role,omitempty"`
	Methodology string   `yaml:"methodology,omitempty"`
	Outcome     string   `yaml:"outcome,omitempty"`
	Date        string   `yaml:"date,omitempty"`
	Location    string   `yaml:"location,omitempty"`
	ImageURL    string   `yaml:"imageUrl,omitempty"`
	Tags        []string `yaml:"tags"`
}

// Position returns the placement of the entity.
func (e Entity) Position() Point {
	return Point{X: e.X, Y: e.Y}
}

// Passive is a decorative part. It is drawn and counted in the bill of
// materials but cannot be selected.
type Passive struct {
	ID     string  `yaml:"id"`
	RefDes string  `yaml:"refDes"`
	Type   Type    `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Value  string  `yaml:"value,omitempty"`
}

// Region is a labelled rectangle grouping parts on the sheet.
type Region struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
}

// WirePath is a decorative polyline.
type WirePath struct {
	ID     string  `yaml:"id"`
	Points []Point `yaml:"points"`
	Color  string  `yaml:"color,omitempty"`
}

// NodeKind distinguishes folders from files in the sidebar tree.
type NodeKind string

const (
	NodeFolder NodeKind = "folder"
	NodeFile   NodeKind = "file"
)

// Node is an entry of the sidebar file tree. Files may link to an entity via
// ProjectID; folders own ordered children.
type Node struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Kind      NodeKind `yaml:"kind"`
	ProjectID string   `yaml:"projectId,omitempty"`
	Children  []Node   `yaml:"children,omitempty"`
}

// IsFolder reports whether the node is a folder.
func (n Node) IsFolder() bool {
	return n.Kind == NodeFolder
}

// Profile carries the biography text used by the command line.
type Profile struct {
	Name       string   `yaml:"name"`
	Headline   string   `yaml:"headline"`
	Resume     []string `yaml:"resume"`
	Contact    []string `yaml:"contact"`
	ResumeFile string   `yaml:"resumeFile"`
}

// TitleBlock is the drawing frame in the corner of the sheet.
type TitleBlock struct {
	X     float64  `yaml:"x"`
	Y     float64  `yaml:"y"`
	W     float64  `yaml:"w"`
	H     float64  `yaml:"h"`
	Lines []string `yaml:"lines"`
}

// Sheet holds sheet level metadata.
type Sheet struct {
	Name       string     `yaml:"name"`
	Grid       string     `yaml:"grid"`
	TitleBlock TitleBlock `yaml:"titleBlock"`
}

// Catalog is the complete, validated content of a sheet.
type Catalog struct {
	Profile   Profile    `yaml:"profile"`
	Sheet     Sheet      `yaml:"sheet"`
	Entities  []Entity   `yaml:"entities"`
	Passives  []Passive  `yaml:"passives"`
	Regions   []Region   `yaml:"regions"`
	Junctions []Point    `yaml:"junctions"`
	Wires     []WirePath `yaml:"wires"`
	Tree      []Node     `yaml:"tree"`

	byID     map[string]int
	byRefDes map[string]int
}

func refDesKey(ref string) string {
	return strings.ToUpper(strings.TrimSpace(ref))
}
