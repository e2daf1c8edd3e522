package mapf

import (
	"gopkg.in/yaml.v3"

	"github.com/gitsper/announcenet/geometry"
)

// Map is a rectangular grid with a set of obstacle cells. During any single
// analysis attempt, the attempt's safe cell is temporarily treated as
// passable even if it appears in Obstacles — see Map.Passable.
type Map struct {
	Dimensions geometry.Coordinate
	Obstacles  map[geometry.Coordinate]struct{}
}

// mapDoc is Map's document shape: obstacles round-trip as a YAML sequence
// of coordinates rather than a mapping, since a set has no natural value
// to hang off each key.
type mapDoc struct {
	Dimensions geometry.Coordinate   `yaml:"dimensions"`
	Obstacles  []geometry.Coordinate `yaml:"obstacles"`
}

// MarshalYAML flattens Obstacles into a coordinate sequence.
func (m Map) MarshalYAML() (interface{}, error) {
	doc := mapDoc{Dimensions: m.Dimensions, Obstacles: make([]geometry.Coordinate, 0, len(m.Obstacles))}
	for c := range m.Obstacles {
		doc.Obstacles = append(doc.Obstacles, c)
	}
	return doc, nil
}

// UnmarshalYAML rebuilds Obstacles from a coordinate sequence.
func (m *Map) UnmarshalYAML(value *yaml.Node) error {
	var doc mapDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	m.Dimensions = doc.Dimensions
	m.Obstacles = make(map[geometry.Coordinate]struct{}, len(doc.Obstacles))
	for _, c := range doc.Obstacles {
		m.Obstacles[c] = struct{}{}
	}
	return nil
}

// NewMap constructs a Map and rejects zero-area grids.
func NewMap(dimensions geometry.Coordinate, obstacles map[geometry.Coordinate]struct{}) (Map, error) {
	if dimensions.X == 0 || dimensions.Y == 0 {
		return Map{}, ErrEmptyDimensions
	}
	if obstacles == nil {
		obstacles = make(map[geometry.Coordinate]struct{})
	}
	return Map{Dimensions: dimensions, Obstacles: obstacles}, nil
}

// Passable reports whether c is navigable given that safe is the single
// obstacle cell currently treated as a reachable (but forbidden) goal.
func (m Map) Passable(c geometry.Coordinate, safe geometry.Coordinate) bool {
	if !c.InBounds(m.Dimensions) {
		return false
	}
	if c == safe {
		return true
	}
	_, obstacle := m.Obstacles[c]
	return !obstacle
}

// Agent is one MAPF participant: its nominal start, its nominal goal, and
// the name that joins it across Instance, Solution, and Announcements.
type Agent struct {
	Name  string             `yaml:"name"`
	Start geometry.Coordinate `yaml:"start"`
	Goal  geometry.Coordinate `yaml:"goal"`
}

// Instance is a MAPF problem: the agents to be scheduled and the map they
// move on. AnnounceNet never plans; an Instance always arrives alongside an
// already-computed Solution.
type Instance struct {
	Agents []Agent `yaml:"agents"`
	Map    Map     `yaml:"map"`
}

// NewInstance constructs an Instance and rejects duplicate agent names,
// which would make the name-keyed joins in Solution and Announcements
// ambiguous.
func NewInstance(agents []Agent, m Map) (Instance, error) {
	seen := make(map[string]struct{}, len(agents))
	for _, a := range agents {
		if _, dup := seen[a.Name]; dup {
			return Instance{}, ErrDuplicateAgent
		}
		seen[a.Name] = struct{}{}
	}
	return Instance{Agents: agents, Map: m}, nil
}

// AgentByName returns the agent with the given name, or false if none
// exists.
func (in Instance) AgentByName(name string) (Agent, bool) {
	for _, a := range in.Agents {
		if a.Name == name {
			return a, true
		}
	}
	return Agent{}, false
}

// Statistics carries the external solver's reported cost and timing
// alongside the makespan. Only Makespan is semantically used by the core;
// the rest round-trips so result documents remain faithful to whatever the
// upstream solver reported.
type Statistics struct {
	Cost              uint32  `yaml:"cost"`
	Makespan          int     `yaml:"makespan"`
	Runtime           float64 `yaml:"runtime"`
	HighLevelExpanded uint32  `yaml:"highLevelExpanded"`
	LowLevelExpanded  uint32  `yaml:"lowLevelExpanded"`
}
