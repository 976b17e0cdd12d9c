package routing

import (
	"fmt"
	"strings"
)

// Algorithm selects a search engine.
type Algorithm int

const (
	Genetic Algorithm = iota
	AntColony
	QLearning
	Dijkstra
)

// AllAlgorithms lists every engine in Compare order.
var AllAlgorithms = []Algorithm{Genetic, AntColony, QLearning, Dijkstra}

var algorithmNames = [...]string{
	Genetic:   "genetic",
	AntColony: "antcolony",
	QLearning: "qlearning",
	Dijkstra:  "dijkstra",
}

var algorithmAliases = map[string]Algorithm{
	"genetic": Genetic, "ga": Genetic,
	"antcolony": AntColony, "ant_colony": AntColony, "acs": AntColony, "aco": AntColony,
	"qlearning": QLearning, "q_learning": QLearning, "q-learning": QLearning, "q": QLearning,
	"dijkstra": Dijkstra, "exact": Dijkstra,
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm accepts the canonical names and common aliases, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	if a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText encodes the canonical name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes any name accepted by ParseAlgorithm.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
