package store

import (
	"fmt"
	"strconv"

	"linknet/datastructures/ugraph"
)

// DefaultUniverseSize is used when no size is configured. Matches the
// six-element universe the interactive session offers by default.
const DefaultUniverseSize = 6

// GraphStore keeps the whole universe in memory as a single undirected graph.
type GraphStore struct {
	graph *ugraph.Graph
}

func NewGraphStore(size int) (*GraphStore, error) {
	graph, err := ugraph.New(size)
	if err != nil {
		return nil, err
	}
	return &GraphStore{graph: graph}, nil
}

func parseElement(arg string) (int, error) {
	element, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: element %q is not an integer", ugraph.ErrInvalidArgument, arg)
	}
	return element, nil
}

func parsePair(a, b string) (int, int, error) {
	first, err := parseElement(a)
	if err != nil {
		return 0, 0, err
	}
	second, err := parseElement(b)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

func (gs *GraphStore) Connect(a, b string) error {
	first, second, err := parsePair(a, b)
	if err != nil {
		return err
	}
	return gs.graph.Connect(first, second)
}

func (gs *GraphStore) Disconnect(a, b string) error {
	first, second, err := parsePair(a, b)
	if err != nil {
		return err
	}
	return gs.graph.Disconnect(first, second)
}

func (gs *GraphStore) Connected(a, b string) (bool, error) {
	first, second, err := parsePair(a, b)
	if err != nil {
		return false, err
	}
	return gs.graph.Connected(first, second)
}

func (gs *GraphStore) Level(a, b string) (int, error) {
	first, second, err := parsePair(a, b)
	if err != nil {
		return 0, err
	}
	return gs.graph.Level(first, second)
}

func (gs *GraphStore) Neighbors(element string) ([]string, error) {
	id, err := parseElement(element)
	if err != nil {
		return nil, err
	}
	neighbors, err := gs.graph.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(neighbors))
	for _, neighbor := range neighbors {
		out = append(out, strconv.Itoa(neighbor))
	}
	return out, nil
}

func (gs *GraphStore) Degree(element string) (int, error) {
	id, err := parseElement(element)
	if err != nil {
		return 0, err
	}
	return gs.graph.Degree(id)
}

func (gs *GraphStore) Size() int {
	return gs.graph.Size()
}

func (gs *GraphStore) Edges() int {
	return gs.graph.Edges()
}

// Reset discards the current graph and starts over with a fresh universe of
// the given size. The old graph is kept when construction fails.
func (gs *GraphStore) Reset(size string) error {
	parsed, err := parseElement(size)
	if err != nil {
		return err
	}
	graph, err := ugraph.New(parsed)
	if err != nil {
		return err
	}
	gs.graph = graph
	return nil
}
