package ugraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/sets/hashset"
)

// Error kinds reported by graph operations. Callers discriminate with
// errors.Is; the wrapped message carries the offending value and valid range.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
	ErrInvalidState    = errors.New("invalid state")
)

const unreachable = -1

// Graph models a fixed universe of elements 1..size with a symmetric,
// unweighted "connected" relation. Every element owns a neighbor set from
// construction onward; sets only grow and shrink, entries are never removed.
// Self loops are rejected.
type Graph struct {
	size      int
	adjacency map[int]*hashset.Set
}

func New(size int) (*Graph, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: universe size must be positive, got %d", ErrInvalidArgument, size)
	}
	adjacency := make(map[int]*hashset.Set, size)
	for id := 1; id <= size; id++ {
		adjacency[id] = hashset.New()
	}
	return &Graph{
		size:      size,
		adjacency: adjacency,
	}, nil
}

// Size returns the number of elements in the universe.
func (g *Graph) Size() int {
	return g.size
}

func (g *Graph) validate(element int) error {
	if element < 1 || element > g.size {
		return fmt.Errorf("%w: element %d not in [1, %d]", ErrOutOfRange, element, g.size)
	}
	return nil
}

// Connect links a and b. Both neighbor sets are updated so the relation stays
// symmetric. Connecting an already linked pair is not an error and leaves the
// sets unchanged.
func (g *Graph) Connect(a, b int) error {
	if err := g.validate(a); err != nil {
		return err
	}
	if err := g.validate(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%w: element %d cannot be connected to itself", ErrInvalidArgument, a)
	}
	g.adjacency[a].Add(b)
	g.adjacency[b].Add(a)
	return nil
}

// Disconnect removes the link between a and b. Only one direction needs to be
// checked since the sets are kept symmetric.
func (g *Graph) Disconnect(a, b int) error {
	if err := g.validate(a); err != nil {
		return err
	}
	if err := g.validate(b); err != nil {
		return err
	}
	if !g.adjacency[a].Contains(b) {
		return fmt.Errorf("%w: elements %d and %d are not connected", ErrInvalidState, a, b)
	}
	g.adjacency[a].Remove(b)
	g.adjacency[b].Remove(a)
	return nil
}

// Connected reports whether b is reachable from a through zero or more links.
// An element is always reachable from itself.
func (g *Graph) Connected(a, b int) (bool, error) {
	level, err := g.bfs(a, b)
	if err != nil {
		return false, err
	}
	return level != unreachable, nil
}

// Level returns the number of links on a shortest path between a and b.
// It returns 0 both when a == b and when no path exists; callers that need to
// tell those apart must compare the elements themselves.
func (g *Graph) Level(a, b int) (int, error) {
	level, err := g.bfs(a, b)
	if err != nil {
		return 0, err
	}
	if level == unreachable {
		return 0, nil
	}
	return level, nil
}

// Degree returns the number of direct neighbors of an element.
func (g *Graph) Degree(element int) (int, error) {
	if err := g.validate(element); err != nil {
		return 0, err
	}
	return g.adjacency[element].Size(), nil
}

// Neighbors returns the direct neighbors of an element in ascending order.
func (g *Graph) Neighbors(element int) ([]int, error) {
	if err := g.validate(element); err != nil {
		return nil, err
	}
	members := g.adjacency[element].Values()
	neighbors := make([]int, 0, len(members))
	for _, member := range members {
		neighbors = append(neighbors, member.(int))
	}
	sort.Ints(neighbors)
	return neighbors, nil
}

// Edges returns the number of links currently in the graph.
func (g *Graph) Edges() int {
	total := 0
	for _, neighbors := range g.adjacency {
		total += neighbors.Size()
	}
	// each link is counted once per endpoint
	return total / 2
}

type hop struct {
	node  int
	depth int
}

// bfs returns the shortest link count between start and target, or the
// unreachable sentinel when no path exists. Nodes are explored in
// non-decreasing depth order, so the first sighting of target is via a
// shortest path. Neighbor iteration order is unordered and does not matter.
func (g *Graph) bfs(start, target int) (int, error) {
	if err := g.validate(start); err != nil {
		return unreachable, err
	}
	if err := g.validate(target); err != nil {
		return unreachable, err
	}
	if start == target {
		return 0, nil
	}
	visited := hashset.New(start)
	queue := arrayqueue.New()
	queue.Enqueue(hop{node: start, depth: 0})
	for !queue.Empty() {
		value, _ := queue.Dequeue()
		current := value.(hop)
		for _, member := range g.adjacency[current.node].Values() {
			neighbor := member.(int)
			if visited.Contains(neighbor) {
				continue
			}
			if neighbor == target {
				return current.depth + 1, nil
			}
			visited.Add(neighbor)
			queue.Enqueue(hop{node: neighbor, depth: current.depth + 1})
		}
	}
	return unreachable, nil
}
