package commands

import (
	"errors"
	"sort"
	"strconv"
)

// MockStore is a naive map-backed implementation of the store interface for
// testing the command layer without the real graph underneath.
type MockStore struct {
	size      int
	adjacency map[int]map[int]bool
}

func NewMockStore(size int) *MockStore {
	adjacency := make(map[int]map[int]bool)
	for id := 1; id <= size; id++ {
		adjacency[id] = make(map[int]bool)
	}
	return &MockStore{size: size, adjacency: adjacency}
}

func (m *MockStore) parse(arg string) (int, error) {
	element, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.New("element is not an integer")
	}
	if element < 1 || element > m.size {
		return 0, errors.New("element out of range")
	}
	return element, nil
}

func (m *MockStore) Connect(a, b string) error {
	first, err := m.parse(a)
	if err != nil {
		return err
	}
	second, err := m.parse(b)
	if err != nil {
		return err
	}
	if first == second {
		return errors.New("cannot connect element to itself")
	}
	m.adjacency[first][second] = true
	m.adjacency[second][first] = true
	return nil
}

func (m *MockStore) Disconnect(a, b string) error {
	first, err := m.parse(a)
	if err != nil {
		return err
	}
	second, err := m.parse(b)
	if err != nil {
		return err
	}
	if !m.adjacency[first][second] {
		return errors.New("elements are not connected")
	}
	delete(m.adjacency[first], second)
	delete(m.adjacency[second], first)
	return nil
}

func (m *MockStore) Connected(a, b string) (bool, error) {
	first, err := m.parse(a)
	if err != nil {
		return false, err
	}
	second, err := m.parse(b)
	if err != nil {
		return false, err
	}
	return m.distance(first, second) >= 0, nil
}

func (m *MockStore) distance(start, target int) int {
	if start == target {
		return 0
	}
	dist := map[int]int{start: 0}
	queue := []int{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for neighbor := range m.adjacency[current] {
			if _, visited := dist[neighbor]; visited {
				continue
			}
			dist[neighbor] = dist[current] + 1
			if neighbor == target {
				return dist[neighbor]
			}
			queue = append(queue, neighbor)
		}
	}
	return -1
}

func (m *MockStore) Level(a, b string) (int, error) {
	first, err := m.parse(a)
	if err != nil {
		return 0, err
	}
	second, err := m.parse(b)
	if err != nil {
		return 0, err
	}
	distance := m.distance(first, second)
	if distance < 0 {
		return 0, nil
	}
	return distance, nil
}

func (m *MockStore) Neighbors(element string) ([]string, error) {
	id, err := m.parse(element)
	if err != nil {
		return nil, err
	}
	neighbors := make([]int, 0, len(m.adjacency[id]))
	for neighbor := range m.adjacency[id] {
		neighbors = append(neighbors, neighbor)
	}
	sort.Ints(neighbors)
	out := make([]string, 0, len(neighbors))
	for _, neighbor := range neighbors {
		out = append(out, strconv.Itoa(neighbor))
	}
	return out, nil
}

func (m *MockStore) Degree(element string) (int, error) {
	id, err := m.parse(element)
	if err != nil {
		return 0, err
	}
	return len(m.adjacency[id]), nil
}

func (m *MockStore) Size() int {
	return m.size
}

func (m *MockStore) Edges() int {
	total := 0
	for _, neighbors := range m.adjacency {
		total += len(neighbors)
	}
	return total / 2
}

func (m *MockStore) Reset(size string) error {
	parsed, err := strconv.Atoi(size)
	if err != nil || parsed <= 0 {
		return errors.New("invalid size")
	}
	fresh := NewMockStore(parsed)
	m.size = fresh.size
	m.adjacency = fresh.adjacency
	return nil
}
