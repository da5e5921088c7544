package store

// Store is the surface consumed by the command layer. Element ids arrive as
// wire-level strings and are parsed and validated by the implementation.
type Store interface {
	Connect(a, b string) error
	Disconnect(a, b string) error
	Connected(a, b string) (bool, error)
	Level(a, b string) (int, error)
	Neighbors(element string) ([]string, error)
	Degree(element string) (int, error)
	Size() int
	Edges() int
	Reset(size string) error
}
