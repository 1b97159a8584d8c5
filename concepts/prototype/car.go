package prototype

// Driver is satisfied by any type with a Drive method; no embedding needed.
type Driver interface {
	Drive() string
}

type Car struct{}

func (c *Car) Drive() string {
	return "vroom"
}
