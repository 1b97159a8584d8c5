// Package closure keeps captured state in explicit values: each counter or
// account owns its state, and only its methods can change it.
package closure

import "sync"

type Counter struct {
	lock  sync.Mutex
	count int
}

func NewCounter() *Counter {
	return &Counter{}
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.count++

	return c.count
}

// Func returns Next as a plain function value, sharing the counter state.
func (c *Counter) Func() func() int {
	return c.Next
}
