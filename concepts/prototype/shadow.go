package prototype

import "sync"

// Shadow wraps a Speaker with an optional per-instance override.
type Shadow struct {
	Speaker

	lock     sync.RWMutex
	override func() string
}

func NewShadow(s Speaker) *Shadow {
	return &Shadow{
		Speaker: s,
	}
}

func (s *Shadow) Override(fn func() string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.override = fn
}

// Clear drops the override so calls fall back to the wrapped Speaker.
func (s *Shadow) Clear() {
	s.Override(nil)
}

func (s *Shadow) Overridden() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.override != nil
}

func (s *Shadow) Speak() string {
	s.lock.RLock()
	fn := s.override
	s.lock.RUnlock()

	if fn != nil {
		return fn()
	}

	return s.Speaker.Speak()
}
