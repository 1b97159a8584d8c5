// Package prototype models method shadowing with interface dispatch.
//
// A call resolves in this order: an instance override set on a Shadow, then
// the concrete type's own method, then the method of the type it embeds.
package prototype

import "fmt"

type Speaker interface {
	Speak() string
}

type Person struct {
	Name string
}

func (p *Person) SayHi() string {
	return fmt.Sprintf("Hi, I'm %s", p.Name)
}

// Speak lets a person stand in wherever a Speaker is expected.
func (p *Person) Speak() string {
	return p.SayHi()
}

type Animal struct {
	Name string
}

func (a *Animal) Speak() string {
	return fmt.Sprintf("%s makes a noise.", a.Name)
}

type Dog struct {
	Animal
}

func NewDog(name string) *Dog {
	return &Dog{
		Animal: Animal{Name: name},
	}
}

func (d *Dog) Speak() string {
	return fmt.Sprintf("%s barks.", d.Name)
}

// Base returns the embedded behaviour Dog overrides.
func (d *Dog) Base() Speaker {
	return &d.Animal
}

type Kind int

const (
	KindPerson Kind = iota
	KindAnimal
	KindDog
)

// IsA reports whether s is k, walking up the embedding chain.
func IsA(s Speaker, k Kind) bool {
	switch v := s.(type) {
	case *Dog:
		return k == KindDog || k == KindAnimal
	case *Animal:
		return k == KindAnimal
	case *Person:
		return k == KindPerson
	case *Shadow:
		return IsA(v.Speaker, k)
	}

	return false
}
