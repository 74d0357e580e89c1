package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

// OptionalFromPointer treats nil as absent.
func OptionalFromPointer[T any](value *T) Optional[T] {
	if value == nil {
		return Optional[T]{}
	}
	return Optional[T]{Value: *value, IsPresent: true}
}

// OptionalString treats a blank string as absent.
func OptionalString(value string) Optional[string] {
	value = strings.TrimSpace(value)
	return Optional[string]{Value: value, IsPresent: value != ""}
}

func (p Optional[T]) Pointer() *T {
	if !p.IsPresent {
		return nil
	}
	v := p.Value
	return &v
}

func (p Optional[T]) ValueOr(fallback T) T {
	if !p.IsPresent {
		return fallback
	}
	return p.Value
}

type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}
