package disposable

import (
	"io"
)

// Disposable is a resource whose lifetime is tied to a fiber.
//
// Dispose may be called more than once; implementations decide whether a
// repeated call is an error.
type Disposable interface {
	Dispose() error
}

// Registrar is the part of a fiber that tracks disposables.
type Registrar interface {
	Add(d Disposable)
	Remove(d Disposable) bool
	Count() int
}

type funcDisposable struct {
	fn func() error
}

func (f *funcDisposable) Dispose() error {
	if f.fn == nil {
		return nil
	}
	return f.fn()
}

// Func adapts fn to a Disposable.
// Each call returns a distinct value, so keep the result to Remove it later.
func Func(fn func() error) Disposable {
	return &funcDisposable{fn: fn}
}

// Silent adapts a function that cannot fail.
func Silent(fn func()) Disposable {
	return Func(func() error {
		if fn != nil {
			fn()
		}
		return nil
	})
}

type closer struct {
	c io.Closer
}

func (c *closer) Dispose() error {
	return c.c.Close()
}

// Closer adapts an io.Closer such as a network client or file.
func Closer(c io.Closer) Disposable {
	return &closer{c: c}
}
