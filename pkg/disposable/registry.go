package disposable

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"

	sferrors "github.com/vnykmshr/stubfiber/pkg/common/errors"
)

// Registry is an ordered, non-exclusive collection of disposables.
//
// It is not safe for concurrent use. Values added must be comparable;
// the adapters in this package return pointers, which always are.
type Registry struct {
	items     []Disposable
	logger    zerolog.Logger
	onFailure func(index int, err error)
}

// Option configures a Registry.
type Option func(*Registry)

// WithFailureHook registers fn to be called once per failed release.
func WithFailureHook(fn func(index int, err error)) Option {
	return func(r *Registry) {
		r.onFailure = fn
	}
}

// NewRegistry creates an empty registry that reports release failures to logger.
func NewRegistry(logger zerolog.Logger, opts ...Option) *Registry {
	r := &Registry{logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends d. Duplicates are kept; nil is ignored.
func (r *Registry) Add(d Disposable) {
	if d == nil {
		return
	}
	r.items = append(r.items, d)
}

// Remove drops the first entry equal to d and reports whether one was found.
func (r *Registry) Remove(d Disposable) bool {
	if d == nil {
		return false
	}
	for i, item := range r.items {
		if item == d {
			copy(r.items[i:], r.items[i+1:])
			r.items[len(r.items)-1] = nil
			r.items = r.items[:len(r.items)-1]
			return true
		}
	}
	return false
}

// Count returns the number of registered entries.
func (r *Registry) Count() int {
	return len(r.items)
}

// Items returns a copy of the registered entries in insertion order.
func (r *Registry) Items() []Disposable {
	out := make([]Disposable, len(r.items))
	copy(out, r.items)
	return out
}

// DisposeAll releases every entry present at call time.
//
// Entries may remove themselves (or others) while being released; the
// iteration runs over a snapshot and is unaffected. A failure, returned or
// panicked, never stops the remaining releases. The registry is not cleared.
func (r *Registry) DisposeAll() error {
	snapshot := r.Items()

	var errs []error
	for i, d := range snapshot {
		if err := release(d); err != nil {
			opErr := sferrors.NewOperationError("disposable", "Dispose", err).
				WithContext(fmt.Sprintf("entry %d of %d", i+1, len(snapshot)))
			r.logger.Warn().
				Err(err).
				Int("index", i).
				Int("total", len(snapshot)).
				Msg("disposable release failed")
			if r.onFailure != nil {
				r.onFailure(i, err)
			}
			errs = append(errs, opErr)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", sferrors.ErrDisposeFailed, errors.Join(errs...))
}

func release(d Disposable) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("dispose panicked: %v\nStack trace:\n%s", rec, debug.Stack())
		}
	}()
	return d.Dispose()
}
