package set

import (
	"iter"
	"sync/atomic"
)

// Interceptor defines functions that are invoked around set operations.
type Interceptor[T any] struct {
	beforeAdd    atomic.Pointer[func(T) error]
	afterAdd     atomic.Pointer[func(T) error]
	beforeRemove atomic.Pointer[func(T) error]
	afterRemove  atomic.Pointer[func(T) error]
}

// BeforeAdd sets the function that is invoked before a value is added to the
// [Set].
func (i *Interceptor[T]) BeforeAdd(fn func(v T) error) {
	setFn(&i.beforeAdd, fn)
}

// AfterAdd sets the function that is invoked after a value is added to the
// [Set].
func (i *Interceptor[T]) AfterAdd(fn func(v T) error) {
	setFn(&i.afterAdd, fn)
}

// BeforeRemove sets the function that is invoked before a member is removed
// from or taken out of the [Set].
func (i *Interceptor[T]) BeforeRemove(fn func(v T) error) {
	setFn(&i.beforeRemove, fn)
}

// AfterRemove sets the function that is invoked after a member is removed
// from or taken out of the [Set].
func (i *Interceptor[T]) AfterRemove(fn func(v T) error) {
	setFn(&i.afterRemove, fn)
}

// WithInterceptor returns a [Set] that invokes the functions defined by the
// given [Interceptor] when performing operations on s.
func WithInterceptor[T any](s Set[T], in *Interceptor[T]) Set[T] {
	if in == nil {
		return s
	}

	return &interceptedSet[T]{
		Next:        s,
		Interceptor: in,
	}
}

func setFn[T any](dst *atomic.Pointer[func(T) error], fn func(T) error) {
	if fn == nil {
		dst.Store(nil)
		return
	}

	dst.Store(&fn)
}

type interceptedSet[T any] struct {
	Next        Set[T]
	Interceptor *Interceptor[T]
}

func (s *interceptedSet[T]) Traits() Traits[T] {
	return s.Next.Traits()
}

func (s *interceptedSet[T]) Size() int {
	return s.Next.Size()
}

func (s *interceptedSet[T]) IsEmpty() bool {
	return s.Next.IsEmpty()
}

func (s *interceptedSet[T]) Has(v T) bool {
	return s.Next.Has(v)
}

func (s *interceptedSet[T]) Add(v T) (bool, error) {
	if fn := s.Interceptor.beforeAddFn(); fn != nil {
		if err := fn(v); err != nil {
			return false, err
		}
	}

	added, err := s.Next.Add(v)
	if err != nil {
		return false, err
	}

	if fn := s.Interceptor.afterAddFn(); fn != nil {
		if err := fn(v); err != nil {
			return false, err
		}
	}

	return added, nil
}

func (s *interceptedSet[T]) Take(sel Selection[T]) (T, error) {
	if !sel.oldest {
		if fn := s.Interceptor.beforeRemoveFn(); fn != nil {
			if err := fn(sel.value); err != nil {
				var zero T
				return zero, err
			}
		}
	}

	v, err := s.Next.Take(sel)
	if err != nil {
		return v, err
	}

	if fn := s.Interceptor.afterRemoveFn(); fn != nil {
		if err := fn(v); err != nil {
			return v, err
		}
	}

	return v, nil
}

func (s *interceptedSet[T]) Remove(v T) (bool, error) {
	if fn := s.Interceptor.beforeRemoveFn(); fn != nil {
		if err := fn(v); err != nil {
			return false, err
		}
	}

	removed, err := s.Next.Remove(v)
	if err != nil {
		return false, err
	}

	if fn := s.Interceptor.afterRemoveFn(); fn != nil {
		if err := fn(v); err != nil {
			return false, err
		}
	}

	return removed, nil
}

func (s *interceptedSet[T]) Range(fn RangeFunc[T]) error {
	return s.Next.Range(fn)
}

func (s *interceptedSet[T]) All() iter.Seq[T] {
	return s.Next.All()
}

func (s *interceptedSet[T]) Members() []T {
	return s.Next.Members()
}

func (s *interceptedSet[T]) Clear() error {
	return s.Next.Clear()
}

func (i *Interceptor[T]) beforeAddFn() func(T) error {
	if i == nil {
		return nil
	}

	if fn := i.beforeAdd.Load(); fn != nil {
		return *fn
	}

	return nil
}

func (i *Interceptor[T]) afterAddFn() func(T) error {
	if i == nil {
		return nil
	}

	if fn := i.afterAdd.Load(); fn != nil {
		return *fn
	}

	return nil
}

func (i *Interceptor[T]) beforeRemoveFn() func(T) error {
	if i == nil {
		return nil
	}

	if fn := i.beforeRemove.Load(); fn != nil {
		return *fn
	}

	return nil
}

func (i *Interceptor[T]) afterRemoveFn() func(T) error {
	if i == nil {
		return nil
	}

	if fn := i.afterRemove.Load(); fn != nil {
		return *fn
	}

	return nil
}
