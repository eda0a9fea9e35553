package typenv

import (
	"errors"
	"fmt"
)

// Source provides raw variable values. The default source is the process environment.
type Source interface {
	// Lookup returns the raw value of name and whether it was present.
	Lookup(name string) (string, bool)
}

// Optional distinguishes "resolved to null" from "zero value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}

type defaultState uint8

const (
	defaultAbsent defaultState = iota
	defaultNull
	defaultValue
)

// Default is the fallback used when a variable is missing.
// It has three states: absent (variable is mandatory), null (variable is optional
// and resolves to nothing) and a concrete value.
type Default[T any] struct {
	state defaultState
	value T
}

// NoDefault makes the variable mandatory.
func NoDefault[T any]() Default[T] {
	return Default[T]{}
}

// NullDefault makes the variable optional, resolving to nothing when missing.
func NullDefault[T any]() Default[T] {
	return Default[T]{state: defaultNull}
}

// ValueDefault makes the variable optional, resolving to v when missing.
func ValueDefault[T any](v T) Default[T] {
	return Default[T]{state: defaultValue, value: v}
}

// IsSet reports whether a default (null or concrete) was supplied.
func (d Default[T]) IsSet() bool { return d.state != defaultAbsent }

// IsNull reports whether the default is the explicit null.
func (d Default[T]) IsNull() bool { return d.state == defaultNull }

// Value returns the concrete default and whether there is one.
func (d Default[T]) Value() (T, bool) {
	return d.value, d.state == defaultValue
}

// Validator accepts or rejects a cast value.
type Validator[T any] interface {
	// Validate returns a non-nil error to reject value.
	Validate(value T) error
}

// ValidatorFunc is a function adapter for Validator interface.
type ValidatorFunc[T any] func(value T) error

func (f ValidatorFunc[T]) Validate(value T) error {
	return f(value)
}

// errRejected is the cause recorded when a Predicate returns false.
var errRejected = errors.New("predicate returned false")

// Predicate adapts a boolean check to Validator. Returning false or panicking
// rejects the value.
type Predicate[T any] func(value T) bool

func (p Predicate[T]) Validate(value T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("predicate panicked: %v", r)
		}
	}()
	if !p(value) {
		return errRejected
	}
	return nil
}

// Option configures a single typed getter call.
type Option[T any] func(*getConfig[T])

type getConfig[T any] struct {
	def        Default[T]
	validators []Validator[T]
	secret     bool
	finalize   func(name string, value T) error
}

// WithDefault resolves a missing variable to v instead of failing.
func WithDefault[T any](v T) Option[T] {
	return func(cfg *getConfig[T]) {
		cfg.def = ValueDefault(v)
	}
}

// WithNullDefault resolves a missing variable to nothing instead of failing.
func WithNullDefault[T any]() Option[T] {
	return func(cfg *getConfig[T]) {
		cfg.def = NullDefault[T]()
	}
}

// WithFallback sets the default from an existing Default value.
func WithFallback[T any](d Default[T]) Option[T] {
	return func(cfg *getConfig[T]) {
		cfg.def = d
	}
}

// WithValidators appends validators run in order after casting.
func WithValidators[T any](vs ...Validator[T]) Option[T] {
	return func(cfg *getConfig[T]) {
		cfg.validators = append(cfg.validators, vs...)
	}
}

// Check appends boolean predicates run in order after casting.
func Check[T any](ps ...func(T) bool) Option[T] {
	return func(cfg *getConfig[T]) {
		for _, p := range ps {
			cfg.validators = append(cfg.validators, Predicate[T](p))
		}
	}
}

// Secret marks the variable as secret; dumps redact its value.
func Secret[T any]() Option[T] {
	return func(cfg *getConfig[T]) {
		cfg.secret = true
	}
}

func applyOptions[T any](opts []Option[T]) getConfig[T] {
	var cfg getConfig[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// String implements fmt.Stringer for debugging output.
func (d Default[T]) String() string {
	switch d.state {
	case defaultNull:
		return "null"
	case defaultValue:
		return fmt.Sprintf("%v", d.value)
	default:
		return "<absent>"
	}
}
