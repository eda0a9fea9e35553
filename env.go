package typenv

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Azhovan/typenv/internal/normalize"
	"github.com/Azhovan/typenv/sourceenv"
)

// Options configures an Env.
type Options struct {
	// AllowedChars lists the characters permitted in variable names.
	// Empty = DefaultAllowedChars.
	AllowedChars string

	// Upper upper-cases every fully-qualified name before validation and lookup,
	// making lookups effectively case-insensitive (default: false).
	Upper bool

	// Source provides raw values. Nil = the process environment.
	Source Source

	// Logger receives debug-level resolution events. Nil = logrus.New().
	Logger *logrus.Logger
}

// Env reads typed values from a Source, tracking every resolved variable.
// An Env is not safe for concurrent use; callers sharing one must serialize access.
type Env struct {
	allowedChars string
	upper        bool
	source       Source
	prefix       *PrefixStack
	ledger       *ledger
	log          *logrus.Logger
}

// New creates an Env with an empty prefix stack and an empty ledger.
func New(opts Options) *Env {
	if opts.AllowedChars == "" {
		opts.AllowedChars = DefaultAllowedChars
	}
	if opts.Source == nil {
		opts.Source = sourceenv.Process()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}

	return &Env{
		allowedChars: opts.AllowedChars,
		upper:        opts.Upper,
		source:       opts.Source,
		prefix:       &PrefixStack{},
		ledger:       newLedger(),
		log:          opts.Logger,
	}
}

// Prefix returns the prefix stack applied to every lookup.
func (e *Env) Prefix() *PrefixStack {
	return e.prefix
}

// Prefixed pushes fragment, runs fn, and restores the prefix stack to its
// state before the call on every exit path, including errors and panics.
func (e *Env) Prefixed(fragment string, fn func() error) error {
	snapshot := e.prefix.Fragments()
	defer e.prefix.restore(snapshot)

	e.prefix.Push(fragment)
	return fn()
}

// QualifiedName returns the name a lookup of name would use, or the NameError
// that would abort it.
func (e *Env) QualifiedName(name string) (string, error) {
	qualified := normalize.Qualify(e.prefix.fragments, name, e.upper)
	if err := validateName(qualified, e.allowedChars); err != nil {
		return "", err
	}
	return qualified, nil
}

// Lookup resolves name with kind and returns the result as an Optional.
// Set is false only when the variable was missing and a null default was given.
//
// Resolution order: qualify and validate the name, look it up, fall back to the
// default (or fail with MissingError), cast, run validators, record in the ledger.
func Lookup[T any](e *Env, kind Kind[T], name string, opts ...Option[T]) (Optional[T], error) {
	return get(e, kind, name, applyOptions(opts))
}

func get[T any](e *Env, kind Kind[T], name string, cfg getConfig[T]) (Optional[T], error) {
	isOptional := cfg.def.IsSet()

	qualified, err := e.QualifiedName(name)
	if err != nil {
		return Optional[T]{}, err
	}

	var value T
	origin := OriginEnv

	raw, ok := e.source.Lookup(qualified)
	if ok {
		value, err = kind.cast(raw)
		if err != nil {
			return Optional[T]{}, &CastError{Type: kind.tag, Name: qualified, Value: raw, Err: err}
		}
	} else {
		switch {
		case cfg.def.IsNull():
			e.ledger.record(qualified, ParsedValue{
				Value:    nil,
				Type:     kind.tag,
				Optional: true,
				Origin:   OriginNull,
				Secret:   cfg.secret,
			})
			e.logResolved(qualified, kind.tag, OriginNull)
			return Optional[T]{}, nil
		case isOptional:
			value, _ = cfg.def.Value()
			origin = OriginDefault
		default:
			return Optional[T]{}, &MissingError{Name: qualified}
		}
	}

	if err := runValidators(qualified, value, cfg.validators); err != nil {
		return Optional[T]{}, err
	}

	if cfg.finalize != nil {
		if err := cfg.finalize(qualified, value); err != nil {
			return Optional[T]{}, err
		}
	}

	e.ledger.record(qualified, ParsedValue{
		Value:    value,
		Type:     kind.tag,
		Optional: isOptional,
		Origin:   origin,
		Secret:   cfg.secret,
	})
	e.logResolved(qualified, kind.tag, origin)

	return Optional[T]{Value: value, Set: true}, nil
}

func (e *Env) logResolved(name string, tag Tag, origin Origin) {
	e.log.WithFields(logrus.Fields{
		"name":   name,
		"type":   string(tag),
		"origin": string(origin),
	}).Debug("resolved environment variable")
}

func valueOf[T any](o Optional[T], err error) (T, error) {
	return o.Value, err
}

// Str returns the raw string value of name.
func (e *Env) Str(name string, opts ...Option[string]) (string, error) {
	return valueOf(Lookup(e, KindStr, name, opts...))
}

// Int returns name parsed as a base-10 integer with an optional sign.
// Surrounding whitespace and digit separators such as "1_000" are rejected.
func (e *Env) Int(name string, opts ...Option[int]) (int, error) {
	return valueOf(Lookup(e, KindInt, name, opts...))
}

// Bool returns name parsed as a boolean ("true", "false", "1" or "0", case-insensitive).
func (e *Env) Bool(name string, opts ...Option[bool]) (bool, error) {
	return valueOf(Lookup(e, KindBool, name, opts...))
}

// Float returns name parsed as a 64-bit float using strconv.ParseFloat syntax,
// which includes "inf" and "NaN". Surrounding whitespace is rejected.
func (e *Env) Float(name string, opts ...Option[float64]) (float64, error) {
	return valueOf(Lookup(e, KindFloat, name, opts...))
}

// Decimal returns name parsed as an arbitrary-precision decimal.
func (e *Env) Decimal(name string, opts ...Option[decimal.Decimal]) (decimal.Decimal, error) {
	return valueOf(Lookup(e, KindDecimal, name, opts...))
}

// Bytes returns name decoded with enc. Only EncodingHex is supported; hex
// values may carry a "0x" prefix and an odd number of digits.
func (e *Env) Bytes(name string, enc Encoding, opts ...Option[[]byte]) ([]byte, error) {
	if enc != EncodingHex {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, string(enc))
	}
	return valueOf(Lookup(e, KindHex, name, opts...))
}

// JSON returns name parsed as a JSON value of any shape.
// The final value, including a caller default, must serialize back to JSON.
func (e *Env) JSON(name string, opts ...Option[any]) (any, error) {
	cfg := applyOptions(opts)
	cfg.finalize = func(qualified string, v any) error {
		if _, err := json.Marshal(v); err != nil {
			return &DefaultError{Name: qualified, Err: err}
		}
		return nil
	}
	return valueOf(get(e, KindJSON, name, cfg))
}

// List returns name split on "," as strings. An empty value yields an empty list.
func (e *Env) List(name string, opts ...Option[[]string]) ([]string, error) {
	return valueOf(Lookup(e, ListOf(KindStr), name, opts...))
}

// List returns name split on "," with every element cast by sub.
func List[E Element](e *Env, name string, sub Kind[E], opts ...Option[[]E]) ([]E, error) {
	return valueOf(Lookup(e, ListOf(sub), name, opts...))
}
