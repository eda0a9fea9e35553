package typenv

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// runValidators applies validators in order and stops at the first rejection.
// Validators only accept or reject; the value is never replaced.
func runValidators[T any](name string, value T, validators []Validator[T]) error {
	for i, v := range validators {
		if v == nil {
			continue
		}
		if err := v.Validate(value); err != nil {
			return &ValidationError{Name: name, Index: i, Err: err}
		}
	}
	return nil
}

// Min rejects values below minVal.
func Min[T cmp.Ordered](minVal T) Validator[T] {
	return ValidatorFunc[T](func(value T) error {
		if value < minVal {
			return fmt.Errorf("value %v is below minimum %v", value, minVal)
		}
		return nil
	})
}

// Max rejects values above maxVal.
func Max[T cmp.Ordered](maxVal T) Validator[T] {
	return ValidatorFunc[T](func(value T) error {
		if value > maxVal {
			return fmt.Errorf("value %v exceeds maximum %v", value, maxVal)
		}
		return nil
	})
}

// MinLen rejects strings shorter than n bytes.
func MinLen(n int) Validator[string] {
	return ValidatorFunc[string](func(value string) error {
		if len(value) < n {
			return fmt.Errorf("string length %d is below minimum %d", len(value), n)
		}
		return nil
	})
}

// MaxLen rejects strings longer than n bytes.
func MaxLen(n int) Validator[string] {
	return ValidatorFunc[string](func(value string) error {
		if len(value) > n {
			return fmt.Errorf("string length %d exceeds maximum %d", len(value), n)
		}
		return nil
	})
}

// MinItems rejects lists with fewer than n elements.
func MinItems[E any](n int) Validator[[]E] {
	return ValidatorFunc[[]E](func(value []E) error {
		if len(value) < n {
			return fmt.Errorf("list length %d is below minimum %d", len(value), n)
		}
		return nil
	})
}

var errEmpty = errors.New("value is empty")

// NotEmpty rejects the empty string.
func NotEmpty() Validator[string] {
	return ValidatorFunc[string](func(value string) error {
		if value == "" {
			return errEmpty
		}
		return nil
	})
}

// OneOf rejects values outside allowed.
func OneOf[T comparable](allowed ...T) Validator[T] {
	return ValidatorFunc[T](func(value T) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		opts := make([]string, len(allowed))
		for i, a := range allowed {
			opts[i] = fmt.Sprint(a)
		}
		return fmt.Errorf("value %q must be one of: %s", fmt.Sprint(value), strings.Join(opts, ", "))
	})
}

var (
	ruleValidatorOnce sync.Once
	ruleValidator     *validator.Validate
)

// Rule validates the value against a go-playground/validator tag such as
// "email", "url" or "gte=1,lte=65535".
func Rule[T any](tag string) Validator[T] {
	return ValidatorFunc[T](func(value T) error {
		ruleValidatorOnce.Do(func() {
			ruleValidator = validator.New()
		})
		if err := ruleValidator.Var(value, tag); err != nil {
			return fmt.Errorf("rule %q: %w", tag, err)
		}
		return nil
	})
}
