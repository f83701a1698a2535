package parser

import (
	"fmt"
	"strings"

	pgnerrors "github.com/lgbarn/pgn-notation-go/internal/errors"
)

// errNoMatch is returned by every rule that does not match at the current
// position. A failing rule always hands back its input unchanged.
var errNoMatch = fmt.Errorf("%w: no match", pgnerrors.ErrParseFailure)

// rule consumes a prefix of input and returns a value and the remainder.
type rule[T any] func(input string) (value T, rest string, err error)

// literal matches the exact text s.
func literal(s string) rule[string] {
	return func(input string) (string, string, error) {
		if strings.HasPrefix(input, s) {
			return s, input[len(s):], nil
		}
		return "", input, errNoMatch
	}
}

// is matches the exact text s and yields v.
func is[T any](s string, v T) rule[T] {
	return func(input string) (T, string, error) {
		if strings.HasPrefix(input, s) {
			return v, input[len(s):], nil
		}
		var zero T
		return zero, input, errNoMatch
	}
}

// alt tries each rule in order from the same position; the first match wins.
func alt[T any](rules ...rule[T]) rule[T] {
	return func(input string) (T, string, error) {
		for _, r := range rules {
			if v, rest, err := r(input); err == nil {
				return v, rest, nil
			}
		}
		var zero T
		return zero, input, errNoMatch
	}
}

// maybe makes r optional. Absence yields nil and consumes nothing.
func maybe[T any](r rule[T]) rule[*T] {
	return func(input string) (*T, string, error) {
		v, rest, err := r(input)
		if err != nil {
			return nil, input, nil
		}
		return &v, rest, nil
	}
}

// present makes r optional and reports only whether it matched.
func present[T any](r rule[T]) rule[bool] {
	return func(input string) (bool, string, error) {
		_, rest, err := r(input)
		if err != nil {
			return false, input, nil
		}
		return true, rest, nil
	}
}

// many applies r zero or more times. It stops on the first failure or
// on a match that consumed nothing.
func many[T any](r rule[T]) rule[[]T] {
	return func(input string) ([]T, string, error) {
		var values []T
		rest := input
		for {
			v, next, err := r(rest)
			if err != nil || len(next) == len(rest) {
				return values, rest, nil
			}
			values = append(values, v)
			rest = next
		}
	}
}

// followedBy succeeds with no consumption when r would match at input.
func followedBy[T any](r rule[T]) rule[struct{}] {
	return func(input string) (struct{}, string, error) {
		if _, _, err := r(input); err != nil {
			return struct{}{}, input, errNoMatch
		}
		return struct{}{}, input, nil
	}
}

// terminated matches r then skip, keeping r's value.
func terminated[T, U any](r rule[T], skip rule[U]) rule[T] {
	return func(input string) (T, string, error) {
		v, rest, err := r(input)
		if err != nil {
			return v, input, err
		}
		if _, rest, err = skip(rest); err != nil {
			var zero T
			return zero, input, err
		}
		return v, rest, nil
	}
}

// convert maps the value of r through f.
func convert[T, U any](r rule[T], f func(T) U) rule[U] {
	return func(input string) (U, string, error) {
		v, rest, err := r(input)
		if err != nil {
			var zero U
			return zero, input, err
		}
		return f(v), rest, nil
	}
}

// preceded matches skip then r, keeping r's value.
func preceded[T, U any](skip rule[T], r rule[U]) rule[U] {
	return func(input string) (U, string, error) {
		_, rest, err := skip(input)
		if err != nil {
			var zero U
			return zero, input, err
		}
		v, rest, err := r(rest)
		if err != nil {
			return v, input, err
		}
		return v, rest, nil
	}
}
