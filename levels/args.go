package levels

import (
	"fmt"
	"math"
	"strconv"
)

// Args are the named constructor arguments of a level object. Values come
// straight from JSON, so numbers arrive as float64.
type Args map[string]any

// Int returns an integer argument.
func (a Args) Int(key string) (int, error) {
	v, ok := a[key]
	if !ok {
		return 0, fmt.Errorf("missing argument %q", key)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("argument %q: want int, got %T", key, v)
	}
	return n, nil
}

// OptInt returns an integer argument and whether it was present and non-null.
func (a Args) OptInt(key string) (int, bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	n, ok := toInt(v)
	if !ok {
		return 0, false, fmt.Errorf("argument %q: want int, got %T", key, v)
	}
	return n, true, nil
}

// IntOr returns an integer argument or fallback when absent.
func (a Args) IntOr(key string, fallback int) (int, error) {
	n, ok, err := a.OptInt(key)
	if err != nil || !ok {
		return fallback, err
	}
	return n, nil
}

// Float returns a numeric argument or fallback when absent.
func (a Args) Float(key string, fallback float64) (float64, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return fallback, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("argument %q: want number, got %T", key, v)
}

// String returns a string argument or fallback when absent.
func (a Args) String(key, fallback string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q: want string, got %T", key, v)
	}
	return s, nil
}

// Bool returns a bool argument or fallback when absent.
func (a Args) Bool(key string, fallback bool) (bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return fallback, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case float64:
		return b != 0, nil
	case int:
		return b != 0, nil
	}
	return false, fmt.Errorf("argument %q: want bool, got %T", key, v)
}

// XY returns the mandatory x and y arguments.
func (a Args) XY() (int, int, error) {
	x, err := a.Int("x")
	if err != nil {
		return 0, 0, err
	}
	y, err := a.Int("y")
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	}
	return 0, false
}
