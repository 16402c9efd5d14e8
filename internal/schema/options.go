package schema

import "fmt"

// UnknownFieldPolicy decides what happens to keys a schema does not declare.
type UnknownFieldPolicy string

const (
	// UnknownFieldsDrop silently narrows the record to the declared keys.
	UnknownFieldsDrop UnknownFieldPolicy = "drop"
	// UnknownFieldsError reports every undeclared key as an issue.
	UnknownFieldsError UnknownFieldPolicy = "error"
)

// ParseUnknownFieldPolicy parses "drop" or "error".
func ParseUnknownFieldPolicy(s string) (UnknownFieldPolicy, error) {
	switch p := UnknownFieldPolicy(s); p {
	case UnknownFieldsDrop, UnknownFieldsError:
		return p, nil
	default:
		return "", fmt.Errorf("unknown field policy must be %q or %q, got %q", UnknownFieldsDrop, UnknownFieldsError, s)
	}
}

// Options tune a validation pass.
type Options struct {
	UnknownFields UnknownFieldPolicy
}

// Option mutates Options.
type Option func(*Options)

// WithUnknownFields sets the unknown field policy.
func WithUnknownFields(p UnknownFieldPolicy) Option {
	return func(o *Options) { o.UnknownFields = p }
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{UnknownFields: UnknownFieldsDrop}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
