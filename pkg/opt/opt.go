package opt

import (
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set query parameters on a content
// request or parameters on a generation request
type Opt func(*opts) error

// set of options
type opts struct {
	url.Values
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*opts, error) {
	opts := &opts{Values: make(url.Values)}
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Query returns the subset of values for the given keys, which can be
// passed as URL query parameters
func (o *opts) Query(keys ...string) url.Values {
	query := make(url.Values)
	for _, key := range keys {
		if value, ok := o.Values[key]; ok {
			query[key] = value
		}
	}
	return query
}

// GetString returns the trimmed value for key, or empty string if not set
func (o *opts) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[len(values)-1])
	}
	return ""
}

// GetStringDefault returns the value for key, or def if not set or empty
func (o *opts) GetStringDefault(key, def string) string {
	if value := o.GetString(key); value != "" {
		return value
	}
	return def
}

// GetBool returns the boolean value for key, or false if not set or invalid
func (o *opts) GetBool(key string) bool {
	if v, err := strconv.ParseBool(o.GetString(key)); err == nil {
		return v
	}
	return false
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *opts) GetUint(key string) uint {
	if v, err := strconv.ParseUint(o.GetString(key), 10, 64); err == nil {
		return uint(v)
	}
	return 0
}

// GetUintDefault returns the uint value for key, or def if not set or zero
func (o *opts) GetUintDefault(key string, def uint) uint {
	if v := o.GetUint(key); v > 0 {
		return v
	}
	return def
}

// Has returns true if the key exists
func (o *opts) Has(key string) bool {
	_, ok := o.Values[key]
	return ok
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *opts) error {
		return err
	}
}

// NoOp returns an option which does nothing
func NoOp() Opt {
	return func(o *opts) error {
		return nil
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *opts) error {
		for _, opt := range options {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// SetString replaces the value for key. An empty value is ignored.
func SetString(key, value string) Opt {
	return func(o *opts) error {
		if value = strings.TrimSpace(value); value != "" {
			o.Values.Set(key, value)
		}
		return nil
	}
}

// SetUint replaces the value for key. A zero value is ignored.
func SetUint(key string, value uint) Opt {
	return func(o *opts) error {
		if value > 0 {
			o.Values.Set(key, strconv.FormatUint(uint64(value), 10))
		}
		return nil
	}
}

// SetBool replaces the value for key
func SetBool(key string, value bool) Opt {
	return func(o *opts) error {
		o.Values.Set(key, strconv.FormatBool(value))
		return nil
	}
}
