package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"marketplace/internal/errors"
)

var jsonNull = []byte("null")

// Optional is a field that is either absent or set to a value.
// JSON null decodes as absent, so "not provided" and "null" are never applied.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional set to v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// MarshalJSON renders an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return jsonNull, nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON treats null as absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Optional[T]{}

		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)

	return nil
}

// UnmarshalParam decodes a form or query value. It lets echo's binder fill
// Optional fields from multipart bodies.
func (o *Optional[T]) UnmarshalParam(param string) error {
	var v T
	switch target := any(&v).(type) {
	case *string:
		*target = param
	case *float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(param), 64)
		if err != nil {
			return errors.Wrapf(err, "invalid number %q", param)
		}
		*target = f
	case *int:
		n, err := strconv.Atoi(strings.TrimSpace(param))
		if err != nil {
			return errors.Wrapf(err, "invalid integer %q", param)
		}
		*target = n
	case *bool:
		b, err := strconv.ParseBool(strings.TrimSpace(param))
		if err != nil {
			return errors.Wrapf(err, "invalid boolean %q", param)
		}
		*target = b
	case *ServiceStatus:
		*target = ServiceStatus(param)
	case *PriceStatus:
		*target = PriceStatus(param)
	default:
		return errors.Errorf("unsupported optional type %T", v)
	}
	*o = Some(v)

	return nil
}
