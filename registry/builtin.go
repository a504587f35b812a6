/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-openapi/strfmt"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// NewDefaultTypeRegistry returns a registry preloaded with codecs for
// time.Time, strfmt.DateTime, strfmt.Date and uuid.UUID.
func NewDefaultTypeRegistry() *TypeRegistry {
	r := NewTypeRegistry()

	Register(r,
		func(t time.Time) (Value, error) { return t.UTC().Format(time.RFC3339Nano), nil },
		parseTime,
	)
	Register(r,
		func(t strfmt.DateTime) (Value, error) {
			return time.Time(t).UTC().Format(time.RFC3339Nano), nil
		},
		func(v Value) (strfmt.DateTime, error) {
			t, err := parseTime(v)
			return strfmt.DateTime(t), err
		},
	)
	Register(r,
		func(d strfmt.Date) (Value, error) { return d.String(), nil },
		func(v Value) (strfmt.Date, error) {
			t, err := parseTime(v)
			return strfmt.Date(t), err
		},
	)
	Register(r,
		func(id uuid.UUID) (Value, error) { return id.String(), nil },
		parseUUID,
	)

	return r
}

// RegisterJSON stores T as JSON text.
func RegisterJSON[T any](r *TypeRegistry) {
	Register(r,
		func(v T) (Value, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			return string(b), nil
		},
		func(v Value) (T, error) {
			var out T
			var raw []byte
			switch tv := v.(type) {
			case string:
				raw = []byte(tv)
			case []byte:
				raw = tv
			default:
				return out, fmt.Errorf("cannot decode JSON from %T", v)
			}
			err := json.Unmarshal(raw, &out)
			return out, err
		},
	)
}

// parseTime accepts what drivers hand back for a time column: a time.Time,
// text in any common layout, or unix seconds.
func parseTime(v Value) (time.Time, error) {
	switch tv := v.(type) {
	case time.Time:
		return tv, nil
	case string:
		return parseTimeText(tv)
	case []byte:
		return parseTimeText(string(tv))
	case int64:
		return time.Unix(tv, 0).UTC(), nil
	case int:
		return time.Unix(int64(tv), 0).UTC(), nil
	case float64:
		return time.Unix(int64(tv), 0).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("cannot convert %T to time", v)
	}
}

func parseTimeText(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return dateparse.ParseIn(s, time.UTC)
}

func parseUUID(v Value) (uuid.UUID, error) {
	switch tv := v.(type) {
	case uuid.UUID:
		return tv, nil
	case string:
		return uuid.Parse(tv)
	case []byte:
		if len(tv) == 16 {
			return uuid.FromBytes(tv)
		}
		return uuid.ParseBytes(tv)
	default:
		return uuid.Nil, fmt.Errorf("cannot convert %T to uuid", v)
	}
}
