// Copyright 2026 The OIP Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sql defines the core types shared by the relational engine:
// values, column types, expressions, records, record sets and
// aggregations. Concrete implementations live in sibling packages
// (sql/expression, sql/plan, sql/aggregation) that import this package,
// never the reverse.
package sql

import (
	"fmt"

	"github.com/spf13/cast"
)

// Value is anything an Expression can evaluate to: an int64, a float64,
// a string, a []float64 (the engine's only list type), or nil.
type Value interface{}

// Type identifies the declared type of a table column.
type Type int

const (
	// IntType holds a signed 64-bit integer.
	IntType Type = iota
	// FloatType holds a 64-bit float.
	FloatType
	// StringType holds an opaque string.
	StringType
	// ListFloatType holds a list of floats, the engine's only
	// composite column type.
	ListFloatType
)

// String renders a Type the way it appears in CREATE TABLE-style schema
// declarations and error messages.
func (t Type) String() string {
	switch t {
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	case ListFloatType:
		return "list[float]"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Coerce converts raw into a value matching t. It is the single
// choke point the paginated CSV storage uses to turn a freshly read
// string cell into a typed Value, and is also used to sanity-check
// values handed to Table.Insert.
func Coerce(t Type, raw Value) (Value, error) {
	if raw == nil {
		return nil, nil
	}
	switch t {
	case IntType:
		v, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, ErrTypeMismatch.New(raw, t)
		}
		return v, nil
	case FloatType:
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, ErrTypeMismatch.New(raw, t)
		}
		return v, nil
	case StringType:
		return cast.ToString(raw), nil
	case ListFloatType:
		switch v := raw.(type) {
		case []float64:
			return v, nil
		case string:
			return parseFloatList(v)
		default:
			return nil, ErrTypeMismatch.New(raw, t)
		}
	default:
		return nil, ErrTypeMismatch.New(raw, t)
	}
}
