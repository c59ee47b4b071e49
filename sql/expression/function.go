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

package expression

import (
	"fmt"
	"strings"

	"github.com/PrytkovD/oip/sql"
)

// Func is a scalar function applied to one or more argument
// expressions, e.g. length(name) or lower(email).
type Func struct {
	name     string
	args     []sql.Expression
	apply    func(args []sql.Value) (sql.Value, error)
	alias    *string
	compiled sql.CompiledFunc
}

// NewFunc builds a function expression named name over args, computed
// by apply once every argument has been evaluated.
func NewFunc(name string, apply func([]sql.Value) (sql.Value, error), args ...sql.Expression) *Func {
	return &Func{name: name, args: args, apply: apply}
}

func (f *Func) structural() string {
	names := make([]string, len(f.args))
	for i, a := range f.args {
		names[i] = a.Name()
	}
	return fmt.Sprintf("%s(%s)", f.name, strings.Join(names, ", "))
}

func (f *Func) Name() string         { return resolveName(f.alias, f.structural()) }
func (f *Func) OriginalName() string { return f.structural() }

// Children exposes args for sql.ReferencedNames.
func (f *Func) Children() []sql.Expression { return f.args }

func (f *Func) evalArgs(rec sql.Record) ([]sql.Value, error) {
	vals := make([]sql.Value, len(f.args))
	for i, a := range f.args {
		v, err := a.Evaluate(rec)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (f *Func) Evaluate(rec sql.Record) (sql.Value, error) {
	if f.compiled != nil {
		return f.compiled(rec)
	}
	args, err := f.evalArgs(rec)
	if err != nil {
		return nil, err
	}
	return f.apply(args)
}

func (f *Func) Compile() sql.CompiledFunc {
	if f.compiled == nil {
		f.compiled = func(rec sql.Record) (sql.Value, error) {
			args, err := f.evalArgs(rec)
			if err != nil {
				return nil, err
			}
			return f.apply(args)
		}
	}
	return f.compiled
}

func (f *Func) Alias(alias string) sql.Expression {
	cp := *f
	cp.alias = &alias
	return &cp
}
