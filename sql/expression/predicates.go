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

	"github.com/PrytkovD/oip/sql"
)

// IsNotNull returns a predicate expression that is true when e
// evaluates to a non-nil value. Sugar recovered from
// original_source, built on top of Func rather than a new AST kind.
func IsNotNull(e sql.Expression) sql.Expression {
	return NewFunc(fmt.Sprintf("is_not_null(%s)", e.Name()), func(args []sql.Value) (sql.Value, error) {
		return args[0] != nil, nil
	}, e)
}

// IsIn returns a predicate expression that is true when e's value
// equals one of set.
func IsIn(e sql.Expression, set []sql.Value) sql.Expression {
	return NewFunc(fmt.Sprintf("is_in(%s)", e.Name()), func(args []sql.Value) (sql.Value, error) {
		for _, v := range set {
			if args[0] == v {
				return true, nil
			}
		}
		return false, nil
	}, e)
}
