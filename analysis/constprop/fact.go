// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package constprop

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/awslabs/tac-dataflow/analysis/ir"
)

// A CPFact maps variables to lattice values at one program point. A variable
// absent from the fact is implicitly Undef: Get implements that default, and
// Update keeps the representation canonical by never storing Undef, so two
// facts are equal exactly when their maps are equal.
type CPFact struct {
	m map[*ir.Var]Value
}

// NewCPFact returns an empty fact, in which every variable is Undef.
func NewCPFact() *CPFact {
	return &CPFact{m: map[*ir.Var]Value{}}
}

// Get returns the value of v in the fact, Undef when v is not tracked.
func (f *CPFact) Get(v *ir.Var) Value {
	if val, ok := f.m[v]; ok {
		return val
	}
	return Undef()
}

// Update sets the value of v and reports whether the stored value changed.
// Setting a variable to Undef removes it from the fact.
func (f *CPFact) Update(v *ir.Var, val Value) bool {
	old, tracked := f.m[v]
	if val.IsUndef() {
		if tracked {
			delete(f.m, v)
			return true
		}
		return false
	}
	if tracked && old == val {
		return false
	}
	f.m[v] = val
	return true
}

// Keys returns the variables explicitly tracked by the fact, in no particular
// order.
func (f *CPFact) Keys() []*ir.Var {
	return maps.Keys(f.m)
}

// Copy returns an independent copy of the fact.
func (f *CPFact) Copy() *CPFact {
	return &CPFact{m: maps.Clone(f.m)}
}

// CopyFrom merges every entry of other into f and reports whether f changed.
// Entries of f absent from other are kept. The merge never deletes: facts
// only grow while solving, and values installed outside a transfer function,
// like the boundary fact at the entry node, must survive the identity
// transfer of their own node.
func (f *CPFact) CopyFrom(other *CPFact) bool {
	changed := false
	for v, val := range other.m {
		if f.Update(v, val) {
			changed = true
		}
	}
	return changed
}

// Equal reports whether f and other assign the same value to every variable,
// the implicit Undef default included.
func (f *CPFact) Equal(other *CPFact) bool {
	return maps.Equal(f.m, other.m)
}

// String renders the fact sorted by variable name, for stable logs and tests.
func (f *CPFact) String() string {
	vars := maps.Keys(f.m)
	slices.SortFunc(vars, func(a, b *ir.Var) bool { return a.Name < b.Name })
	entries := make([]string, len(vars))
	for i, v := range vars {
		entries[i] = fmt.Sprintf("%s=%s", v.Name, f.m[v])
	}
	return "{" + strings.Join(entries, ", ") + "}"
}
