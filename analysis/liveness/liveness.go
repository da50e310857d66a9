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

// Package liveness implements live variable analysis as a backward dataflow
// analysis: a variable is live at a program point when some path from that
// point reads it before overwriting it. The dead code detector consumes the
// per-node OUT sets to recognize assignments whose value is never observed.
package liveness

import (
	"golang.org/x/tools/container/intsets"

	"github.com/awslabs/tac-dataflow/analysis/cfg"
	"github.com/awslabs/tac-dataflow/analysis/ir"
)

// ID is the well-known identifier of this analysis in the IR result registry.
const ID = "livevar"

// A SetFact is a set of variables, backed by a sparse bitset over Var.Index.
// The dense variable indices assigned by ir.New keep the bitsets small.
type SetFact struct {
	set intsets.Sparse
}

// NewSetFact returns an empty variable set.
func NewSetFact() *SetFact {
	return &SetFact{}
}

// Contains reports whether v is in the set.
func (f *SetFact) Contains(v *ir.Var) bool {
	return f.set.Has(v.Index)
}

// Add inserts v and reports whether the set changed.
func (f *SetFact) Add(v *ir.Var) bool {
	return f.set.Insert(v.Index)
}

// Remove deletes v and reports whether the set changed.
func (f *SetFact) Remove(v *ir.Var) bool {
	return f.set.Remove(v.Index)
}

// Union adds every element of other and reports whether the set changed.
func (f *SetFact) Union(other *SetFact) bool {
	return f.set.UnionWith(&other.set)
}

// Copy returns an independent copy of the set.
func (f *SetFact) Copy() *SetFact {
	c := NewSetFact()
	c.set.Copy(&f.set)
	return c
}

// CopyFrom makes f identical to other and reports whether f changed.
func (f *SetFact) CopyFrom(other *SetFact) bool {
	if f.set.Equals(&other.set) {
		return false
	}
	f.set.Copy(&other.set)
	return true
}

// Equal reports whether the two sets hold the same variables.
func (f *SetFact) Equal(other *SetFact) bool {
	return f.set.Equals(&other.set)
}

// Len returns the number of variables in the set.
func (f *SetFact) Len() int {
	return f.set.Len()
}

// Vars maps the set back to variables through the method's variable table
// (ir.IR.Vars), in index order.
func (f *SetFact) Vars(table []*ir.Var) []*ir.Var {
	var vars []*ir.Var
	for _, v := range table {
		if f.Contains(v) {
			vars = append(vars, v)
		}
	}
	return vars
}

func (f *SetFact) String() string {
	return f.set.String()
}

// LiveVariables is the backward dataflow analysis computing, for every
// program point, the set of variables that may still be read. It implements
// dataflow.Analysis[*SetFact].
type LiveVariables struct{}

// New returns the live variable analysis.
func New() *LiveVariables {
	return &LiveVariables{}
}

// IsForward implements dataflow.Analysis: liveness is backward.
func (*LiveVariables) IsForward() bool {
	return false
}

// NewBoundaryFact returns the empty set: nothing is live after the exit.
func (*LiveVariables) NewBoundaryFact(*cfg.CFG) *SetFact {
	return NewSetFact()
}

// NewInitialFact returns the empty set.
func (*LiveVariables) NewInitialFact() *SetFact {
	return NewSetFact()
}

// MeetInto unions fact into target; the meet of may-liveness is set union.
func (*LiveVariables) MeetInto(fact, target *SetFact) {
	target.Union(fact)
}

// TransferNode computes in from out: IN = (OUT − def) ∪ uses. Reports whether
// in changed.
func (*LiveVariables) TransferNode(node ir.Stmt, in, out *SetFact) bool {
	live := out.Copy()
	if def, ok := node.Def(); ok {
		live.Remove(def)
	}
	for _, use := range node.Uses() {
		live.Add(use)
	}
	return in.CopyFrom(live)
}
