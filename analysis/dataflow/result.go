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

package dataflow

import (
	"github.com/awslabs/tac-dataflow/analysis/ir"
)

// A Result is the per-node fact table produced by a solver run: one IN fact
// and one OUT fact per CFG node, entry and exit included. It is mutated in
// place while solving and read-only once Solve returns it.
type Result[Fact any] struct {
	inFacts  map[ir.Stmt]Fact
	outFacts map[ir.Stmt]Fact
}

func newResult[Fact any](size int) *Result[Fact] {
	return &Result[Fact]{
		inFacts:  make(map[ir.Stmt]Fact, size),
		outFacts: make(map[ir.Stmt]Fact, size),
	}
}

// InFact returns the fact holding before node.
func (r *Result[Fact]) InFact(node ir.Stmt) Fact {
	return r.inFacts[node]
}

// OutFact returns the fact holding after node.
func (r *Result[Fact]) OutFact(node ir.Stmt) Fact {
	return r.outFacts[node]
}

func (r *Result[Fact]) setInFact(node ir.Stmt, fact Fact) {
	r.inFacts[node] = fact
}

func (r *Result[Fact]) setOutFact(node ir.Stmt, fact Fact) {
	r.outFacts[node] = fact
}
