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
	"github.com/awslabs/tac-dataflow/analysis/cfg"
	"github.com/awslabs/tac-dataflow/analysis/ir"
)

// Analysis is a dataflow analysis solvable by the worklist solver. Fact is
// the per-node abstract state; implementations use a pointer fact type so
// that MeetInto and TransferNode can mutate facts in place.
//
// For the solver to terminate, MeetInto must compute a meet over a lattice of
// finite height and TransferNode must be monotone with respect to the
// meet-ordering. This is a precondition, not a checked invariant.
type Analysis[Fact any] interface {
	// IsForward reports whether the analysis propagates facts along the
	// direction of control flow (forward) or against it (backward).
	IsForward() bool

	// NewBoundaryFact returns the fact holding at the boundary of the graph:
	// after the entry node for a forward analysis, before the exit node for a
	// backward one.
	NewBoundaryFact(g *cfg.CFG) Fact

	// NewInitialFact returns the fact every other program point starts from.
	NewInitialFact() Fact

	// MeetInto meets fact into target, mutating target.
	MeetInto(fact Fact, target Fact)

	// TransferNode applies the node transfer function. For a forward analysis
	// it reads in and updates out; for a backward analysis it reads out and
	// updates in. It reports whether the updated fact changed.
	TransferNode(node ir.Stmt, in Fact, out Fact) bool
}
