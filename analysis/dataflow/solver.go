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
	"github.com/awslabs/tac-dataflow/internal/funcutil"
	"github.com/awslabs/tac-dataflow/internal/graphutil"
)

// A Solver drives a dataflow analysis over a control-flow graph to its fixed
// point with worklist iteration. Solving is single-threaded; the worklist is
// a plain FIFO.
type Solver[Fact any] struct {
	analysis Analysis[Fact]
}

// NewSolver returns a solver for the given analysis.
func NewSolver[Fact any](analysis Analysis[Fact]) *Solver[Fact] {
	return &Solver[Fact]{analysis: analysis}
}

// Solve runs analysis over g to its fixed point and returns the per-node fact
// table. It is shorthand for NewSolver(analysis).Solve(g).
func Solve[Fact any](analysis Analysis[Fact], g *cfg.CFG) *Result[Fact] {
	return NewSolver(analysis).Solve(g)
}

// Solve iterates the analysis over g until no node's fact changes and returns
// the resulting fact table. The table contains an IN and an OUT fact for
// every node of g, entry and exit included.
func (s *Solver[Fact]) Solve(g *cfg.CFG) *Result[Fact] {
	result := s.initialize(g)
	if s.analysis.IsForward() {
		s.solveForward(g, result)
	} else {
		s.solveBackward(g, result)
	}
	return result
}

// initialize gives every node fresh initial IN/OUT facts, then installs the
// boundary fact: at the entry's OUT for a forward analysis, at the exit's IN
// for a backward one.
func (s *Solver[Fact]) initialize(g *cfg.CFG) *Result[Fact] {
	result := newResult[Fact](g.Size())
	for _, node := range g.Nodes() {
		result.setInFact(node, s.analysis.NewInitialFact())
		result.setOutFact(node, s.analysis.NewInitialFact())
	}
	if s.analysis.IsForward() {
		result.setOutFact(g.Entry(), s.analysis.NewBoundaryFact(g))
	} else {
		result.setInFact(g.Exit(), s.analysis.NewBoundaryFact(g))
	}
	return result
}

// solveForward recomputes each dequeued node's IN as the meet of its
// predecessors' OUT facts, applies the transfer function, and re-enqueues the
// node's successors whenever the OUT fact changed. The seed order is
// breadth-first from the entry; order only affects how many iterations the
// fixed point takes, never the fixed point itself.
func (s *Solver[Fact]) solveForward(g *cfg.CFG, result *Result[Fact]) {
	worklist := graphutil.BreadthFirstOrder(g)
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		for _, pred := range g.PredsOf(cur) {
			s.analysis.MeetInto(result.OutFact(pred), result.InFact(cur))
		}
		if s.analysis.TransferNode(cur, result.InFact(cur), result.OutFact(cur)) {
			for _, succ := range g.SuccsOf(cur) {
				if !funcutil.Contains(worklist, succ) {
					worklist = append(worklist, succ)
				}
			}
		}
	}
}

// solveBackward is the mirror of solveForward: OUT is the meet of the
// successors' IN facts, and predecessors are re-enqueued when IN changed.
func (s *Solver[Fact]) solveBackward(g *cfg.CFG, result *Result[Fact]) {
	worklist := reversed(graphutil.BreadthFirstOrder(g))
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		for _, succ := range g.SuccsOf(cur) {
			s.analysis.MeetInto(result.InFact(succ), result.OutFact(cur))
		}
		if s.analysis.TransferNode(cur, result.InFact(cur), result.OutFact(cur)) {
			for _, pred := range g.PredsOf(cur) {
				if !funcutil.Contains(worklist, pred) {
					worklist = append(worklist, pred)
				}
			}
		}
	}
}

func reversed(nodes []ir.Stmt) []ir.Stmt {
	out := make([]ir.Stmt, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}
	return out
}
