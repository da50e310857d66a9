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

// Package deadcode detects dead code in a method body: statements that are
// control-flow unreachable once constant conditions have been folded, and
// reachable assignments whose side-effect-free value is never observed.
package deadcode

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/awslabs/tac-dataflow/analysis/cfg"
	"github.com/awslabs/tac-dataflow/analysis/constprop"
	"github.com/awslabs/tac-dataflow/analysis/dataflow"
	"github.com/awslabs/tac-dataflow/analysis/ir"
	"github.com/awslabs/tac-dataflow/analysis/liveness"
)

// ID is the well-known identifier of this analysis in the IR result registry.
const ID = "deadcode"

// Analyze classifies the dead statements of a method body and returns them
// sorted by statement index. It consumes three previously computed results
// from the body's registry: the control-flow graph (cfg.ID), the constant
// propagation fact table (constprop.ID) and the liveness fact table
// (liveness.ID). A missing or mistyped result is an error.
func Analyze(body *ir.IR) ([]ir.Stmt, error) {
	g, err := result[*cfg.CFG](body, cfg.ID)
	if err != nil {
		return nil, err
	}
	constants, err := result[*dataflow.Result[*constprop.CPFact]](body, constprop.ID)
	if err != nil {
		return nil, err
	}
	live, err := result[*dataflow.Result[*liveness.SetFact]](body, liveness.ID)
	if err != nil {
		return nil, err
	}

	// Every statement starts dead; a breadth-first walk from the entry
	// removes the statements that are reachable along non-folded edges.
	// Reachable assignments may be re-marked dead by the liveness rule.
	dead := make(map[ir.Stmt]bool, len(body.Stmts))
	for _, s := range body.Stmts {
		dead[s] = true
	}

	queue := []ir.Stmt{g.Entry()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		delete(dead, cur)
		if g.IsExit(cur) {
			continue
		}

		switch s := cur.(type) {
		case *ir.IfStmt:
			cond := constprop.Evaluate(s.Cond, constants.InFact(cur))
			if cond.IsConstant() {
				// only the branch matching the folded condition is alive
				if cond.Constant() == 1 {
					if dead[s.Target] {
						queue = append(queue, s.Target)
					}
				} else {
					for _, e := range g.OutEdgesOf(cur) {
						if e.Kind == cfg.IfFalse && dead[e.Target] {
							queue = append(queue, e.Target)
						}
					}
				}
				continue
			}
		case *ir.SwitchStmt:
			val := constprop.Evaluate(s.Var, constants.InFact(cur))
			if val.IsConstant() {
				target := s.DefaultTarget
				for _, c := range s.Cases {
					if c.Value == val.Constant() {
						target = c.Target
						break
					}
				}
				if dead[target] {
					queue = append(queue, target)
				}
				continue
			}
		case *ir.AssignStmt:
			// a reachable assignment is still dead when its value has no side
			// effect and its variable is not live after the statement
			if lhs, ok := s.LHS.(*ir.Var); ok &&
				hasNoSideEffect(s.RHS) && !live.OutFact(cur).Contains(lhs) {
				dead[cur] = true
			}
		}

		// generic rule: follow every outgoing edge whose target has not been
		// reached yet
		for _, e := range g.OutEdgesOf(cur) {
			if dead[e.Target] {
				queue = append(queue, e.Target)
			}
		}
	}

	deadStmts := make([]ir.Stmt, 0, len(dead))
	for s := range dead {
		deadStmts = append(deadStmts, s)
	}
	slices.SortFunc(deadStmts, func(a, b ir.Stmt) bool { return a.Index() < b.Index() })
	return deadStmts, nil
}

// hasNoSideEffect reports whether evaluating rvalue provably has no side
// effect. Allocations, casts, field accesses, array accesses and calls are
// all potentially effectful or fault-raising; so are division and remainder,
// which can raise on a zero divisor.
func hasNoSideEffect(rvalue ir.Exp) bool {
	switch e := rvalue.(type) {
	case *ir.NewExp, *ir.CastExp, *ir.FieldAccess, *ir.ArrayAccess, *ir.InvokeExp:
		return false
	case *ir.ArithmeticExp:
		return e.Op != ir.Div && e.Op != ir.Rem
	}
	return true
}

// result fetches a typed analysis result from the body's registry.
func result[T any](body *ir.IR, id string) (T, error) {
	var zero T
	r, ok := body.Result(id)
	if !ok {
		return zero, fmt.Errorf("%s: missing analysis result %q", body.Method, id)
	}
	typed, ok := r.(T)
	if !ok {
		return zero, fmt.Errorf("%s: analysis result %q has type %T", body.Method, id, r)
	}
	return typed, nil
}
