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

package cfg

import (
	"github.com/awslabs/tac-dataflow/analysis/ir"
)

// Build constructs the control-flow graph of a method body and stores it in
// the body's result registry under ID. Statements fall through to their
// successor in program order; branches add edges to their targets; return
// statements connect to the synthetic exit node.
func Build(body *ir.IR) *CFG {
	g := &CFG{
		body:     body,
		entry:    ir.NewNop(),
		exit:     ir.NewNop(),
		preds:    map[ir.Stmt][]ir.Stmt{},
		succs:    map[ir.Stmt][]ir.Stmt{},
		outEdges: map[ir.Stmt][]*Edge{},
	}

	g.nodes = make([]ir.Stmt, 0, len(body.Stmts)+2)
	g.nodes = append(g.nodes, g.entry)
	g.nodes = append(g.nodes, body.Stmts...)
	g.nodes = append(g.nodes, g.exit)

	if len(body.Stmts) == 0 {
		g.addEdge(&Edge{Kind: Entry, Source: g.entry, Target: g.exit})
		body.StoreResult(ID, g)
		return g
	}
	g.addEdge(&Edge{Kind: Entry, Source: g.entry, Target: body.Stmts[0]})

	// next returns the fallthrough successor of the statement at position i
	next := func(i int) ir.Stmt {
		if i+1 < len(body.Stmts) {
			return body.Stmts[i+1]
		}
		return g.exit
	}

	for i, stmt := range body.Stmts {
		switch s := stmt.(type) {
		case *ir.GotoStmt:
			g.addEdge(&Edge{Kind: Goto, Source: s, Target: s.Target})
		case *ir.IfStmt:
			g.addEdge(&Edge{Kind: IfTrue, Source: s, Target: s.Target})
			g.addEdge(&Edge{Kind: IfFalse, Source: s, Target: next(i)})
		case *ir.SwitchStmt:
			for _, c := range s.Cases {
				g.addEdge(&Edge{Kind: SwitchCase, Source: s, Target: c.Target, CaseValue: c.Value})
			}
			g.addEdge(&Edge{Kind: SwitchDefault, Source: s, Target: s.DefaultTarget})
		case *ir.ReturnStmt:
			g.addEdge(&Edge{Kind: Return, Source: s, Target: g.exit})
		default:
			g.addEdge(&Edge{Kind: Fallthrough, Source: stmt, Target: next(i)})
		}
	}

	body.StoreResult(ID, g)
	return g
}
