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

package graphutil

import (
	ybgraph "github.com/yourbasic/graph"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/awslabs/tac-dataflow/analysis/cfg"
	"github.com/awslabs/tac-dataflow/analysis/ir"
)

// BreadthFirstOrder returns every node of g: first the nodes reachable from
// the entry in breadth-first order, then any unreachable node in graph order.
func BreadthFirstOrder(g *cfg.CFG) []ir.Stmt {
	cg := NewCFGraph(g)
	order := make([]ir.Stmt, 0, cg.Order())
	visited := make(map[int64]bool, cg.Order())

	bfs := traverse.BreadthFirst{}
	bfs.Walk(cg, cg.Node(cg.ID(g.Entry())), func(n graph.Node, _ int) bool {
		visited[n.ID()] = true
		order = append(order, cg.Stmt(n.ID()))
		return false
	})

	for id := int64(0); id < int64(cg.Order()); id++ {
		if !visited[id] {
			order = append(order, cg.Stmt(id))
		}
	}
	return order
}

// StrongComponents returns the strongly connected components of g, each
// component a list of CFG nodes. Components of size one are included.
func StrongComponents(g *cfg.CFG) [][]ir.Stmt {
	cg := NewCFGraph(g)
	var components [][]ir.Stmt
	for _, comp := range ybgraph.StrongComponents(cg) {
		stmts := make([]ir.Stmt, len(comp))
		for i, id := range comp {
			stmts[i] = cg.Stmt(int64(id))
		}
		components = append(components, stmts)
	}
	return components
}
