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

package analysis

import (
	"github.com/awslabs/tac-dataflow/analysis/cfg"
	"github.com/awslabs/tac-dataflow/analysis/ir"
	"github.com/awslabs/tac-dataflow/internal/funcutil"
	"github.com/awslabs/tac-dataflow/internal/graphutil"
)

// CFGStatistics summarizes the shape of a control-flow graph.
type CFGStatistics struct {
	// Nodes is the number of nodes, synthetic entry and exit included
	Nodes int

	// Edges is the number of control-flow edges
	Edges int

	// Loops is the number of control-flow cycles: strongly connected
	// components with at least two nodes, plus self-loops
	Loops int
}

// ComputeCFGStatistics computes node, edge and loop counts for g.
func ComputeCFGStatistics(g *cfg.CFG) CFGStatistics {
	stats := CFGStatistics{Nodes: g.Size()}
	for _, node := range g.Nodes() {
		stats.Edges += len(g.OutEdgesOf(node))
		if funcutil.Contains(g.SuccsOf(node), node) {
			stats.Loops++
		}
	}
	for _, component := range graphutil.StrongComponents(g) {
		if len(component) >= 2 {
			stats.Loops++
		}
	}
	return stats
}

// LoopNodes returns the nodes of g that sit on a control-flow cycle, in graph
// order.
func LoopNodes(g *cfg.CFG) []ir.Stmt {
	inCycle := map[ir.Stmt]bool{}
	for _, component := range graphutil.StrongComponents(g) {
		if len(component) >= 2 {
			for _, node := range component {
				inCycle[node] = true
			}
		}
	}
	for _, node := range g.Nodes() {
		if funcutil.Contains(g.SuccsOf(node), node) {
			inCycle[node] = true
		}
	}
	var nodes []ir.Stmt
	for _, node := range g.Nodes() {
		if inCycle[node] {
			nodes = append(nodes, node)
		}
	}
	return nodes
}
