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

// Package graphutil adapts control-flow graphs to existing graph libraries so
// that generic algorithms (traversal orders, strongly connected components)
// can run on them.
package graphutil

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/awslabs/tac-dataflow/analysis/cfg"
	"github.com/awslabs/tac-dataflow/analysis/ir"
)

// A CFGraph is a view of a cfg.CFG satisfying both the yourbasic/graph
// Iterator interface and Gonum's graph.Directed interface. Node ids are
// positions in cfg.Nodes(), so ids are dense in [0, Order()).
type CFGraph struct {
	g     *cfg.CFG
	nodes []ir.Stmt
	ids   map[ir.Stmt]int64
}

// NewCFGraph returns an adapter for g.
func NewCFGraph(g *cfg.CFG) *CFGraph {
	nodes := g.Nodes()
	ids := make(map[ir.Stmt]int64, len(nodes))
	for i, n := range nodes {
		ids[n] = int64(i)
	}
	return &CFGraph{g: g, nodes: nodes, ids: ids}
}

// Stmt returns the CFG node with the given id.
func (c *CFGraph) Stmt(id int64) ir.Stmt {
	return c.nodes[id]
}

// ID returns the id of a CFG node.
func (c *CFGraph) ID(node ir.Stmt) int64 {
	return c.ids[node]
}

// Order implements the yourbasic/graph Iterator interface.
func (c *CFGraph) Order() int {
	return len(c.nodes)
}

// Visit implements the yourbasic/graph Iterator interface. Edge costs are
// uniformly 1.
func (c *CFGraph) Visit(v int, do func(w int, cost int64) bool) bool {
	if v < 0 || v >= len(c.nodes) {
		return false
	}
	for _, succ := range c.g.SuccsOf(c.nodes[v]) {
		if do(int(c.ids[succ]), 1) {
			return true
		}
	}
	return false
}

// Node implements gonum's graph.Graph.
func (c *CFGraph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(c.nodes)) {
		return nil
	}
	return simple.Node(id)
}

// Nodes implements gonum's graph.Graph.
func (c *CFGraph) Nodes() graph.Nodes {
	all := make([]graph.Node, len(c.nodes))
	for i := range c.nodes {
		all[i] = simple.Node(i)
	}
	return iterator.NewOrderedNodes(all)
}

// From implements gonum's graph.Graph.
func (c *CFGraph) From(id int64) graph.Nodes {
	return c.neighbors(c.g.SuccsOf(c.nodes[id]))
}

// To implements gonum's graph.Directed.
func (c *CFGraph) To(id int64) graph.Nodes {
	return c.neighbors(c.g.PredsOf(c.nodes[id]))
}

// HasEdgeBetween implements gonum's graph.Graph.
func (c *CFGraph) HasEdgeBetween(xid, yid int64) bool {
	return c.HasEdgeFromTo(xid, yid) || c.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo implements gonum's graph.Directed.
func (c *CFGraph) HasEdgeFromTo(uid, vid int64) bool {
	target := c.nodes[vid]
	for _, succ := range c.g.SuccsOf(c.nodes[uid]) {
		if succ == target {
			return true
		}
	}
	return false
}

// Edge implements gonum's graph.Graph.
func (c *CFGraph) Edge(uid, vid int64) graph.Edge {
	if !c.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

func (c *CFGraph) neighbors(stmts []ir.Stmt) graph.Nodes {
	if len(stmts) == 0 {
		return graph.Empty
	}
	// successor and predecessor lists may contain duplicates when two edges
	// share endpoints (e.g. a switch with identical targets); gonum iterators
	// must yield each neighbor once
	seen := make(map[int64]bool, len(stmts))
	var all []graph.Node
	for _, s := range stmts {
		id := c.ids[s]
		if !seen[id] {
			seen[id] = true
			all = append(all, simple.Node(id))
		}
	}
	return iterator.NewOrderedNodes(all)
}
