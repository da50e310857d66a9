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

// Package cfg builds and exposes intra-procedural control-flow graphs over
// the statements of a method body. The graph has one node per statement plus
// two synthetic nodes, entry and exit; edges carry the kind of control
// transfer they represent. Loops are expected and preserved as cycles.
package cfg

import (
	"github.com/awslabs/tac-dataflow/analysis/ir"
)

// ID is the key under which a built CFG is stored in the IR result registry.
const ID = "cfg"

// EdgeKind is the kind of control transfer an edge represents.
type EdgeKind int

const (
	// Entry is the edge from the synthetic entry node to the first statement
	Entry EdgeKind = iota
	// Fallthrough is the edge to the next statement in program order
	Fallthrough
	// Goto is an unconditional jump
	Goto
	// IfTrue is the edge taken when an if condition holds
	IfTrue
	// IfFalse is the edge taken when an if condition does not hold
	IfFalse
	// SwitchCase is the edge taken when a switch matches the edge's CaseValue
	SwitchCase
	// SwitchDefault is the edge taken when no switch case matches
	SwitchDefault
	// Return is the edge from a return statement to the synthetic exit node
	Return
)

func (k EdgeKind) String() string {
	return [...]string{
		"entry", "fallthrough", "goto", "if-true", "if-false",
		"switch-case", "switch-default", "return",
	}[k]
}

// An Edge is a directed control-flow edge between two statements.
type Edge struct {
	// Kind is the kind of control transfer
	Kind EdgeKind

	// Source and Target are the endpoints of the edge
	Source ir.Stmt
	Target ir.Stmt

	// CaseValue is the matched constant, only meaningful for SwitchCase edges
	CaseValue int32
}

// A CFG is the control-flow graph of one method body. It is immutable once
// built and safe to share between readers.
type CFG struct {
	body  *ir.IR
	entry ir.Stmt
	exit  ir.Stmt

	// nodes lists every node: entry first, then the statements in program
	// order, then exit. Traversal order over the graph is deterministic.
	nodes []ir.Stmt

	preds    map[ir.Stmt][]ir.Stmt
	succs    map[ir.Stmt][]ir.Stmt
	outEdges map[ir.Stmt][]*Edge
}

// IR returns the method body the graph was built from.
func (g *CFG) IR() *ir.IR { return g.body }

// Method returns the name of the method the graph belongs to.
func (g *CFG) Method() string { return g.body.Method }

// Entry returns the synthetic entry node.
func (g *CFG) Entry() ir.Stmt { return g.entry }

// Exit returns the synthetic exit node.
func (g *CFG) Exit() ir.Stmt { return g.exit }

// IsEntry reports whether node is the synthetic entry node.
func (g *CFG) IsEntry(node ir.Stmt) bool { return node == g.entry }

// IsExit reports whether node is the synthetic exit node.
func (g *CFG) IsExit(node ir.Stmt) bool { return node == g.exit }

// Nodes returns every node of the graph, entry and exit included.
func (g *CFG) Nodes() []ir.Stmt { return g.nodes }

// Size returns the number of nodes, entry and exit included.
func (g *CFG) Size() int { return len(g.nodes) }

// PredsOf returns the predecessors of node.
func (g *CFG) PredsOf(node ir.Stmt) []ir.Stmt { return g.preds[node] }

// SuccsOf returns the successors of node.
func (g *CFG) SuccsOf(node ir.Stmt) []ir.Stmt { return g.succs[node] }

// OutEdgesOf returns the outgoing edges of node.
func (g *CFG) OutEdgesOf(node ir.Stmt) []*Edge { return g.outEdges[node] }

// addEdge records a new edge and its adjacency entries.
func (g *CFG) addEdge(e *Edge) {
	g.outEdges[e.Source] = append(g.outEdges[e.Source], e)
	g.succs[e.Source] = append(g.succs[e.Source], e.Target)
	g.preds[e.Target] = append(g.preds[e.Target], e.Source)
}
