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

package ir

import (
	"fmt"
	"strings"
)

// Stmt is a statement of a method body. The set of implementations is closed
// and all implementations are pointers, so statements can be used as map keys
// and compared by identity.
type Stmt interface {
	fmt.Stringer

	// Index returns the position of the statement in program order. Synthetic
	// statements that are not part of a method body have index -1.
	Index() int

	// Def returns the variable defined by the statement, if any
	Def() (*Var, bool)

	// Uses returns the variables read by the statement
	Uses() []*Var

	// setIndex restricts the implementations to this package
	setIndex(int)
}

// stmtIndex carries the program-order index shared by all statement kinds.
type stmtIndex struct {
	index int
}

func (s *stmtIndex) Index() int     { return s.index }
func (s *stmtIndex) setIndex(i int) { s.index = i }

// An AssignStmt assigns the value of RHS to LHS.
type AssignStmt struct {
	stmtIndex
	LHS LValue
	RHS Exp
}

// An IfStmt transfers control to Target when Cond evaluates to 1, and falls
// through to the next statement otherwise.
type IfStmt struct {
	stmtIndex
	Cond   *ConditionExp
	Target Stmt
}

// A SwitchCase pairs a case value with its branch target.
type SwitchCase struct {
	Value  int32
	Target Stmt
}

// A SwitchStmt transfers control to the case target matching the value of
// Var, or to DefaultTarget when no case matches.
type SwitchStmt struct {
	stmtIndex
	Var           *Var
	Cases         []SwitchCase
	DefaultTarget Stmt
}

// A GotoStmt transfers control unconditionally to Target.
type GotoStmt struct {
	stmtIndex
	Target Stmt
}

// A CallStmt invokes a method and discards its result.
type CallStmt struct {
	stmtIndex
	Call *InvokeExp
}

// A ReturnStmt leaves the method, optionally returning Value.
type ReturnStmt struct {
	stmtIndex
	Value *Var
}

// A Nop does nothing. The CFG also uses Nops as its synthetic entry and exit
// nodes.
type Nop struct {
	stmtIndex
}

// NewNop returns a synthetic statement with index -1.
func NewNop() *Nop {
	return &Nop{stmtIndex{index: -1}}
}

// Def implements Stmt
func (s *AssignStmt) Def() (*Var, bool) {
	v, ok := s.LHS.(*Var)
	return v, ok
}

// Uses implements Stmt. For a compound left-hand side (field or array
// access), the variables of the access are read, not written.
func (s *AssignStmt) Uses() []*Var {
	uses := expUses(s.RHS)
	switch lhs := s.LHS.(type) {
	case *FieldAccess:
		if lhs.Base != nil {
			uses = append(uses, lhs.Base)
		}
	case *ArrayAccess:
		uses = append(uses, lhs.Base, lhs.Index)
	}
	return uses
}

// Def implements Stmt
func (s *IfStmt) Def() (*Var, bool) { return nil, false }

// Uses implements Stmt
func (s *IfStmt) Uses() []*Var { return []*Var{s.Cond.Op1, s.Cond.Op2} }

// Def implements Stmt
func (s *SwitchStmt) Def() (*Var, bool) { return nil, false }

// Uses implements Stmt
func (s *SwitchStmt) Uses() []*Var { return []*Var{s.Var} }

// Def implements Stmt
func (s *GotoStmt) Def() (*Var, bool) { return nil, false }

// Uses implements Stmt
func (s *GotoStmt) Uses() []*Var { return nil }

// Def implements Stmt
func (s *CallStmt) Def() (*Var, bool) { return nil, false }

// Uses implements Stmt
func (s *CallStmt) Uses() []*Var { return s.Call.Args }

// Def implements Stmt
func (s *ReturnStmt) Def() (*Var, bool) { return nil, false }

// Uses implements Stmt
func (s *ReturnStmt) Uses() []*Var {
	if s.Value == nil {
		return nil
	}
	return []*Var{s.Value}
}

// Def implements Stmt
func (s *Nop) Def() (*Var, bool) { return nil, false }

// Uses implements Stmt
func (s *Nop) Uses() []*Var { return nil }

func (s *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s", s.LHS, s.RHS)
}

func (s *IfStmt) String() string {
	return fmt.Sprintf("if (%s) goto %d", s.Cond, s.Target.Index())
}

func (s *SwitchStmt) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "switch (%s) {", s.Var)
	for _, c := range s.Cases {
		fmt.Fprintf(&b, " case %d: goto %d;", c.Value, c.Target.Index())
	}
	fmt.Fprintf(&b, " default: goto %d; }", s.DefaultTarget.Index())
	return b.String()
}

func (s *GotoStmt) String() string {
	return fmt.Sprintf("goto %d", s.Target.Index())
}

func (s *CallStmt) String() string {
	return s.Call.String()
}

func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return"
	}
	return fmt.Sprintf("return %s", s.Value)
}

func (s *Nop) String() string {
	return "nop"
}
