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

package constprop

import (
	"github.com/awslabs/tac-dataflow/analysis/cfg"
	"github.com/awslabs/tac-dataflow/analysis/ir"
)

// ID is the well-known identifier of this analysis in the IR result registry.
const ID = "constprop"

// ConstantPropagation is the forward dataflow analysis computing, for every
// program point, which integral variables hold a known constant. It
// implements dataflow.Analysis[*CPFact].
type ConstantPropagation struct{}

// New returns the constant propagation analysis.
func New() *ConstantPropagation {
	return &ConstantPropagation{}
}

// IsForward implements dataflow.Analysis: constant propagation is forward.
func (*ConstantPropagation) IsForward() bool {
	return true
}

// NewBoundaryFact returns the fact after the entry node: every integral
// formal parameter is NAC, since its value is unknown at entry. All other
// variables stay implicitly Undef.
func (*ConstantPropagation) NewBoundaryFact(g *cfg.CFG) *CPFact {
	fact := NewCPFact()
	for _, param := range g.IR().Params {
		if CanHoldInt(param) {
			fact.Update(param, NAC())
		}
	}
	return fact
}

// NewInitialFact returns the empty fact (all variables Undef).
func (*ConstantPropagation) NewInitialFact() *CPFact {
	return NewCPFact()
}

// MeetInto meets every integral variable of fact into target. Non-integral
// variables are never tracked and never contribute to control-flow folding.
func (*ConstantPropagation) MeetInto(fact, target *CPFact) {
	for _, v := range fact.Keys() {
		if CanHoldInt(v) {
			target.Update(v, Meet(target.Get(v), fact.Get(v)))
		}
	}
}

// TransferNode computes out from in. An assignment to an integral variable
// re-binds that variable to the value of its right-hand side; every other
// statement is the identity. Reports whether out changed.
func (*ConstantPropagation) TransferNode(node ir.Stmt, in, out *CPFact) bool {
	if assign, ok := node.(*ir.AssignStmt); ok {
		if lhs, ok := assign.LHS.(*ir.Var); ok && CanHoldInt(lhs) {
			changed := out.CopyFrom(in)
			if out.Update(lhs, Evaluate(assign.RHS, in)) {
				changed = true
			}
			return changed
		}
	}
	return out.CopyFrom(in)
}

// CanHoldInt reports whether the declared type of v can hold a 32-bit
// integral value. Only such variables are tracked by the analysis.
func CanHoldInt(v *ir.Var) bool {
	switch v.Type {
	case ir.Byte, ir.Short, ir.Int, ir.Char, ir.Boolean:
		return true
	}
	return false
}

// Evaluate computes the lattice value of exp under the fact in. It is a pure
// function: in is never mutated and no error is ever raised — unsupported
// inputs degrade to Undef or NAC.
//
// A variable of a non-integral type evaluates to Undef while an expression
// kind the analysis does not interpret evaluates to NAC. The asymmetry is
// deliberate: an uninterpreted expression must not be folded, but an
// untracked variable must not block propagation of its integral siblings.
func Evaluate(exp ir.Exp, in *CPFact) Value {
	switch e := exp.(type) {
	case *ir.IntLiteral:
		return MakeConstant(e.Value)
	case *ir.Var:
		if !CanHoldInt(e) {
			return Undef()
		}
		return in.Get(e)
	case ir.BinaryExp:
		return evaluateBinary(e, in)
	default:
		// field accesses, array accesses, allocations, casts and calls may
		// produce any value
		return NAC()
	}
}

// evaluateBinary folds a binary expression when both operands are concrete
// constants, with two special cases below. An operand is usable only when the
// variable is integral-capable and its fact value is a concrete constant; a
// single known operand paired with an Undef operand falls through to Undef
// (in particular, x * 0 is not folded to 0).
func evaluateBinary(e ir.BinaryExp, in *CPFact) Value {
	op1, op2 := e.Operands()

	var v1, v2 int32
	valid1, valid2 := false, false
	if CanHoldInt(op1) && in.Get(op1).IsConstant() {
		v1 = in.Get(op1).Constant()
		valid1 = true
	}
	if CanHoldInt(op2) && in.Get(op2).IsConstant() {
		v2 = in.Get(op2).Constant()
		valid2 = true
	}

	if valid1 && valid2 {
		switch b := e.(type) {
		case *ir.ArithmeticExp:
			return foldArithmetic(b.Op, v1, v2)
		case *ir.BitwiseExp:
			return foldBitwise(b.Op, v1, v2)
		case *ir.ConditionExp:
			return foldCondition(b.Op, v1, v2)
		case *ir.ShiftExp:
			return foldShift(b.Op, v1, v2)
		}
	}

	// Division or remainder by a literal zero is Undef even when the dividend
	// is unknown: such a statement is destined to be classified unreachable,
	// not to poison the dividend with NAC.
	if valid2 && v2 == 0 {
		if a, ok := e.(*ir.ArithmeticExp); ok && (a.Op == ir.Div || a.Op == ir.Rem) {
			return Undef()
		}
	}

	if in.Get(op1).IsNAC() || in.Get(op2).IsNAC() {
		return NAC()
	}

	// operands that are still Undef, or variables that cannot hold an int
	return Undef()
}

func foldArithmetic(op ir.ArithmeticOp, v1, v2 int32) Value {
	switch op {
	case ir.Add:
		return MakeConstant(v1 + v2)
	case ir.Sub:
		return MakeConstant(v1 - v2)
	case ir.Mul:
		return MakeConstant(v1 * v2)
	case ir.Div:
		if v2 == 0 {
			return Undef()
		}
		return MakeConstant(v1 / v2)
	default: // ir.Rem
		if v2 == 0 {
			return Undef()
		}
		return MakeConstant(v1 % v2)
	}
}

func foldBitwise(op ir.BitwiseOp, v1, v2 int32) Value {
	switch op {
	case ir.Or:
		return MakeConstant(v1 | v2)
	case ir.And:
		return MakeConstant(v1 & v2)
	default: // ir.Xor
		return MakeConstant(v1 ^ v2)
	}
}

func foldCondition(op ir.ConditionOp, v1, v2 int32) Value {
	holds := false
	switch op {
	case ir.Eq:
		holds = v1 == v2
	case ir.Ge:
		holds = v1 >= v2
	case ir.Gt:
		holds = v1 > v2
	case ir.Ne:
		holds = v1 != v2
	case ir.Le:
		holds = v1 <= v2
	case ir.Lt:
		holds = v1 < v2
	}
	if holds {
		return MakeConstant(1)
	}
	return MakeConstant(0)
}

// foldShift masks the shift count to its low five bits, the 32-bit
// two's-complement semantics of the source language.
func foldShift(op ir.ShiftOp, v1, v2 int32) Value {
	count := uint32(v2) & 31
	switch op {
	case ir.Shl:
		return MakeConstant(v1 << count)
	case ir.Shr:
		return MakeConstant(v1 >> count)
	default: // ir.Ushr
		return MakeConstant(int32(uint32(v1) >> count))
	}
}
