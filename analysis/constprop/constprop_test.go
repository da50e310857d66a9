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
	"math"
	"testing"

	"github.com/awslabs/tac-dataflow/analysis/cfg"
	"github.com/awslabs/tac-dataflow/analysis/ir"
)

func TestCanHoldInt(t *testing.T) {
	tests := []struct {
		typ  ir.Type
		want bool
	}{
		{ir.Byte, true},
		{ir.Short, true},
		{ir.Int, true},
		{ir.Char, true},
		{ir.Boolean, true},
		{ir.Long, false},
		{ir.Float, false},
		{ir.Double, false},
		{ir.Reference, false},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			v := ir.NewVar("v", tt.typ)
			if got := CanHoldInt(v); got != tt.want {
				t.Errorf("CanHoldInt(%s %s) = %t, want %t", tt.typ, v, got, tt.want)
			}
		})
	}
}

// factOf builds a fact binding each variable to the paired value.
func factOf(t *testing.T, bindings map[*ir.Var]Value) *CPFact {
	t.Helper()
	fact := NewCPFact()
	for v, val := range bindings {
		fact.Update(v, val)
	}
	return fact
}

// TestEvaluateFolding checks constant folding for every binary operator with
// constant operands, including two's-complement wraparound and the masking of
// shift counts to their low five bits.
func TestEvaluateFolding(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	y := ir.NewVar("y", ir.Int)

	tests := []struct {
		name   string
		exp    ir.Exp
		v1, v2 int32
		want   Value
	}{
		{"add", &ir.ArithmeticExp{Op: ir.Add, Op1: x, Op2: y}, 3, 4, MakeConstant(7)},
		{"add wraps", &ir.ArithmeticExp{Op: ir.Add, Op1: x, Op2: y}, math.MaxInt32, 1, MakeConstant(math.MinInt32)},
		{"sub", &ir.ArithmeticExp{Op: ir.Sub, Op1: x, Op2: y}, 3, 4, MakeConstant(-1)},
		{"mul", &ir.ArithmeticExp{Op: ir.Mul, Op1: x, Op2: y}, -3, 4, MakeConstant(-12)},
		{"div", &ir.ArithmeticExp{Op: ir.Div, Op1: x, Op2: y}, 7, 2, MakeConstant(3)},
		{"div truncates toward zero", &ir.ArithmeticExp{Op: ir.Div, Op1: x, Op2: y}, -7, 2, MakeConstant(-3)},
		{"div overflow wraps", &ir.ArithmeticExp{Op: ir.Div, Op1: x, Op2: y}, math.MinInt32, -1, MakeConstant(math.MinInt32)},
		{"div by zero", &ir.ArithmeticExp{Op: ir.Div, Op1: x, Op2: y}, 7, 0, Undef()},
		{"rem", &ir.ArithmeticExp{Op: ir.Rem, Op1: x, Op2: y}, 7, 2, MakeConstant(1)},
		{"rem of negative", &ir.ArithmeticExp{Op: ir.Rem, Op1: x, Op2: y}, -7, 2, MakeConstant(-1)},
		{"rem by zero", &ir.ArithmeticExp{Op: ir.Rem, Op1: x, Op2: y}, 7, 0, Undef()},
		{"or", &ir.BitwiseExp{Op: ir.Or, Op1: x, Op2: y}, 0b1100, 0b1010, MakeConstant(0b1110)},
		{"and", &ir.BitwiseExp{Op: ir.And, Op1: x, Op2: y}, 0b1100, 0b1010, MakeConstant(0b1000)},
		{"xor", &ir.BitwiseExp{Op: ir.Xor, Op1: x, Op2: y}, 0b1100, 0b1010, MakeConstant(0b0110)},
		{"eq true", &ir.ConditionExp{Op: ir.Eq, Op1: x, Op2: y}, 5, 5, MakeConstant(1)},
		{"eq false", &ir.ConditionExp{Op: ir.Eq, Op1: x, Op2: y}, 5, 6, MakeConstant(0)},
		{"ne true", &ir.ConditionExp{Op: ir.Ne, Op1: x, Op2: y}, 5, 6, MakeConstant(1)},
		{"ge true", &ir.ConditionExp{Op: ir.Ge, Op1: x, Op2: y}, 5, 5, MakeConstant(1)},
		{"gt false", &ir.ConditionExp{Op: ir.Gt, Op1: x, Op2: y}, 5, 5, MakeConstant(0)},
		{"le true", &ir.ConditionExp{Op: ir.Le, Op1: x, Op2: y}, 4, 5, MakeConstant(1)},
		{"lt false", &ir.ConditionExp{Op: ir.Lt, Op1: x, Op2: y}, 5, 5, MakeConstant(0)},
		{"shl", &ir.ShiftExp{Op: ir.Shl, Op1: x, Op2: y}, 1, 4, MakeConstant(16)},
		{"shl masks count", &ir.ShiftExp{Op: ir.Shl, Op1: x, Op2: y}, 1, 33, MakeConstant(2)},
		{"shl negative count", &ir.ShiftExp{Op: ir.Shl, Op1: x, Op2: y}, 1, -1, MakeConstant(math.MinInt32)},
		{"shr sign-extends", &ir.ShiftExp{Op: ir.Shr, Op1: x, Op2: y}, -8, 1, MakeConstant(-4)},
		{"ushr zero-extends", &ir.ShiftExp{Op: ir.Ushr, Op1: x, Op2: y}, -1, 1, MakeConstant(math.MaxInt32)},
		{"ushr masks count", &ir.ShiftExp{Op: ir.Ushr, Op1: x, Op2: y}, 16, 33, MakeConstant(8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := factOf(t, map[*ir.Var]Value{x: MakeConstant(tt.v1), y: MakeConstant(tt.v2)})
			if got := Evaluate(tt.exp, in); got != tt.want {
				t.Errorf("Evaluate(%s) with x=%d, y=%d = %s, want %s",
					tt.exp, tt.v1, tt.v2, got, tt.want)
			}
		})
	}
}

// TestEvaluatePartialOperands covers binary expressions whose operands are not
// both constants. One NAC operand yields NAC, except division or remainder by
// a known zero, which stays Undef. One constant operand paired with an Undef
// operand yields Undef, even for x * 0.
func TestEvaluatePartialOperands(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	y := ir.NewVar("y", ir.Int)
	r := ir.NewVar("r", ir.Reference)

	tests := []struct {
		name string
		exp  ir.Exp
		in   map[*ir.Var]Value
		want Value
	}{
		{"nac + const", &ir.ArithmeticExp{Op: ir.Add, Op1: x, Op2: y},
			map[*ir.Var]Value{x: NAC(), y: MakeConstant(1)}, NAC()},
		{"const + nac", &ir.ArithmeticExp{Op: ir.Add, Op1: x, Op2: y},
			map[*ir.Var]Value{x: MakeConstant(1), y: NAC()}, NAC()},
		{"nac / known zero", &ir.ArithmeticExp{Op: ir.Div, Op1: x, Op2: y},
			map[*ir.Var]Value{x: NAC(), y: MakeConstant(0)}, Undef()},
		{"nac % known zero", &ir.ArithmeticExp{Op: ir.Rem, Op1: x, Op2: y},
			map[*ir.Var]Value{x: NAC(), y: MakeConstant(0)}, Undef()},
		{"nac * known zero", &ir.ArithmeticExp{Op: ir.Mul, Op1: x, Op2: y},
			map[*ir.Var]Value{x: NAC(), y: MakeConstant(0)}, NAC()},
		{"undef + const", &ir.ArithmeticExp{Op: ir.Add, Op1: x, Op2: y},
			map[*ir.Var]Value{y: MakeConstant(1)}, Undef()},
		{"known zero * undef", &ir.ArithmeticExp{Op: ir.Mul, Op1: x, Op2: y},
			map[*ir.Var]Value{x: MakeConstant(0)}, Undef()},
		{"undef & undef", &ir.BitwiseExp{Op: ir.And, Op1: x, Op2: y},
			map[*ir.Var]Value{}, Undef()},
		{"reference operand", &ir.ConditionExp{Op: ir.Eq, Op1: x, Op2: r},
			map[*ir.Var]Value{x: MakeConstant(1)}, Undef()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := factOf(t, tt.in)
			if got := Evaluate(tt.exp, in); got != tt.want {
				t.Errorf("Evaluate(%s) under %s = %s, want %s", tt.exp, in, got, tt.want)
			}
		})
	}
}

func TestEvaluateNonBinary(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	r := ir.NewVar("r", ir.Reference)
	in := factOf(t, map[*ir.Var]Value{x: MakeConstant(9)})

	tests := []struct {
		name string
		exp  ir.Exp
		want Value
	}{
		{"literal", &ir.IntLiteral{Value: 5}, MakeConstant(5)},
		{"tracked var", x, MakeConstant(9)},
		{"reference var", r, Undef()},
		{"allocation", &ir.NewExp{Class: "T"}, NAC()},
		{"cast", &ir.CastExp{CastType: ir.Int, Value: x}, NAC()},
		{"field access", &ir.FieldAccess{Base: r, Field: "f"}, NAC()},
		{"array access", &ir.ArrayAccess{Base: r, Index: x}, NAC()},
		{"call", &ir.InvokeExp{Method: "foo"}, NAC()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.exp, in); got != tt.want {
				t.Errorf("Evaluate(%s) = %s, want %s", tt.exp, got, tt.want)
			}
		})
	}
}

func TestBoundaryFactMarksIntegralParams(t *testing.T) {
	p := ir.NewVar("p", ir.Int)
	q := ir.NewVar("q", ir.Reference)
	body := ir.New("m", []*ir.Var{p, q}, []ir.Stmt{&ir.ReturnStmt{}})
	g := cfg.Build(body)

	boundary := New().NewBoundaryFact(g)
	if got := boundary.Get(p); !got.IsNAC() {
		t.Errorf("boundary value of integral param = %s, want NAC", got)
	}
	if got := boundary.Get(q); !got.IsUndef() {
		t.Errorf("boundary value of reference param = %s, want UNDEF", got)
	}
}

func TestMeetInto(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	y := ir.NewVar("y", ir.Int)
	z := ir.NewVar("z", ir.Int)

	fact := factOf(t, map[*ir.Var]Value{x: MakeConstant(1), y: MakeConstant(2)})
	target := factOf(t, map[*ir.Var]Value{x: MakeConstant(1), y: MakeConstant(3), z: NAC()})

	New().MeetInto(fact, target)

	if got := target.Get(x); got != MakeConstant(1) {
		t.Errorf("x after meet = %s, want 1", got)
	}
	if got := target.Get(y); !got.IsNAC() {
		t.Errorf("y after meet = %s, want NAC (distinct constants)", got)
	}
	if got := target.Get(z); !got.IsNAC() {
		t.Errorf("z after meet = %s, want NAC (absent from fact is UNDEF)", got)
	}
}

func TestTransferNode(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	y := ir.NewVar("y", ir.Int)
	r := ir.NewVar("r", ir.Reference)
	analysis := New()

	t.Run("assignment re-binds the target", func(t *testing.T) {
		stmt := &ir.AssignStmt{LHS: y, RHS: &ir.ArithmeticExp{Op: ir.Add, Op1: x, Op2: x}}
		in := factOf(t, map[*ir.Var]Value{x: MakeConstant(3), y: NAC()})
		out := NewCPFact()
		if !analysis.TransferNode(stmt, in, out) {
			t.Fatalf("transfer into an empty out fact should report a change")
		}
		if got := out.Get(y); got != MakeConstant(6) {
			t.Errorf("y after transfer = %s, want 6", got)
		}
		if got := out.Get(x); got != MakeConstant(3) {
			t.Errorf("x after transfer = %s, want 3 (untouched)", got)
		}
	})

	t.Run("assignment to a reference is the identity", func(t *testing.T) {
		stmt := &ir.AssignStmt{LHS: r, RHS: &ir.NewExp{Class: "T"}}
		in := factOf(t, map[*ir.Var]Value{x: MakeConstant(3)})
		out := NewCPFact()
		analysis.TransferNode(stmt, in, out)
		if !out.Equal(in) {
			t.Errorf("out = %s, want identical to in %s", out, in)
		}
	})

	t.Run("non-assignment is the identity", func(t *testing.T) {
		stmt := &ir.ReturnStmt{Value: x}
		in := factOf(t, map[*ir.Var]Value{x: MakeConstant(3)})
		out := NewCPFact()
		analysis.TransferNode(stmt, in, out)
		if !out.Equal(in) {
			t.Errorf("out = %s, want identical to in %s", out, in)
		}
	})

	t.Run("repeated transfer reports no change", func(t *testing.T) {
		stmt := &ir.AssignStmt{LHS: y, RHS: x}
		in := factOf(t, map[*ir.Var]Value{x: MakeConstant(3)})
		out := NewCPFact()
		analysis.TransferNode(stmt, in, out)
		if analysis.TransferNode(stmt, in, out) {
			t.Errorf("second transfer with the same in fact should report no change")
		}
	})
}

// TestTransferMonotone walks a chain of increasingly imprecise in facts for
// the same assignment and checks the out facts never become more precise:
// Meet(earlier, later) must equal later for every tracked variable.
func TestTransferMonotone(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	y := ir.NewVar("y", ir.Int)
	c := ir.NewVar("c", ir.Int)
	stmt := &ir.AssignStmt{LHS: y, RHS: &ir.ArithmeticExp{Op: ir.Add, Op1: x, Op2: c}}
	analysis := New()

	chain := []*CPFact{
		factOf(t, map[*ir.Var]Value{c: MakeConstant(1)}),                     // x Undef
		factOf(t, map[*ir.Var]Value{c: MakeConstant(1), x: MakeConstant(5)}), // x constant
		factOf(t, map[*ir.Var]Value{c: MakeConstant(1), x: NAC()}),           // x NAC
	}
	outs := make([]*CPFact, len(chain))
	for i, in := range chain {
		outs[i] = NewCPFact()
		analysis.TransferNode(stmt, in, outs[i])
	}
	vars := []*ir.Var{x, y, c}
	for i := 0; i+1 < len(outs); i++ {
		for _, v := range vars {
			lo, hi := outs[i].Get(v), outs[i+1].Get(v)
			if Meet(lo, hi) != hi {
				t.Errorf("out[%d].%s = %s is not below out[%d].%s = %s",
					i, v, lo, i+1, v, hi)
			}
		}
	}
}
