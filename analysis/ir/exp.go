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

// Exp is an expression that may appear on the right-hand side of an
// assignment. The set of implementations is closed: analyses dispatch on the
// concrete type with a type switch and treat any variant they do not
// interpret conservatively.
type Exp interface {
	fmt.Stringer

	// exp restricts the implementations to this package
	exp()
}

// LValue is an expression that may appear on the left-hand side of an
// assignment: a variable, a field access or an array access.
type LValue interface {
	fmt.Stringer

	// lvalue restricts the implementations to this package
	lvalue()
}

// BinaryExp is implemented by the four binary expression families
// (arithmetic, bitwise, condition and shift). Operands are always variables;
// the IR is in three-address form.
type BinaryExp interface {
	Exp

	// Operands returns the two operand variables of the expression
	Operands() (*Var, *Var)
}

// An IntLiteral is a 32-bit integer constant.
type IntLiteral struct {
	Value int32
}

// ArithmeticOp is an operator of an ArithmeticExp.
type ArithmeticOp int

// The arithmetic operators.
const (
	Add ArithmeticOp = iota
	Sub
	Mul
	Div
	Rem
)

func (op ArithmeticOp) String() string {
	return [...]string{"+", "-", "*", "/", "%"}[op]
}

// An ArithmeticExp computes an arithmetic operation over two variables.
type ArithmeticExp struct {
	Op  ArithmeticOp
	Op1 *Var
	Op2 *Var
}

// BitwiseOp is an operator of a BitwiseExp.
type BitwiseOp int

// The bitwise operators.
const (
	Or BitwiseOp = iota
	And
	Xor
)

func (op BitwiseOp) String() string {
	return [...]string{"|", "&", "^"}[op]
}

// A BitwiseExp computes a bitwise operation over two variables.
type BitwiseExp struct {
	Op  BitwiseOp
	Op1 *Var
	Op2 *Var
}

// ConditionOp is an operator of a ConditionExp.
type ConditionOp int

// The relational operators. A condition expression evaluates to 1 when the
// relation holds and 0 otherwise.
const (
	Eq ConditionOp = iota
	Ge
	Gt
	Ne
	Le
	Lt
)

func (op ConditionOp) String() string {
	return [...]string{"==", ">=", ">", "!=", "<=", "<"}[op]
}

// A ConditionExp compares two variables and produces 0 or 1.
type ConditionExp struct {
	Op  ConditionOp
	Op1 *Var
	Op2 *Var
}

// ShiftOp is an operator of a ShiftExp.
type ShiftOp int

// The shift operators. Ushr is the unsigned (logical) right shift.
const (
	Shl ShiftOp = iota
	Shr
	Ushr
)

func (op ShiftOp) String() string {
	return [...]string{"<<", ">>", ">>>"}[op]
}

// A ShiftExp shifts the first operand by the second. Shift counts follow
// 32-bit semantics: only the low five bits of the count are used.
type ShiftExp struct {
	Op  ShiftOp
	Op1 *Var
	Op2 *Var
}

// A NewExp allocates a new object. It is opaque to the analyses: it is never
// folded and always has a side effect on the heap.
type NewExp struct {
	Class string
}

// A CastExp converts a variable to another type. Opaque: a cast may fail at
// runtime, so it is never considered side-effect free.
type CastExp struct {
	CastType Type
	Value    *Var
}

// A FieldAccess reads a field. Base is nil for static fields. Opaque: a field
// access may trigger class initialization or fault on a nil base.
type FieldAccess struct {
	Base  *Var
	Field string
}

// An ArrayAccess reads an array element. Opaque: it may fault on a nil base
// or an out-of-bounds index.
type ArrayAccess struct {
	Base  *Var
	Index *Var
}

// An InvokeExp calls a method. Opaque: the analyses are intra-procedural, so
// the returned value is unknown and the call may have arbitrary effects.
type InvokeExp struct {
	Method string
	Args   []*Var
}

func (*IntLiteral) exp()    {}
func (*Var) exp()           {}
func (*ArithmeticExp) exp() {}
func (*BitwiseExp) exp()    {}
func (*ConditionExp) exp()  {}
func (*ShiftExp) exp()      {}
func (*NewExp) exp()        {}
func (*CastExp) exp()       {}
func (*FieldAccess) exp()   {}
func (*ArrayAccess) exp()   {}
func (*InvokeExp) exp()     {}

func (*Var) lvalue()         {}
func (*FieldAccess) lvalue() {}
func (*ArrayAccess) lvalue() {}

// Operands implements BinaryExp for the arithmetic family
func (e *ArithmeticExp) Operands() (*Var, *Var) { return e.Op1, e.Op2 }

// Operands implements BinaryExp for the bitwise family
func (e *BitwiseExp) Operands() (*Var, *Var) { return e.Op1, e.Op2 }

// Operands implements BinaryExp for the condition family
func (e *ConditionExp) Operands() (*Var, *Var) { return e.Op1, e.Op2 }

// Operands implements BinaryExp for the shift family
func (e *ShiftExp) Operands() (*Var, *Var) { return e.Op1, e.Op2 }

func (e *IntLiteral) String() string {
	return fmt.Sprintf("%d", e.Value)
}

func (e *ArithmeticExp) String() string {
	return fmt.Sprintf("%s %s %s", e.Op1, e.Op, e.Op2)
}

func (e *BitwiseExp) String() string {
	return fmt.Sprintf("%s %s %s", e.Op1, e.Op, e.Op2)
}

func (e *ConditionExp) String() string {
	return fmt.Sprintf("%s %s %s", e.Op1, e.Op, e.Op2)
}

func (e *ShiftExp) String() string {
	return fmt.Sprintf("%s %s %s", e.Op1, e.Op, e.Op2)
}

func (e *NewExp) String() string {
	return fmt.Sprintf("new %s", e.Class)
}

func (e *CastExp) String() string {
	return fmt.Sprintf("(%s) %s", e.CastType, e.Value)
}

func (e *FieldAccess) String() string {
	if e.Base == nil {
		return fmt.Sprintf(".%s", e.Field)
	}
	return fmt.Sprintf("%s.%s", e.Base, e.Field)
}

func (e *ArrayAccess) String() string {
	return fmt.Sprintf("%s[%s]", e.Base, e.Index)
}

func (e *InvokeExp) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.Name
	}
	return fmt.Sprintf("%s(%s)", e.Method, strings.Join(args, ", "))
}

// expUses returns the variables read when evaluating e.
func expUses(e Exp) []*Var {
	switch exp := e.(type) {
	case *Var:
		return []*Var{exp}
	case BinaryExp:
		op1, op2 := exp.Operands()
		return []*Var{op1, op2}
	case *CastExp:
		return []*Var{exp.Value}
	case *FieldAccess:
		if exp.Base != nil {
			return []*Var{exp.Base}
		}
		return nil
	case *ArrayAccess:
		return []*Var{exp.Base, exp.Index}
	case *InvokeExp:
		return exp.Args
	default:
		// literals and allocations read no variable
		return nil
	}
}
