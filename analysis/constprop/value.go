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

// Package constprop implements intra-procedural constant propagation as a
// forward dataflow analysis: a flat three-point value lattice, a per-node
// fact mapping variables to lattice values, and the analysis transfer
// function with its expression evaluator.
package constprop

import "fmt"

// valueKind tags the three points of the lattice.
type valueKind uint8

const (
	undef valueKind = iota
	constant
	nac
)

// A Value is an element of the constant propagation lattice: Undef (bottom,
// no information yet), a concrete 32-bit constant, or NAC (top, provably not
// a constant or unknown). Values are immutable and compared by ==.
type Value struct {
	kind  valueKind
	value int32
}

// Undef returns the bottom element of the lattice.
func Undef() Value {
	return Value{kind: undef}
}

// NAC returns the top element of the lattice ("not a constant").
func NAC() Value {
	return Value{kind: nac}
}

// MakeConstant returns the lattice element for the concrete constant v.
func MakeConstant(v int32) Value {
	return Value{kind: constant, value: v}
}

// IsUndef reports whether v is the bottom element.
func (v Value) IsUndef() bool { return v.kind == undef }

// IsConstant reports whether v is a concrete constant.
func (v Value) IsConstant() bool { return v.kind == constant }

// IsNAC reports whether v is the top element.
func (v Value) IsNAC() bool { return v.kind == nac }

// Constant returns the concrete constant held by v. It panics unless
// v.IsConstant(); callers must check first.
func (v Value) Constant() int32 {
	if v.kind != constant {
		panic(fmt.Sprintf("constprop: Constant() called on %s", v))
	}
	return v.value
}

func (v Value) String() string {
	switch v.kind {
	case constant:
		return fmt.Sprintf("%d", v.value)
	case nac:
		return "NAC"
	default:
		return "UNDEF"
	}
}

// Meet computes the greatest lower bound of v1 and v2 in the flat lattice:
// NAC absorbs everything, Undef is the identity, equal constants meet to
// themselves and distinct constants meet to NAC. Meet is commutative and
// idempotent.
func Meet(v1, v2 Value) Value {
	if v1.IsNAC() || v2.IsNAC() {
		return NAC()
	}
	if v1.IsUndef() {
		return v2
	}
	if v2.IsUndef() {
		return v1
	}
	if v1.value == v2.value {
		return v1
	}
	return NAC()
}
