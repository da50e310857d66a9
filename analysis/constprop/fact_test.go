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
	"testing"

	"github.com/awslabs/tac-dataflow/analysis/ir"
)

func TestFactGetDefaultsToUndef(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	fact := NewCPFact()
	if got := fact.Get(x); !got.IsUndef() {
		t.Errorf("Get on an empty fact = %s, want UNDEF", got)
	}
}

func TestFactUpdate(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	fact := NewCPFact()

	if !fact.Update(x, MakeConstant(5)) {
		t.Errorf("first Update(x, 5) should report a change")
	}
	if fact.Update(x, MakeConstant(5)) {
		t.Errorf("repeated Update(x, 5) should report no change")
	}
	if !fact.Update(x, NAC()) {
		t.Errorf("Update(x, NAC) after a constant should report a change")
	}
	if got := fact.Get(x); !got.IsNAC() {
		t.Errorf("Get(x) = %s, want NAC", got)
	}
}

// Storing Undef must remove the variable, so that a fact never distinguishes
// "tracked as Undef" from "not tracked".
func TestFactUpdateUndefRemoves(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	fact := NewCPFact()

	if fact.Update(x, Undef()) {
		t.Errorf("Update(x, UNDEF) on an empty fact should report no change")
	}
	fact.Update(x, MakeConstant(5))
	if !fact.Update(x, Undef()) {
		t.Errorf("Update(x, UNDEF) on a tracked variable should report a change")
	}
	if len(fact.Keys()) != 0 {
		t.Errorf("fact still tracks %d variables after resetting to UNDEF", len(fact.Keys()))
	}
	if !fact.Equal(NewCPFact()) {
		t.Errorf("fact = %s, want equal to the empty fact", fact)
	}
}

func TestFactCopyIsIndependent(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	y := ir.NewVar("y", ir.Int)
	fact := NewCPFact()
	fact.Update(x, MakeConstant(1))

	cp := fact.Copy()
	cp.Update(y, NAC())
	cp.Update(x, MakeConstant(2))

	if got := fact.Get(x); got != MakeConstant(1) {
		t.Errorf("Get(x) on the original = %s, want 1", got)
	}
	if got := fact.Get(y); !got.IsUndef() {
		t.Errorf("Get(y) on the original = %s, want UNDEF", got)
	}
}

func TestFactCopyFrom(t *testing.T) {
	x := ir.NewVar("x", ir.Int)
	y := ir.NewVar("y", ir.Int)

	src := NewCPFact()
	src.Update(x, MakeConstant(3))

	dst := NewCPFact()
	dst.Update(y, NAC())

	if !dst.CopyFrom(src) {
		t.Errorf("CopyFrom with new entries should report a change")
	}
	if got := dst.Get(x); got != MakeConstant(3) {
		t.Errorf("Get(x) after CopyFrom = %s, want 3", got)
	}
	// the merge must not delete entries absent from the source: the solver
	// installs the boundary fact at the entry's OUT, and the entry's own
	// identity transfer copies from an empty IN
	if got := dst.Get(y); !got.IsNAC() {
		t.Errorf("Get(y) after CopyFrom = %s, want NAC kept from before the merge", got)
	}
	if dst.CopyFrom(src) {
		t.Errorf("repeated CopyFrom should report no change")
	}
	if NewCPFact().CopyFrom(NewCPFact()) {
		t.Errorf("CopyFrom between empty facts should report no change")
	}
}

func TestFactString(t *testing.T) {
	a := ir.NewVar("a", ir.Int)
	b := ir.NewVar("b", ir.Int)
	fact := NewCPFact()
	fact.Update(b, NAC())
	fact.Update(a, MakeConstant(4))
	if got, want := fact.String(), "{a=4, b=NAC}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
