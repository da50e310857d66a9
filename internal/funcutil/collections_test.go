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

package funcutil

import (
	"strconv"
	"testing"
)

func TestContains(t *testing.T) {
	a := []int{1, 2, 3}
	if !Contains(a, 2) {
		t.Errorf("Contains(%v, 2) = false, want true", a)
	}
	if Contains(a, 4) {
		t.Errorf("Contains(%v, 4) = true, want false", a)
	}
	if Contains(nil, 1) {
		t.Errorf("Contains(nil, 1) = true, want false")
	}
}

func TestExists(t *testing.T) {
	a := []string{"a", "bb", "ccc"}
	if !Exists(a, func(s string) bool { return len(s) == 2 }) {
		t.Errorf("Exists should find the two-letter element")
	}
	if Exists(a, func(s string) bool { return len(s) > 3 }) {
		t.Errorf("Exists should not find an element longer than 3")
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	want := []string{"1", "2", "3"}
	if len(got) != len(want) {
		t.Fatalf("Map returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Map[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSetToOrderedSlice(t *testing.T) {
	set := map[int]bool{3: true, 1: true, 2: true}
	got := SetToOrderedSlice(set)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("SetToOrderedSlice returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
}
