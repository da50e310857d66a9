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

// Type is the declared type of a variable. The dataflow analyses only need to
// distinguish the types that can hold a 32-bit integral value from everything
// else; the remaining variants exist so that the IR can represent complete
// method bodies.
type Type int

const (
	// Int is the 32-bit signed integer type
	Int Type = iota
	// Boolean is the boolean type, represented as 0/1 at the IR level
	Boolean
	// Byte is the 8-bit signed integer type
	Byte
	// Short is the 16-bit signed integer type
	Short
	// Char is the 16-bit unsigned character type
	Char
	// Long is the 64-bit signed integer type
	Long
	// Float is the 32-bit floating point type
	Float
	// Double is the 64-bit floating point type
	Double
	// Reference is any object or array type
	Reference
	// Void is the type of methods that return nothing
	Void
)

var typeNames = map[Type]string{
	Int:       "int",
	Boolean:   "boolean",
	Byte:      "byte",
	Short:     "short",
	Char:      "char",
	Long:      "long",
	Float:     "float",
	Double:    "double",
	Reference: "ref",
	Void:      "void",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// A Var is a local variable or formal parameter of a method. Vars are
// compared by pointer identity: two distinct Vars may share a name.
type Var struct {
	// Name is the source-level or synthetic name of the variable
	Name string

	// Type is the declared type of the variable
	Type Type

	// Index is the dense id of the variable within its method, assigned by
	// New. Analyses that keep per-variable bitsets index them by Index.
	Index int
}

// NewVar returns a fresh variable with the given name and type. The variable
// index is assigned when the variable is registered in an IR by New.
func NewVar(name string, t Type) *Var {
	return &Var{Name: name, Type: t, Index: -1}
}

func (v *Var) String() string {
	return v.Name
}
