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

// Package ir defines the three-address-code intermediate representation the
// dataflow analyses operate on: typed local variables, a closed set of
// expression variants and a closed set of statement variants. The IR is
// read-only for analyses; each method body also carries a registry of
// analysis results keyed by well-known analysis identifiers.
package ir

// IR is the body of a single method in three-address form.
type IR struct {
	// Method is the name of the method the body belongs to
	Method string

	// Params are the formal parameters, in declaration order
	Params []*Var

	// Vars are all the variables appearing in the body, parameters included,
	// in order of first appearance. Var.Index is the position in this slice.
	Vars []*Var

	// Stmts are the statements in program order. Stmt.Index is the position
	// in this slice.
	Stmts []Stmt

	// results caches analysis results for this method, keyed by analysis id
	results map[string]any
}

// New assembles a method body from its parameters and statements. It assigns
// statement indices in program order and dense variable indices in order of
// first appearance. Branch targets must already point at statements of the
// body.
func New(method string, params []*Var, stmts []Stmt) *IR {
	body := &IR{
		Method:  method,
		Params:  params,
		results: map[string]any{},
	}
	for _, v := range params {
		body.register(v)
	}
	for i, s := range stmts {
		s.setIndex(i)
		body.Stmts = append(body.Stmts, s)
		if def, ok := s.Def(); ok {
			body.register(def)
		}
		for _, use := range s.Uses() {
			body.register(use)
		}
	}
	return body
}

// register assigns v its dense index if it has not been seen before.
func (body *IR) register(v *Var) {
	if v.Index >= 0 {
		return
	}
	v.Index = len(body.Vars)
	body.Vars = append(body.Vars, v)
}

// Result returns the analysis result stored under id, if any.
func (body *IR) Result(id string) (any, bool) {
	r, ok := body.results[id]
	return r, ok
}

// StoreResult stores an analysis result under id, replacing any previous
// result with the same id.
func (body *IR) StoreResult(id string, result any) {
	body.results[id] = result
}
