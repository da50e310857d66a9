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

/*
Package dataflow implements the generic iterative dataflow framework: the
[Analysis] interface a concrete analysis implements, the per-node fact table
([Result]) a solver run produces, and the worklist fixed-point solver itself.

The solver supports forward and backward analyses over any control-flow
graph, cyclic graphs included. Termination relies on the analysis satisfying
the monotone framework preconditions: the fact domain must form a lattice of
finite height and the transfer function must be monotone. These preconditions
are not checked at runtime; an analysis violating them may not terminate.

A solver run exclusively owns its worklist and result table. The result must
only be read after Solve returns, and is never written afterwards, so it can
be shared freely between readers.
*/
package dataflow
