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

// Package analysis runs the intra-procedural analysis pipeline on method
// bodies: control-flow graph construction, constant propagation, live
// variable analysis, and dead code detection on top of them.
package analysis

import (
	"fmt"
	"time"

	"github.com/awslabs/tac-dataflow/analysis/cfg"
	"github.com/awslabs/tac-dataflow/analysis/config"
	"github.com/awslabs/tac-dataflow/analysis/constprop"
	"github.com/awslabs/tac-dataflow/analysis/dataflow"
	"github.com/awslabs/tac-dataflow/analysis/deadcode"
	"github.com/awslabs/tac-dataflow/analysis/ir"
	"github.com/awslabs/tac-dataflow/analysis/liveness"
	"github.com/awslabs/tac-dataflow/internal/formatutil"
	"github.com/awslabs/tac-dataflow/internal/funcutil"
)

// A Report is the outcome of the pipeline for one method.
type Report struct {
	// Method is the name of the analyzed method
	Method string

	// Stats summarizes the shape of the method's control-flow graph
	Stats CFGStatistics

	// DeadCode lists the dead statements, sorted by statement index
	DeadCode []ir.Stmt

	// Time is how long the pipeline took for this method
	Time time.Duration
}

// RunDeadCode runs the full pipeline on a single method body: it builds the
// CFG, solves constant propagation and liveness to their fixed points, stores
// all three results in the body's registry, and runs the dead code detector
// on top of them.
func RunDeadCode(body *ir.IR, conf *config.Config, logger *config.LogGroup) (*Report, error) {
	start := time.Now()

	g := cfg.Build(body)
	stats := ComputeCFGStatistics(g)
	logger.Debugf("%s: CFG has %d nodes, %d edges, %d loops",
		body.Method, stats.Nodes, stats.Edges, stats.Loops)

	constants := dataflow.Solve[*constprop.CPFact](constprop.New(), g)
	body.StoreResult(constprop.ID, constants)

	live := dataflow.Solve[*liveness.SetFact](liveness.New(), g)
	body.StoreResult(liveness.ID, live)

	dead, err := deadcode.Analyze(body)
	if err != nil {
		return nil, fmt.Errorf("dead code detection on %s: %w", body.Method, err)
	}

	if len(dead) > 0 {
		logger.Infof("%s: %s", formatutil.Sanitize(body.Method),
			formatutil.Yellow(fmt.Sprintf("%d dead statements", len(dead))))
		if conf.ReportDeadStatements {
			for _, s := range dead {
				logger.Infof("  [%d] %s", s.Index(), formatutil.Sanitize(s.String()))
			}
		}
	} else {
		logger.Infof("%s: no dead statements", formatutil.Sanitize(body.Method))
	}

	return &Report{
		Method:   body.Method,
		Stats:    stats,
		DeadCode: dead,
		Time:     time.Since(start),
	}, nil
}

// RunAll runs the pipeline on every method matching the config's method
// filter and returns one report per analyzed method, in input order. Methods
// filtered out produce no report.
func RunAll(bodies []*ir.IR, conf *config.Config, logger *config.LogGroup) ([]*Report, error) {
	start := time.Now()
	var reports []*Report
	for _, body := range bodies {
		if !conf.MatchesMethod(body.Method) {
			logger.Debugf("skipping %s (filtered)", formatutil.Sanitize(body.Method))
			continue
		}
		report, err := RunDeadCode(body, conf, logger)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	logger.Infof("analyzed %d of %d methods (%.2f s)",
		len(reports), len(bodies), time.Since(start).Seconds())
	return reports, nil
}

// DeadIndices returns the statement indices of a report's dead code.
func (r *Report) DeadIndices() []int {
	return funcutil.Map(r.DeadCode, func(s ir.Stmt) int { return s.Index() })
}
