// Package prep implements the urine biomarker cleaning pipeline: column
// pruning, categorical encoding, iterative outlier filtering and label
// binarization. Every stage is a pure function from table to table.
package prep

import (
	"fmt"
	"log/slog"

	"biomarkerprep/internal/table"
)

// Stage transforms one table generation into the next.
type Stage func(table.Table) (table.Table, error)

// Step is a named Stage.
type Step struct {
	Name  string
	Apply Stage
}

// Pipeline composes a fixed sequence of steps.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// NewPipeline builds the four-step cleaning pipeline for cfg.
func NewPipeline(cfg Config, logger *slog.Logger) *Pipeline {
	p := &Pipeline{logger: logger}
	p.steps = []Step{
		{Name: "prune", Apply: func(t table.Table) (table.Table, error) {
			return Prune(t, cfg.Drop)
		}},
		{Name: "encode", Apply: func(t table.Table) (table.Table, error) {
			return Encode(t, cfg.Encode.Column, cfg.Encode.Prefix)
		}},
		{Name: "outliers", Apply: p.filterOutliers(cfg.Outliers)},
		{Name: "label", Apply: func(t table.Table) (table.Table, error) {
			return BinarizeLabel(t, cfg.Label)
		}},
	}
	return p
}

func (p *Pipeline) filterOutliers(columns []string) Stage {
	return func(t table.Table) (table.Table, error) {
		out, steps, err := FilterOutliersReport(t, columns)
		for _, s := range steps {
			p.logger.Debug("outliers removed",
				"column", s.Column,
				"lower", s.Bounds.Lower,
				"upper", s.Bounds.Upper,
				"removed", s.Removed(),
				"rows", s.RowsAfter)
		}
		return out, err
	}
}

// Steps returns the pipeline's steps in execution order.
func (p *Pipeline) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Run folds raw through every step. The first failing step aborts the run.
func (p *Pipeline) Run(raw table.Table) (table.Table, error) {
	cur := raw
	for _, step := range p.steps {
		next, err := step.Apply(cur)
		if err != nil {
			return table.Table{}, fmt.Errorf("%s: %w", step.Name, err)
		}
		p.logger.Info("step done", "step", step.Name, "rows", next.Len(), "columns", next.Width())
		cur = next
	}
	return cur, nil
}

// Preprocess runs the cleaning pipeline for cfg over raw without logging.
func Preprocess(raw table.Table, cfg Config) (table.Table, error) {
	return NewPipeline(cfg, slog.New(slog.DiscardHandler)).Run(raw)
}
