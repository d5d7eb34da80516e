/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docframe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/suparena/docframe/docsource"
	"github.com/suparena/docframe/errors"
	"github.com/suparena/docframe/table"
	"github.com/suparena/docframe/transform"
)

// Pipeline chains a document source, transforms, table assembly and
// validation behind a fluent builder. Stages are registered up front and
// run in a fixed order on Execute: fetch, transforms, assembly, schema,
// validations.
//
// A pipeline is single use. Execute consumes it; running it again
// returns errors.ErrPipelineConsumed.
type Pipeline struct {
	source      SourceFunc
	transforms  []transform.Func
	backend     string
	schema      table.Schema
	validations [][]string
	logger      *slog.Logger
	runID       string
	executed    bool
}

// PipelineOption customizes a Pipeline at construction.
type PipelineOption func(*Pipeline)

// WithPipelineLogger sets the logger for pipeline events.
func WithPipelineLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPipeline starts a pipeline from a document source.
func NewPipeline(source SourceFunc, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		source:  source,
		backend: table.DefaultBackend,
		logger:  slog.Default(),
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pipeline starts a pipeline that fetches from the given target through
// this fetcher.
func (f *Fetcher) Pipeline(uri, database, collection string, filter docsource.Filter, limit int64) *Pipeline {
	return NewPipeline(f.Source(uri, database, collection, filter, limit), WithPipelineLogger(f.logger))
}

// Filter keeps only documents the predicate accepts.
func (p *Pipeline) Filter(pred func(docsource.Document) bool) *Pipeline {
	p.transforms = append(p.transforms, transform.Filter(pred))
	return p
}

// Transform rewrites each document.
func (p *Pipeline) Transform(fn func(docsource.Document) docsource.Document) *Pipeline {
	p.transforms = append(p.transforms, transform.Map(fn))
	return p
}

// Limit truncates to the first n documents.
func (p *Pipeline) Limit(n int) *Pipeline {
	p.transforms = append(p.transforms, transform.Limit(n))
	return p
}

// ToTable selects the table backend. The last call wins.
func (p *Pipeline) ToTable(backend string) *Pipeline {
	p.backend = backend
	return p
}

// ApplySchema registers the schema applied after assembly. The last call
// wins.
func (p *Pipeline) ApplySchema(s table.Schema) *Pipeline {
	p.schema = s
	return p
}

// Validate requires columns to be present in the assembled frame.
// Validations run after assembly in registration order.
func (p *Pipeline) Validate(required ...string) *Pipeline {
	p.validations = append(p.validations, required)
	return p
}

// RunID identifies this pipeline in log events.
func (p *Pipeline) RunID() string {
	return p.runID
}

// Execute runs the pipeline. Transforms only apply to a successful fetch;
// the first failing stage short-circuits the rest.
func (p *Pipeline) Execute(ctx context.Context) mo.Result[table.Frame] {
	if p.executed {
		return mo.Err[table.Frame](errors.ErrPipelineConsumed)
	}
	p.executed = true

	logger := p.logger.With("run_id", p.runID)
	logger.Debug("pipeline starting",
		"transforms", len(p.transforms),
		"backend", p.backend,
		"has_schema", len(p.schema) > 0,
		"validations", len(p.validations))

	docsRes := p.source(ctx).Map(func(docs []docsource.Document) ([]docsource.Document, error) {
		return transform.Pipe(p.transforms...)(docs), nil
	})
	if docsRes.IsError() {
		logger.Warn("pipeline fetch failed", "error", docsRes.Error())
		return mo.Err[table.Frame](docsRes.Error())
	}
	docs := docsRes.MustGet()

	asm, err := table.NewAssembler(p.backend, table.WithLogger(logger))
	if err != nil {
		logger.Warn("pipeline backend unavailable", "backend", p.backend, "error", err)
		return mo.Err[table.Frame](err)
	}

	frame, err := asm.Assemble(docs, p.schema)
	if err != nil {
		logger.Warn("pipeline assembly failed", "backend", p.backend, "error", err)
		return mo.Err[table.Frame](err)
	}

	for _, required := range p.validations {
		if err := checkColumns(frame, required); err != nil {
			logger.Warn("pipeline validation failed", "error", err)
			return mo.Err[table.Frame](err)
		}
	}

	logger.Debug("pipeline complete",
		"rows", frame.NumRows(),
		"columns", len(frame.Columns()))
	return mo.Ok(frame)
}

func checkColumns(f table.Frame, required []string) error {
	present := make(map[string]bool, len(f.Columns()))
	for _, c := range f.Columns() {
		present[c] = true
	}
	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return errors.NewValidationError(missing)
	}
	return nil
}
