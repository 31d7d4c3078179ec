package networth

import "log/slog"

// Options controls Engine initialization.
type Options struct {
	Schema *GridSchema
	Logger *slog.Logger
}

// Engine derives net-worth series and analytics from raw grids. It is
// stateless per invocation: every method is a pure function of its grid
// argument, so concurrent callers need no coordination.
type Engine struct {
	schema GridSchema
	logger *slog.Logger
}

// New creates an Engine using the provided options.
func New(opts Options) *Engine {
	schema := DefaultSchema()
	if opts.Schema != nil {
		schema = *opts.Schema
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{schema: schema, logger: logger}
}

// Schema returns the grid schema the engine was built with.
func (e *Engine) Schema() GridSchema {
	return e.schema
}
