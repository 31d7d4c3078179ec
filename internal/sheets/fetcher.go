package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"networth/pkg/networth"
)

// Options controls Fetcher construction. The fetcher owns the one
// asynchronous boundary of the system: everything downstream consumes
// an already-materialized grid.
type Options struct {
	SpreadsheetID   string
	ReadRange       string
	CredentialsFile string
	APIKey          string
	// UseSample serves the built-in sample grid instead of calling the
	// Sheets API. This replaces the old implicit "no credentials in the
	// environment, fall back to mock data" behavior with an explicit
	// switch set at construction.
	UseSample bool
	Logger    *slog.Logger
}

// Fetcher retrieves the raw tracker grid from Google Sheets.
type Fetcher struct {
	opts   Options
	logger *slog.Logger
}

// NewFetcher creates a Fetcher from the provided options.
func NewFetcher(opts Options) *Fetcher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{opts: opts, logger: logger}
}

// Fetch returns the current grid. Fetch failures are never swallowed;
// they propagate as UPSTREAM_FAILURE for the handler layer to surface.
func (f *Fetcher) Fetch(ctx context.Context) (networth.Grid, error) {
	if f.opts.UseSample {
		f.logger.Debug("serving built-in sample grid")
		return SampleGrid(), nil
	}
	if strings.TrimSpace(f.opts.SpreadsheetID) == "" {
		return nil, networth.NewError(networth.ErrCodeUnconfigured, "no spreadsheet configured")
	}

	service, err := f.newService(ctx)
	if err != nil {
		return nil, networth.WrapError(networth.ErrCodeUpstreamFailure, "create sheets client", err)
	}
	resp, err := service.Spreadsheets.Values.Get(f.opts.SpreadsheetID, f.opts.ReadRange).Context(ctx).Do()
	if err != nil {
		return nil, networth.WrapError(networth.ErrCodeUpstreamFailure,
			fmt.Sprintf("read range %s from spreadsheet %s", f.opts.ReadRange, f.opts.SpreadsheetID), err)
	}
	f.logger.Info("fetched grid", "spreadsheet_id", f.opts.SpreadsheetID, "rows", len(resp.Values))
	return normalizeValues(resp.Values), nil
}

func (f *Fetcher) newService(ctx context.Context) (*sheets.Service, error) {
	var opts []option.ClientOption
	if f.opts.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(f.opts.CredentialsFile))
	} else if f.opts.APIKey != "" {
		opts = append(opts, option.WithAPIKey(f.opts.APIKey))
	}
	return sheets.NewService(ctx, opts...)
}

// normalizeValues converts the API's loosely typed cell values into the
// string grid the engine consumes.
func normalizeValues(values [][]interface{}) networth.Grid {
	grid := make(networth.Grid, 0, len(values))
	for _, row := range values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			switch v := cell.(type) {
			case string:
				cells = append(cells, v)
			case nil:
				cells = append(cells, "")
			default:
				cells = append(cells, fmt.Sprint(v))
			}
		}
		grid = append(grid, cells)
	}
	return grid
}
