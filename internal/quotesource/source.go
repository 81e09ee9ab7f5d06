// Package quotesource loads quote sequences from files for the chart CLI.
package quotesource

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/logger"
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
)

// QuoteSource reads quotes between two optional inclusive time bounds. The result is
// normalized: ascending by time with one quote per timestamp.
type QuoteSource interface {
	Load(start, end optional.Option[time.Time]) ([]types.Quote, error)
	Close() error
}

// Open picks a source by file extension: .csv or .parquet.
func Open(path string, log *logger.Logger) (QuoteSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVSource(path, log), nil
	case ".parquet":
		return NewParquetSource(path, log)
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedFile, "unsupported quote file %s, expected .csv or .parquet", path)
	}
}

// Normalize sorts quotes by time and keeps the last quote for each repeated timestamp,
// so a later live update of an interval replaces the earlier one.
func Normalize(quotes []types.Quote) []types.Quote {
	sorted := slices.Clone(quotes)
	slices.SortStableFunc(sorted, func(a, b types.Quote) int {
		return a.Time.Compare(b.Time)
	})

	result := make([]types.Quote, 0, len(sorted))
	for _, q := range sorted {
		if n := len(result); n > 0 && result[n-1].Time.Equal(q.Time) {
			result[n-1] = q
			continue
		}

		result = append(result, q)
	}

	return result
}

func inRange(t time.Time, start, end optional.Option[time.Time]) bool {
	if start.IsSome() && t.Before(start.Unwrap()) {
		return false
	}

	if end.IsSome() && t.After(end.Unwrap()) {
		return false
	}

	return true
}
