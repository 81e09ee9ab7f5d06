package quotesource

import (
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/logger"
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
	"go.uber.org/zap"
)

// CSVSource reads a CSV file with a header of time,open,high,low,close,volume and optional
// start,end columns. Times are RFC 3339.
type CSVSource struct {
	path   string
	logger *logger.Logger
	cache  []types.Quote
}

func NewCSVSource(path string, log *logger.Logger) *CSVSource {
	return &CSVSource{
		path:   path,
		logger: log,
	}
}

// Load reads the file once and serves later calls from memory.
func (s *CSVSource) Load(start, end optional.Option[time.Time]) ([]types.Quote, error) {
	if s.cache == nil {
		file, err := os.Open(s.path)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to open %s", s.path)
		}
		defer file.Close()

		var quotes []types.Quote
		if err := gocsv.UnmarshalFile(file, &quotes); err != nil {
			return nil, errors.Wrapf(errors.ErrCodeQuoteParseFailed, err, "failed to parse %s", s.path)
		}

		s.cache = Normalize(quotes)

		s.logger.Debug("loaded quotes from csv",
			zap.String("path", s.path),
			zap.Int("quotes", len(s.cache)),
		)
	}

	filtered := make([]types.Quote, 0, len(s.cache))
	for _, q := range s.cache {
		if inRange(q.Time, start, end) {
			filtered = append(filtered, q)
		}
	}

	return filtered, nil
}

// Close drops the in-memory copy.
func (s *CSVSource) Close() error {
	s.cache = nil
	return nil
}
