package quotesource

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/logger"
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
	"go.uber.org/zap"
)

// ParquetSource queries a Parquet file through an in-memory DuckDB view. The file needs
// time, open, high, low, close and volume columns.
type ParquetSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
	path   string
}

func NewParquetSource(path string, log *logger.Logger) (*ParquetSource, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to open duckdb", err)
	}

	// Squirrel has no CREATE VIEW support.
	query := fmt.Sprintf(`CREATE VIEW quotes AS SELECT * FROM read_parquet('%s');`, strings.ReplaceAll(path, "'", "''"))
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to read parquet file %s", path)
	}

	return &ParquetSource{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		path:   path,
	}, nil
}

func (s *ParquetSource) Load(start, end optional.Option[time.Time]) ([]types.Quote, error) {
	builder := s.sq.
		Select("time", "open", "high", "low", "close", "volume").
		From("quotes").
		OrderBy("time ASC")

	if start.IsSome() {
		builder = builder.Where(squirrel.GtOrEq{"time": start.Unwrap()})
	}

	if end.IsSome() {
		builder = builder.Where(squirrel.LtOrEq{"time": end.Unwrap()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to query %s", s.path)
	}
	defer rows.Close()

	var quotes []types.Quote

	for rows.Next() {
		var q types.Quote
		if err := rows.Scan(&q.Time, &q.Open, &q.High, &q.Low, &q.Close, &q.Volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQuoteParseFailed, "failed to scan quote", err)
		}

		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read rows", err)
	}

	s.logger.Debug("loaded quotes from parquet",
		zap.String("path", s.path),
		zap.Int("quotes", len(quotes)),
	)

	return Normalize(quotes), nil
}

func (s *ParquetSource) Close() error {
	return s.db.Close()
}
