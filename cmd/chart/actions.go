package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/chart"
	"github.com/rxtech-lab/argo-chart/internal/config"
	"github.com/rxtech-lab/argo-chart/internal/indicator"
	"github.com/rxtech-lab/argo-chart/internal/logger"
	"github.com/rxtech-lab/argo-chart/internal/quotesource"
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// session is a loaded chart together with the visible range requested on the command line.
type session struct {
	chart  *chart.Chart
	config *config.Config
	logger *logger.Logger
	window types.Range
}

func openSession(cmd *cli.Command) (*session, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if override := cmd.String("log-level"); override != "" {
		level = override
	}

	if level == "" {
		level = "info"
	}

	log, err := logger.NewLoggerWithLevel(level)
	if err != nil {
		return nil, err
	}

	source, err := quotesource.Open(cmd.String("data"), log)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	quotes, err := source.Load(optional.None[time.Time](), optional.None[time.Time]())
	if err != nil {
		return nil, err
	}

	c := chart.NewChart(append(cfg.Options(), chart.WithLogger(log))...)
	if err := cfg.Apply(c, indicator.NewDefaultIndicatorRegistry()); err != nil {
		return nil, err
	}

	c.Reload(quotes)

	window, err := visibleRange(int(cmd.Int("from")), int(cmd.Int("to")), c.Len())
	if err != nil {
		return nil, err
	}

	log.Info("chart loaded",
		zap.String("data", cmd.String("data")),
		zap.Int("quotes", c.Len()),
		zap.Int("indicators", len(c.IndicatorIDs())),
		zap.Stringer("range", window),
	)

	return &session{
		chart:  c,
		config: cfg,
		logger: log,
		window: window,
	}, nil
}

// visibleRange resolves the --from/--to flags. A negative to selects the end of the data.
func visibleRange(from, to, count int) (types.Range, error) {
	if to < 0 {
		to = count
	}

	if from < 0 || from > to {
		return types.Range{}, errors.Newf(errors.ErrCodeInvalidRange, "invalid range %d..<%d", from, to)
	}

	return types.NewRange(from, to).Clamp(0, count), nil
}

func computeAction(_ context.Context, cmd *cli.Command) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	fmt.Println(TitleStyle.Render(fmt.Sprintf("%d quotes, range %s", s.chart.Len(), s.window)))
	fmt.Println(renderIndicatorTable(s.chart, s.window))

	return nil
}

func extremeAction(_ context.Context, cmd *cli.Command) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	groups := s.chart.GroupExtremePoints(s.window)
	if len(groups) == 0 {
		s.logger.Warn("no groups configured")
	}

	fmt.Println(TitleStyle.Render(fmt.Sprintf("Group extremes over %s", s.window)))
	fmt.Println(renderGroupTable(groups))

	return nil
}

func schemaAction(_ context.Context, _ *cli.Command) error {
	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to encode schema", err)
	}

	fmt.Println(string(data))

	return nil
}
