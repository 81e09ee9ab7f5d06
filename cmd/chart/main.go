package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rxtech-lab/argo-chart/internal/version"
	"github.com/urfave/cli/v3"
)

func rangeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "from",
			Usage: "First quote index of the visible range",
			Value: 0,
		},
		&cli.IntFlag{
			Name:  "to",
			Usage: "End quote index (exclusive) of the visible range. Negative means the last quote",
			Value: -1,
		},
	}
}

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "data",
			Aliases:  []string{"d"},
			Usage:    "Path to a `.csv` or `.parquet` quote file",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    "Path to the chart configuration YAML",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Override the configured log level (debug, info, warn, error)",
		},
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "chart",
		Usage:   "Compute chart indicators and scale extremes over quote files",
		Version: version.Version,
		Commands: []*cli.Command{
			{
				Name:   "compute",
				Usage:  "Print every configured indicator over the visible range",
				Flags:  append(inputFlags(), rangeFlags()...),
				Action: computeAction,
			},
			{
				Name:   "extreme",
				Usage:  "Print the resolved extreme point and scale bounds of each group",
				Flags:  append(inputFlags(), rangeFlags()...),
				Action: extremeAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the configuration JSON schema",
				Action: schemaAction,
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(_ context.Context, _ *cli.Command) error {
					fmt.Println(version.Version)
					return nil
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
