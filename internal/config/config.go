// Package config loads the YAML description of a chart: which indicators to attach, with
// which parameters, and how charts are grouped onto shared vertical scales.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/chart"
	"github.com/rxtech-lab/argo-chart/internal/indicator"
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/internal/version"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the chart configuration.
type Config struct {
	Version    string            `yaml:"version,omitempty" json:"version,omitempty" jsonschema:"title=Version,description=Binary version the configuration was written for"`
	LogLevel   string            `yaml:"log_level,omitempty" json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error" jsonschema:"title=Log Level,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Parallel   bool              `yaml:"parallel,omitempty" json:"parallel,omitempty" jsonschema:"title=Parallel,description=Compute independent indicators concurrently"`
	Indicators []IndicatorConfig `yaml:"indicators" json:"indicators" validate:"dive" jsonschema:"title=Indicators,description=Indicators attached to the chart in order"`
	Groups     []GroupConfig     `yaml:"groups,omitempty" json:"groups,omitempty" validate:"dive" jsonschema:"title=Groups,description=Charts sharing one vertical scale"`
}

// IndicatorConfig describes one attached indicator.
type IndicatorConfig struct {
	ID     string `yaml:"id,omitempty" json:"id,omitempty" jsonschema:"title=ID,description=Explicit key. Empty selects the default key of the indicator type"`
	Type   string `yaml:"type" json:"type" validate:"required" jsonschema:"title=Type,description=Indicator type or alias"`
	Params []any  `yaml:"params,omitempty" json:"params,omitempty" jsonschema:"title=Params,description=Positional indicator parameters"`
}

// GroupConfig names the charts drawn on one scale.
type GroupConfig struct {
	Name   string   `yaml:"name" json:"name" validate:"required" jsonschema:"title=Name"`
	Charts []string `yaml:"charts" json:"charts" validate:"required,min=1,dive,required" jsonschema:"title=Charts,description=candlestick price timeshare volume vol or an indicator id or type"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config %s", path)
	}

	return Parse(data)
}

// Parse decodes a YAML configuration. It does not validate.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	return &config, nil
}

// Validate checks field constraints, indicator types, key uniqueness, group references and
// version compatibility with the running binary.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if err := version.CheckConfigCompatibility(version.Version, c.Version); err != nil {
		return err
	}

	refs := make(map[string]struct{}, len(c.Indicators))

	for i, ind := range c.Indicators {
		typ, ok := types.ParseIndicatorType(ind.Type)
		if !ok {
			return errors.Newf(errors.ErrCodeUnknownIndicatorType, "indicators[%d]: unknown indicator type %q", i, ind.Type)
		}

		if ind.ID != "" && quoteSource(ind.ID).IsSome() {
			return errors.Newf(errors.ErrCodeInvalidConfiguration, "indicators[%d]: id %q is a reserved chart name", i, ind.ID)
		}

		key := ind.key(typ)
		if _, exists := refs[key]; exists {
			return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "indicators[%d]: duplicate indicator %q", i, key)
		}

		refs[key] = struct{}{}
	}

	names := make(map[string]struct{}, len(c.Groups))

	for _, group := range c.Groups {
		if _, exists := names[group.Name]; exists {
			return errors.Newf(errors.ErrCodeGroupAlreadyExists, "duplicate group %q", group.Name)
		}

		names[group.Name] = struct{}{}

		for _, name := range group.Charts {
			if quoteSource(name).IsSome() {
				continue
			}

			if _, ok := lookup(refs, name); !ok {
				return errors.Newf(errors.ErrCodeInvalidConfiguration, "group %s: unknown chart %q", group.Name, name)
			}
		}
	}

	return nil
}

// Options returns the chart options the configuration selects.
func (c *Config) Options() []chart.Option {
	return []chart.Option{chart.WithParallel(c.Parallel)}
}

// Apply builds every configured indicator through registry, attaches it to target and
// registers the groups. The configuration should be validated first.
func (c *Config) Apply(target *chart.Chart, registry indicator.IndicatorRegistry) error {
	ids := make(map[string]any, len(c.Indicators))

	for i, ind := range c.Indicators {
		typ, ok := types.ParseIndicatorType(ind.Type)
		if !ok {
			return errors.Newf(errors.ErrCodeUnknownIndicatorType, "indicators[%d]: unknown indicator type %q", i, ind.Type)
		}

		processor, err := registry.NewProcessor(typ, ind.ID, ind.Params...)
		if err != nil {
			return errors.Wrapf(errors.GetCode(err), err, "indicators[%d]", i)
		}

		if err := target.Attach(processor); err != nil {
			return err
		}

		ids[ind.key(typ)] = processor.ID()
	}

	for _, group := range c.Groups {
		sources := make([]chart.ExtremeSource, 0, len(group.Charts))

		for _, name := range group.Charts {
			if source := quoteSource(name); source.IsSome() {
				sources = append(sources, source.Unwrap())
				continue
			}

			key, ok := lookup(ids, name)
			if !ok {
				return errors.Newf(errors.ErrCodeInvalidConfiguration, "group %s: unknown chart %q", group.Name, name)
			}

			sources = append(sources, chart.IndicatorSource{ID: ids[key]})
		}

		if err := target.AddGroup(chart.NewGroup(group.Name, sources...)); err != nil {
			return err
		}
	}

	return nil
}

// key is the name other parts of the configuration refer to the indicator by.
func (i IndicatorConfig) key(typ types.IndicatorType) string {
	if i.ID != "" {
		return i.ID
	}

	return string(typ)
}

// lookup resolves a chart reference against indicator keys: an explicit id first, then an
// indicator type or alias naming a default-keyed indicator.
func lookup[V any](refs map[string]V, name string) (string, bool) {
	if _, ok := refs[name]; ok {
		return name, true
	}

	if typ, ok := types.ParseIndicatorType(name); ok {
		if _, ok := refs[string(typ)]; ok {
			return string(typ), true
		}
	}

	return "", false
}

func quoteSource(name string) optional.Option[chart.ExtremeSource] {
	switch strings.ToLower(name) {
	case "candlestick", "price", "timeshare":
		return optional.Some[chart.ExtremeSource](chart.PriceSource{})
	case "volume", "vol":
		return optional.Some[chart.ExtremeSource](chart.VolumeSource{})
	}

	return optional.None[chart.ExtremeSource]()
}
