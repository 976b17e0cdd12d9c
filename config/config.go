// Package config loads the qosroute YAML configuration.
//
// Load starts from Default, overlays the file, and validates the result, so
// a file only needs the keys it changes.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qosroute/antcolony"
	"github.com/katalvlaran/qosroute/genetic"
	"github.com/katalvlaran/qosroute/qlearning"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/routing"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Data      DataConfig              `yaml:"data"`
	Query     QueryConfig             `yaml:"query"`
	Genetic   routing.GeneticParams   `yaml:"genetic"`
	AntColony routing.AntColonyParams `yaml:"ant_colony"`
	QLearning routing.QLearningParams `yaml:"q_learning"`
	Log       LogConfig               `yaml:"log"`
	Server    ServerConfig            `yaml:"server"`
}

// DataConfig locates the network tables.
type DataConfig struct {
	Nodes              string `yaml:"nodes"`
	Edges              string `yaml:"edges"`
	Demands            string `yaml:"demands"`
	Lenient            bool   `yaml:"lenient"`
	SkipDuplicateLinks bool   `yaml:"skip_duplicate_links"`
}

// QueryConfig is the default query of the solve and compare commands.
type QueryConfig struct {
	Source      int         `yaml:"source"`
	Destination int         `yaml:"destination"`
	Demand      float64     `yaml:"demand" validate:"gte=0"`
	Weights     qos.Weights `yaml:"weights"`
	Algorithm   string      `yaml:"algorithm"`
	Seed        int64       `yaml:"seed"`
}

// LogConfig configures the zap logger and its optional rotating file.
type LogConfig struct {
	Level      string `yaml:"level" validate:"oneof=debug info warn error"`
	Encoding   string `yaml:"encoding" validate:"oneof=console json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
	Mode string `yaml:"mode" validate:"oneof=debug release test"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Query: QueryConfig{
			Weights:   qos.DefaultWeights(),
			Algorithm: routing.Genetic.String(),
		},
		Genetic: routing.GeneticParams{
			PopulationSize: genetic.DefaultPopulationSize,
			Generations:    genetic.DefaultGenerations,
			MutationRate:   genetic.DefaultMutationRate,
			Elite:          genetic.DefaultElite,
			ParentPool:     genetic.DefaultParentPool,
		},
		AntColony: routing.AntColonyParams{
			Ants:       antcolony.DefaultAnts,
			Iterations: antcolony.DefaultIterations,
			Alpha:      antcolony.DefaultAlpha,
			Beta:       antcolony.DefaultBeta,
			Rho:        antcolony.DefaultRho,
			Phi:        antcolony.DefaultPhi,
			Q0:         antcolony.DefaultQ0,
			Tau0:       antcolony.DefaultTau0,
			MaxSteps:   antcolony.DefaultMaxSteps,
		},
		QLearning: routing.QLearningParams{
			Episodes:     qlearning.DefaultEpisodes,
			Alpha:        qlearning.DefaultAlpha,
			Gamma:        qlearning.DefaultGamma,
			Epsilon:      qlearning.DefaultEpsilon,
			EpsilonDecay: qlearning.DefaultEpsilonDecay,
			EpsilonMin:   qlearning.DefaultEpsilonMin,
			MaxSteps:     qlearning.DefaultMaxSteps,
		},
		Log: LogConfig{
			Level:      "info",
			Encoding:   "console",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(content)
}

// Parse overlays data on Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field ranges, the weight triple and the algorithm name.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Query.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: query.weights: %w", ErrInvalidConfig, err)
	}
	if _, err := routing.ParseAlgorithm(c.Query.Algorithm); err != nil {
		return fmt.Errorf("%w: query.algorithm: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Request builds the routing request described by the query and engine sections.
func (c *Config) Request() (routing.Request, error) {
	algo, err := routing.ParseAlgorithm(c.Query.Algorithm)
	if err != nil {
		return routing.Request{}, err
	}
	return routing.Request{
		Source:      c.Query.Source,
		Destination: c.Query.Destination,
		Demand:      c.Query.Demand,
		Weights:     c.Query.Weights,
		Algorithm:   algo,
		Seed:        c.Query.Seed,
		Genetic:     c.Genetic,
		AntColony:   c.AntColony,
		QLearning:   c.QLearning,
	}, nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
