// SPDX-License-Identifier: MIT

// Package config loads the process configuration from TWOCYCLE_* environment
// variables, validates it and converts it into solver.Options.
//
// Layout (prefix TWOCYCLE_):
//
//	SOLVER_*      solver knobs with the documented defaults
//	EXPERIMENT_*  batch trial count and worker pool size
//	SERVER_*      HTTP listener and job limits
//	LOG_*         slog level and handler format
//
// Command-line flags of cmd/twocycle override loaded values when set.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/twocycle/construct"
	"github.com/katalvlaran/twocycle/search"
	"github.com/katalvlaran/twocycle/solver"
)

// Prefix is prepended to every environment variable name.
const Prefix = "TWOCYCLE_"

// ErrInvalid wraps every load or validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Solver mirrors solver.Options in environment-friendly types.
type Solver struct {
	Algo            string        `env:"ALGO" envDefault:"msls" validate:"oneof=msls ils lns lnsa hae"`
	CandidateK      int           `env:"CANDIDATE_K" envDefault:"10" validate:"gte=1"`
	PopSize         int           `env:"POP_SIZE" envDefault:"20" validate:"gte=2"`
	MinDiff         int           `env:"MIN_DIFF" envDefault:"40" validate:"gte=0"`
	DestroyFraction float64       `env:"DESTROY_FRACTION" envDefault:"0.2" validate:"gt=0,lt=1"`
	NMoves          int           `env:"N_MOVES" envDefault:"10" validate:"gte=1"`
	Iterations      int           `env:"ITERATIONS" envDefault:"200" validate:"gte=1"`
	TimeLimit       time.Duration `env:"TIME_LIMIT" envDefault:"1s" validate:"gt=0"`
	MaxIterations   int           `env:"MAX_ITERATIONS" envDefault:"0" validate:"gte=0"`
	WithLocal       bool          `env:"WITH_LOCAL" envDefault:"true"`
	Seed            int64         `env:"SEED" envDefault:"1"`
	RegretWeight    float64       `env:"REGRET_WEIGHT" envDefault:"1"`
	GreedyWeight    float64       `env:"GREEDY_WEIGHT" envDefault:"1"`
	Initial         string        `env:"INITIAL" envDefault:"random" validate:"oneof=random weighted-regret"`
	Search          string        `env:"SEARCH" envDefault:"candidate" validate:"oneof=candidate steepest greedy move-list"`
	Workers         int           `env:"WORKERS" envDefault:"1" validate:"gte=1,lte=256"`
}

// Config is the whole process configuration.
type Config struct {
	Solver     Solver `envPrefix:"SOLVER_"`
	Experiment struct {
		Trials  int `env:"TRIALS" envDefault:"10" validate:"gte=1"`
		Workers int `env:"WORKERS" envDefault:"4" validate:"gte=1"`
	} `envPrefix:"EXPERIMENT_"`
	Server struct {
		Addr            string        `env:"ADDR" envDefault:":8080" validate:"required"`
		ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s" validate:"gt=0"`
		WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s" validate:"gt=0"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
		MaxRunning      int           `env:"MAX_RUNNING" envDefault:"4" validate:"gte=1"`
		MaxVertices     int           `env:"MAX_VERTICES" envDefault:"2000" validate:"gte=4"`
		MaxTimeLimit    time.Duration `env:"MAX_TIME_LIMIT" envDefault:"5m" validate:"gt=0"`
	} `envPrefix:"SERVER_"`
	Log struct {
		Level  string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
		Format string `env:"FORMAT" envDefault:"json" validate:"oneof=json text"`
	} `envPrefix:"LOG_"`
}

// Load reads the process environment.
func Load() (*Config, error) {
	return load(env.Options{Prefix: Prefix})
}

// LoadFrom reads the given variables instead of the process environment.
// Keys carry the full TWOCYCLE_ prefix.
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Prefix: Prefix, Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		var agg env.AggregateError
		if errors.As(err, &agg) && len(agg.Errors) > 0 {
			// The first error reads best in logs.
			err = agg.Errors[0]
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// SolverOptions converts the solver section. The Logger is left nil.
func (c *Config) SolverOptions() (solver.Options, error) {
	return c.Solver.Options()
}

// Options converts s into solver.Options.
func (s Solver) Options() (solver.Options, error) {
	algo, err := solver.ParseAlgo(s.Algo)
	if err != nil {
		return solver.Options{}, err
	}
	initial, err := solver.ParseInitial(s.Initial)
	if err != nil {
		return solver.Options{}, err
	}
	variant, err := search.ParseVariant(s.Search)
	if err != nil {
		return solver.Options{}, err
	}

	opts := solver.DefaultOptions()
	opts.Algo = algo
	opts.CandidateK = s.CandidateK
	opts.Search = variant
	opts.PopSize = s.PopSize
	opts.MinDiff = s.MinDiff
	opts.DestroyFraction = s.DestroyFraction
	opts.NMoves = s.NMoves
	opts.Iterations = s.Iterations
	opts.TimeLimit = s.TimeLimit
	opts.MaxIterations = s.MaxIterations
	opts.WithLocal = s.WithLocal
	opts.Seed = s.Seed
	opts.Weights = construct.Weights{Regret: s.RegretWeight, Greedy: s.GreedyWeight}
	opts.Initial = initial
	opts.Workers = s.Workers

	return opts, nil
}
