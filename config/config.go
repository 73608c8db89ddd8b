// SPDX-License-Identifier: MIT
// Package: config
//
// Purpose:
//   - raw*: YAML shapes with pointer fields, so absent keys are detectable.
//   - Config: the validated value handed to the pipeline.

package config

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/porder/mcmc"
	"github.com/katalvlaran/porder/noise"
)

// Defaults for optional keys.
const (
	DefaultThinning  = 1
	DefaultSeed      = 1
	DefaultOutputDir = "output"
	DefaultDataName  = "porder"
)

type rawDocument struct {
	MCMC struct {
		NumIterations *int    `yaml:"num_iterations"`
		K             *int    `yaml:"K"`
		Thinning      *int    `yaml:"thinning"`
		Seed          *uint64 `yaml:"seed"`
		Update        struct {
			Rho   *float64 `yaml:"rho"`
			Noise *float64 `yaml:"noise"`
			U     *float64 `yaml:"U"`
		} `yaml:"update_probabilities"`
	} `yaml:"mcmc"`
	Generation struct {
		K *int `yaml:"K"`
		N *int `yaml:"n"`
	} `yaml:"generation"`
	Rho struct {
		DR      *float64 `yaml:"dr"`
		Initial *float64 `yaml:"initial"`
	} `yaml:"rho"`
	Noise struct {
		Option      *string  `yaml:"noise_option"`
		SigmaMallow *float64 `yaml:"sigma_mallow"`
	} `yaml:"noise"`
	Prior struct {
		RhoPrior       *float64 `yaml:"rho_prior"`
		NoiseBetaPrior *float64 `yaml:"noise_beta_prior"`
		MallowUA       *float64 `yaml:"mallow_ua"`
	} `yaml:"prior"`
	Covariates struct {
		P *int `yaml:"p"`
	} `yaml:"covariates"`
	Visualization struct {
		BurnIn *int `yaml:"burn_in"`
	} `yaml:"visualization"`
	Data struct {
		Path      string `yaml:"path"`
		OutputDir string `yaml:"output_dir"`
		DataName  string `yaml:"data_name"`
	} `yaml:"data"`
}

// Config is the validated run configuration.
type Config struct {
	NumIterations int
	K             int
	Thinning      int
	Seed          uint64
	Updates       mcmc.UpdateProbabilities

	DR         float64
	InitialRho *float64

	NoiseOption noise.Kind
	SigmaMallow float64

	RhoPrior       float64
	NoiseBetaPrior float64
	MallowUA       float64

	CovariateDim int
	BurnIn       int

	DataPath  string
	OutputDir string
	DataName  string
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document, applies defaults and validates it.
// Keys outside the recognised layout (data generation settings, for
// example) are ignored.
//
// Errors:
//   - ErrParse, ErrMissingKey, ErrInvalidValue (wrapped, naming the key).
func Parse(b []byte) (Config, error) {
	var raw rawDocument
	if err := yaml.NewDecoder(bytes.NewReader(b)).Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("%v: %w", err, ErrParse)
	}

	return raw.build()
}

func missing(key string) error { return fmt.Errorf("%s: %w", key, ErrMissingKey) }

func invalid(key string, v any) error { return fmt.Errorf("%s=%v: %w", key, v, ErrInvalidValue) }

func (r *rawDocument) build() (Config, error) {
	c := Config{
		Thinning:  DefaultThinning,
		Seed:      DefaultSeed,
		OutputDir: DefaultOutputDir,
		DataName:  DefaultDataName,
		DataPath:  r.Data.Path,
	}

	// mcmc
	if r.MCMC.NumIterations == nil {
		return Config{}, missing("mcmc.num_iterations")
	}
	if c.NumIterations = *r.MCMC.NumIterations; c.NumIterations < 1 {
		return Config{}, invalid("mcmc.num_iterations", c.NumIterations)
	}
	switch {
	case r.MCMC.K != nil:
		c.K = *r.MCMC.K
	case r.Generation.K != nil:
		c.K = *r.Generation.K
	default:
		return Config{}, missing("mcmc.K")
	}
	if c.K < 1 {
		return Config{}, invalid("mcmc.K", c.K)
	}
	if r.MCMC.Thinning != nil {
		if c.Thinning = *r.MCMC.Thinning; c.Thinning < 1 {
			return Config{}, invalid("mcmc.thinning", c.Thinning)
		}
	}
	if r.MCMC.Seed != nil {
		c.Seed = *r.MCMC.Seed
	}
	for _, w := range []struct {
		key string
		v   *float64
		dst *float64
	}{
		{"mcmc.update_probabilities.rho", r.MCMC.Update.Rho, &c.Updates.Rho},
		{"mcmc.update_probabilities.noise", r.MCMC.Update.Noise, &c.Updates.Noise},
		{"mcmc.update_probabilities.U", r.MCMC.Update.U, &c.Updates.U},
	} {
		if w.v == nil {
			return Config{}, missing(w.key)
		}
		if *w.v < 0 || math.IsNaN(*w.v) || math.IsInf(*w.v, 0) {
			return Config{}, invalid(w.key, *w.v)
		}
		*w.dst = *w.v
	}
	if c.Updates.Rho+c.Updates.Noise+c.Updates.U <= 0 {
		return Config{}, invalid("mcmc.update_probabilities", "all zero")
	}

	// rho
	if r.Rho.DR == nil {
		return Config{}, missing("rho.dr")
	}
	if c.DR = *r.Rho.DR; !(c.DR > 0 && c.DR < 1) {
		return Config{}, invalid("rho.dr", c.DR)
	}
	if r.Rho.Initial != nil {
		v := *r.Rho.Initial
		if !(v >= 0 && v < 1) {
			return Config{}, invalid("rho.initial", v)
		}
		c.InitialRho = &v
	}

	// noise
	if r.Noise.Option == nil {
		return Config{}, missing("noise.noise_option")
	}
	kind, err := noise.ParseKind(*r.Noise.Option)
	if err != nil {
		return Config{}, invalid("noise.noise_option", *r.Noise.Option)
	}
	c.NoiseOption = kind
	if r.Noise.SigmaMallow != nil {
		c.SigmaMallow = *r.Noise.SigmaMallow
	}
	if kind == noise.KindMallows {
		if r.Noise.SigmaMallow == nil {
			return Config{}, missing("noise.sigma_mallow")
		}
		if !(c.SigmaMallow > 0) {
			return Config{}, invalid("noise.sigma_mallow", c.SigmaMallow)
		}
	}

	// prior
	for _, p := range []struct {
		key string
		v   *float64
		dst *float64
	}{
		{"prior.rho_prior", r.Prior.RhoPrior, &c.RhoPrior},
		{"prior.noise_beta_prior", r.Prior.NoiseBetaPrior, &c.NoiseBetaPrior},
		{"prior.mallow_ua", r.Prior.MallowUA, &c.MallowUA},
	} {
		if p.v == nil {
			return Config{}, missing(p.key)
		}
		if !(*p.v > 0) || math.IsInf(*p.v, 0) {
			return Config{}, invalid(p.key, *p.v)
		}
		*p.dst = *p.v
	}

	// covariates
	if r.Covariates.P != nil {
		if c.CovariateDim = *r.Covariates.P; c.CovariateDim < 0 {
			return Config{}, invalid("covariates.p", c.CovariateDim)
		}
	}

	// visualization
	if r.Visualization.BurnIn == nil {
		return Config{}, missing("visualization.burn_in")
	}
	if c.BurnIn = *r.Visualization.BurnIn; c.BurnIn < 0 {
		return Config{}, invalid("visualization.burn_in", c.BurnIn)
	}

	// data
	if r.Data.OutputDir != "" {
		c.OutputDir = r.Data.OutputDir
	}
	if r.Data.DataName != "" {
		c.DataName = r.Data.DataName
	}

	return c, nil
}

// MCMC returns the sampler configuration with covariate shift alpha.
func (c Config) MCMC(alpha []float64) mcmc.Config {
	var initial *float64
	if c.InitialRho != nil {
		v := *c.InitialRho
		initial = &v
	}

	return mcmc.Config{
		Iterations:     c.NumIterations,
		K:              c.K,
		Thinning:       c.Thinning,
		Updates:        c.Updates,
		DR:             c.DR,
		InitialRho:     initial,
		NoiseKind:      c.NoiseOption,
		SigmaMallow:    c.SigmaMallow,
		RhoPrior:       c.RhoPrior,
		NoiseBetaPrior: c.NoiseBetaPrior,
		MallowUA:       c.MallowUA,
		Alpha:          alpha,
	}
}

// Overrides replaces selected values of a loaded Config, typically from
// command-line flags. Nil fields and empty strings keep the loaded value.
type Overrides struct {
	NumIterations *int
	BurnIn        *int
	Seed          *uint64
	NoiseOption   string
	DataPath      string
	OutputDir     string
	DataName      string
}

// Override returns a copy of c with o applied and validated.
//
// Errors:
//   - ErrInvalidValue naming the overridden key.
func (c Config) Override(o Overrides) (Config, error) {
	if o.NumIterations != nil {
		if *o.NumIterations < 1 {
			return Config{}, invalid("mcmc.num_iterations", *o.NumIterations)
		}
		c.NumIterations = *o.NumIterations
	}
	if o.BurnIn != nil {
		if *o.BurnIn < 0 {
			return Config{}, invalid("visualization.burn_in", *o.BurnIn)
		}
		c.BurnIn = *o.BurnIn
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.NoiseOption != "" {
		kind, err := noise.ParseKind(o.NoiseOption)
		if err != nil {
			return Config{}, invalid("noise.noise_option", o.NoiseOption)
		}
		if kind == noise.KindMallows && !(c.SigmaMallow > 0) {
			return Config{}, missing("noise.sigma_mallow")
		}
		c.NoiseOption = kind
	}
	if o.DataPath != "" {
		c.DataPath = o.DataPath
	}
	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}
	if o.DataName != "" {
		c.DataName = o.DataName
	}
	if c.InitialRho != nil {
		v := *c.InitialRho
		c.InitialRho = &v
	}

	return c, nil
}
