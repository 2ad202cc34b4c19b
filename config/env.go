// Package config loads rollkit configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/louisbranch/rollkit/dice"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// defaultsEnv mirrors dice.Params for environment parsing.
type defaultsEnv struct {
	Faces          int `env:"ROLLKIT_FACES" envDefault:"10"`
	Dice           int `env:"ROLLKIT_DICE" envDefault:"1"`
	AdditionalDice int `env:"ROLLKIT_ADDITIONAL_DICE" envDefault:"0"`
	Rerolls        int `env:"ROLLKIT_REROLLS" envDefault:"0"`
	Bursts         int `env:"ROLLKIT_BURSTS" envDefault:"0"`
	Bonus          int `env:"ROLLKIT_BONUS" envDefault:"0"`
}

// Defaults builds the default roll parameters from ROLLKIT_* variables.
// Unset variables fall back to dice.DefaultParams values. The parameters are
// not validated here; the roller validates them on every roll.
func Defaults() (dice.Params, error) {
	var cfg defaultsEnv
	if err := ParseEnv(&cfg); err != nil {
		return dice.Params{}, err
	}

	return dice.Params{
		Faces:          cfg.Faces,
		Dice:           cfg.Dice,
		AdditionalDice: cfg.AdditionalDice,
		Rerolls:        cfg.Rerolls,
		Bursts:         cfg.Bursts,
		Bonus:          cfg.Bonus,
	}, nil
}
