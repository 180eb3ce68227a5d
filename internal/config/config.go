// Package config loads world parameters from SOFTBODY_* environment
// variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/phanxgames/softbody"
)

// Env mirrors softbody.Config with one environment variable per field.
// Defaults match softbody.DefaultConfig.
type Env struct {
	Width                float64 `envconfig:"WIDTH" default:"1280"`
	Height               float64 `envconfig:"HEIGHT" default:"680"`
	NodeRadius           float64 `envconfig:"NODE_RADIUS" default:"5"`
	DefaultRestingLength float64 `envconfig:"RESTING_LENGTH" default:"100"`
	GravityX             float64 `envconfig:"GRAVITY_X" default:"0"`
	GravityY             float64 `envconfig:"GRAVITY_Y" default:"98"`
	Stiffness            float64 `envconfig:"STIFFNESS" default:"25"`
	Damping              float64 `envconfig:"DAMPING" default:"5"`
	SkeletonStiffness    float64 `envconfig:"SKELETON_STIFFNESS" default:"15"`
	ForceLimit           float64 `envconfig:"FORCE_LIMIT" default:"1000"`
	SubIterations        int     `envconfig:"SUB_ITERATIONS" default:"1"`

	// Presentation options for the demos.
	Debug    bool   `envconfig:"DEBUG" default:"false"`
	ShowFPS  bool   `envconfig:"SHOW_FPS" default:"true"`
	Scenario string `envconfig:"SCENARIO"`
}

// World converts e to a softbody.Config.
func (e Env) World() softbody.Config {
	return softbody.Config{
		Width:                e.Width,
		Height:               e.Height,
		NodeRadius:           e.NodeRadius,
		DefaultRestingLength: e.DefaultRestingLength,
		Gravity:              softbody.Vec2{X: e.GravityX, Y: e.GravityY},
		Stiffness:            e.Stiffness,
		Damping:              e.Damping,
		SkeletonStiffness:    e.SkeletonStiffness,
		ForceLimit:           e.ForceLimit,
		SubIterations:        e.SubIterations,
	}
}

// Load reads the environment and validates the resulting world parameters.
func Load() (*Env, error) {
	var env Env
	if err := envconfig.Process("softbody", &env); err != nil {
		return nil, err
	}
	if err := env.World().Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &env, nil
}
