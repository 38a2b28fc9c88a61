package config

import (
	"image/color"

	"github.com/automoto/pixelfall/shared/collision"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer.
const Default ecs.LayerID = 0

// PhysicsConfig contains the integrator tuning. Velocities are pixels per
// tick at 60 ticks per second.
type PhysicsConfig struct {
	// Gravity used when a screen file does not set its own
	GravityX float64
	GravityY float64

	TerminalVelocity   float64 // Per-axis cap on gravity velocity
	JumpVelocity       float64
	DoubleJumpStrength float64 // Fraction of JumpVelocity for a mid-air jump
	DoubleJumpCharges  int
	MoveSpeed          float64
	ConveyorSpeed      float64 // Drift added while touching a conveyor
	JumpFrames         int     // Exposed per screen for tuning
}

// PlayerConfig contains player hitbox and respawn configuration
type PlayerConfig struct {
	// Hitbox rows, '#' is solid
	Mask []string

	RespawnDelayFrames int
}

// ObjectsConfig contains dynamic object behaviour
type ObjectsConfig struct {
	PlatformTravelSeconds float32 // Time for one leg of a platform's path
	PlatformTickSeconds   float32 // Tween time advanced per tick
	PatrolSpeed           float64 // Enemy walk speed in pixels per tick
	PatrolGravity         float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartScreen int  // Screen id to start on
	NoSave      bool // Disable progress persistence
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Objects ObjectsConfig
var Debug DebugConfig

// Flat colours used by the renderer, keyed by tile layer.
var LayerColors = [3]color.RGBA{
	{R: 40, G: 44, B: 70, A: 255},
	{R: 90, G: 96, B: 130, A: 255},
	{R: 170, G: 176, B: 210, A: 255},
}

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple     = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Background = color.RGBA{R: 12, G: 12, B: 20, A: 255}
)

func init() {
	C = &Config{
		Width:  collision.ScreenWidth,
		Height: collision.ScreenHeight,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		GravityX:           0,
		GravityY:           0.4,
		TerminalVelocity:   8.0,
		JumpVelocity:       7.5,
		DoubleJumpStrength: 0.8,
		DoubleJumpCharges:  1,
		MoveSpeed:          2.5,
		ConveyorSpeed:      1.0,
		JumpFrames:         12,
	}

	Player = PlayerConfig{
		Mask: []string{
			"..####..",
			".######.",
			".######.",
			"..####..",
			"########",
			"########",
			"########",
			"########",
			"########",
			"########",
			"########",
			".######.",
			".######.",
			".##..##.",
			".##..##.",
			".##..##.",
		},
		RespawnDelayFrames: 45,
	}

	Objects = ObjectsConfig{
		PlatformTravelSeconds: 2,
		PlatformTickSeconds:   1.0 / 60,
		PatrolSpeed:           1.0,
		PatrolGravity:         0.4,
	}

	Debug = DebugConfig{
		StartScreen: 1,
	}
}
