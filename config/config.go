// Package config loads the demo settings from YAML on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vertices/camera"
	"github.com/plus3/vertices/input"
	"github.com/plus3/vertices/transform"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 480
	DefaultTitle  = "3D Sword"
	DefaultTPS    = 60
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window     WindowConfig        `yaml:"window"`
	ClearColor [3]uint8            `yaml:"clear_color"`
	Camera     CameraConfig        `yaml:"camera"`
	Rates      transform.Rates     `yaml:"rates"`
	Overlay    bool                `yaml:"overlay"`
	Keys       map[string][]string `yaml:"keys"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TPS       int    `yaml:"tps"`
	Resizable bool   `yaml:"resizable"`
}

type CameraConfig struct {
	Eye    [3]float32 `yaml:"eye"`
	Target [3]float32 `yaml:"target"`
	Up     [3]float32 `yaml:"up"`
	FovY   float32    `yaml:"fov_y"`
	Near   float32    `yaml:"near"`
	Far    float32    `yaml:"far"`
}

func DefaultConfig() *Config {
	cam := camera.Default(DefaultWidth, DefaultHeight)
	return &Config{
		Window: WindowConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Title:     DefaultTitle,
			TPS:       DefaultTPS,
			Resizable: true,
		},
		ClearColor: [3]uint8{100, 149, 237},
		Camera: CameraConfig{
			Eye:    cam.Eye,
			Target: cam.Target,
			Up:     cam.Up,
			FovY:   cam.FovYDeg,
			Near:   cam.Near,
			Far:    cam.Far,
		},
		Rates:   transform.DefaultRates(),
		Overlay: true,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Window.TPS)
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		return fmt.Errorf("%w: fov_y %v outside (0, 180)", ErrInvalid, c.Camera.FovY)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: depth range [%v, %v]", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if mgl32.Vec3(c.Camera.Eye) == mgl32.Vec3(c.Camera.Target) {
		return fmt.Errorf("%w: camera eye equals target", ErrInvalid)
	}
	for name, v := range map[string]float32{
		"scale":     c.Rates.Scale,
		"rotate":    c.Rates.Rotate,
		"orbit":     c.Rates.Orbit,
		"translate": c.Rates.Translate,
	} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: rate %s = %v", ErrInvalid, name, v)
		}
	}
	if _, err := c.Keymap(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Keymap returns the default keymap with the configured overrides applied.
func (c *Config) Keymap() (*input.Keymap, error) {
	k := input.DefaultKeymap()
	if len(c.Keys) == 0 {
		return k, nil
	}
	if err := k.Rebind(c.Keys); err != nil {
		return nil, err
	}
	return k, nil
}

// NewCamera builds the camera for a viewport of the given size.
func (c *Config) NewCamera(width, height int) camera.Camera {
	cam := camera.Camera{
		Eye:     c.Camera.Eye,
		Target:  c.Camera.Target,
		Up:      c.Camera.Up,
		FovYDeg: c.Camera.FovY,
		Near:    c.Camera.Near,
		Far:     c.Camera.Far,
		Aspect:  1,
	}
	cam.SetViewport(width, height)
	return cam
}

func (c *Config) ClearRGBA() color.RGBA {
	return color.RGBA{c.ClearColor[0], c.ClearColor[1], c.ClearColor[2], 0xff}
}
