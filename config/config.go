package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Viewer struct {
	Model   string `yaml:"model"`
	Texture string `yaml:"texture"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// vertical field of view in degrees
	FOV      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`

	// radians per key press
	RotateStep float32 `yaml:"rotate_step"`

	ClearColor [3]float32 `yaml:"clear_color"`
	Light      [3]float32 `yaml:"light"`
	Ambient    float32    `yaml:"ambient"`

	CPUProfile string `yaml:"cpuprofile"`
}

type Convert struct {
	Output string `yaml:"output"`
	Name   string `yaml:"name"`
}

type Config struct {
	Viewer  Viewer  `yaml:"viewer"`
	Convert Convert `yaml:"convert"`
}

func Default() *Config {
	return &Config{
		Viewer: Viewer{
			Width:      640,
			Height:     480,
			FOV:        60,
			Near:       0.1,
			Far:        100,
			Distance:   5,
			RotateStep: 0.5,
			ClearColor: [3]float32{0.41, 0, 0.54},
			Light:      [3]float32{0, 0, 1},
			Ambient:    0.2,
		},
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parse config %q", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	v := &c.Viewer
	switch {
	case v.Width <= 0 || v.Height <= 0:
		return errors.Errorf("window size %dx%d must be positive", v.Width, v.Height)
	case v.FOV <= 0 || v.FOV >= 180:
		return errors.Errorf("fov %v must be between 0 and 180 degrees", v.FOV)
	case v.Near <= 0 || v.Far <= v.Near:
		return errors.Errorf("clip planes near=%v far=%v are invalid", v.Near, v.Far)
	case v.Ambient < 0 || v.Ambient > 1:
		return errors.Errorf("ambient %v must be within [0, 1]", v.Ambient)
	case v.Light == [3]float32{}:
		return errors.New("light direction must not be zero")
	}
	return nil
}
