package machine

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kaioluanro/emulador-gba/internal/mmu"
	"github.com/kaioluanro/emulador-gba/pkg/log"
)

// Config is a run profile, usually loaded from YAML:
//
//	image: roms/cpu_instrs.gb.zst
//	load_address: 0x0000
//	entry: 0x0100
//	steps: 50000000
//	post_boot: true
//	serial: true
type Config struct {
	// Image is the path of the program image, optionally compressed.
	Image string `yaml:"image"`
	// LoadAddress is where the image is copied to.
	LoadAddress uint16 `yaml:"load_address"`
	// Entry overrides the initial PC when set.
	Entry *uint16 `yaml:"entry"`
	// Steps is the step budget, 0 runs until something stops the CPU.
	Steps int `yaml:"steps"`

	PostBoot   bool `yaml:"post_boot"`
	StopOnHalt bool `yaml:"stop_on_halt"`
	Serial     bool `yaml:"serial"`
	Trace      bool `yaml:"trace"`

	// LogLevel is a logrus level name, info when empty.
	LogLevel string `yaml:"log_level"`
}

// ParseConfig decodes a YAML run profile. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("machine: parsing config: %w", err)
	}
	return &c, nil
}

// LoadConfig reads and decodes the YAML run profile at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports every problem with the profile at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Image == "" {
		result = multierror.Append(result, errors.New("image is required"))
	}
	if c.Steps < 0 {
		result = multierror.Append(result, fmt.Errorf("steps must not be negative, got %d", c.Steps))
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// CheckImage reports an image that would not fit at LoadAddress.
func (c *Config) CheckImage(size int) error {
	if int(c.LoadAddress)+size > mmu.AddressSpace {
		return fmt.Errorf("%w: %d bytes at 0x%04X", mmu.ErrImageTooLarge, size, c.LoadAddress)
	}
	return nil
}

// Options translates the profile into Machine options for the given
// image data.
func (c *Config) Options(data []byte, l log.Logger) []Opt {
	opts := []Opt{WithImage(c.LoadAddress, data), WithLogger(l)}
	if c.PostBoot {
		opts = append(opts, PostBoot())
	}
	if c.Entry != nil {
		opts = append(opts, WithEntryPoint(*c.Entry))
	}
	if c.StopOnHalt {
		opts = append(opts, StopOnHalt())
	}
	if c.Serial {
		opts = append(opts, WithSerial())
	}
	if c.Trace {
		opts = append(opts, Debug())
	}
	return opts
}
