// Package config reads the YAML machine description.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one machine: the ROM image to run, the RAM window and
// where the peripherals sit on the data bus. Zero values fall back to the
// defaults, so a file holding only a rom path is valid.
type Config struct {
	ROM       string `yaml:"rom"`
	RAMSize   int    `yaml:"ram_size"`
	UARTBase  uint16 `yaml:"uart_base"`
	GPIOBase  uint16 `yaml:"gpio_base"`
	TimerBase uint16 `yaml:"timer_base"`
	ClockHz   int    `yaml:"clock_hz"`
	Trace     bool   `yaml:"trace"`
}

func Default() Config {
	return Config{
		RAMSize:   0x10000,
		UARTBase:  0xF000,
		GPIOBase:  0xF010,
		TimerBase: 0xF020,
	}
}

// Load parses a YAML machine description, filling unset fields from the
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("couldn't read the config: %w", err)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("couldn't parse the config: %w", err)
	}
	return withDefaults(cfg), nil
}

func withDefaults(cfg Config) Config {
	def := Default()
	if cfg.RAMSize == 0 {
		cfg.RAMSize = def.RAMSize
	}
	if cfg.UARTBase == 0 {
		cfg.UARTBase = def.UARTBase
	}
	if cfg.GPIOBase == 0 {
		cfg.GPIOBase = def.GPIOBase
	}
	if cfg.TimerBase == 0 {
		cfg.TimerBase = def.TimerBase
	}
	return cfg
}
