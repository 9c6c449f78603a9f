package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// HexID is a USB vendor or product ID given as a hexadecimal string,
// e.g. "0x0416". The "0x" prefix is optional.
type HexID uint16

// UnmarshalText implements encoding.TextUnmarshaler for env parsing.
func (h *HexID) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(string(text))), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return fmt.Errorf("invalid hexadecimal id %q", string(text))
	}
	*h = HexID(v)
	return nil
}

func (h HexID) String() string {
	return fmt.Sprintf("0x%04x", uint16(h))
}

// Printer describes how to reach the USB thermal printer.
type Printer struct {
	VendorID  HexID  `env:"PRINTER_VENDOR_ID,required"`
	ProductID HexID  `env:"PRINTER_PRODUCT_ID,required"`
	Interface int    `env:"PRINTER_INTERFACE" envDefault:"0"`
	Profile   string `env:"PRINTER_PROFILE"`
}

// Config holds all application configuration, loaded from environment
// variables.
type Config struct {
	Addr    string `env:"ADDR" envDefault:":8080"`
	Printer Printer
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
