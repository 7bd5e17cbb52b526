package profile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/log"
)

// File is the TOML configuration file:
//
//	environment = "sandbox"
//	version = "69.0"
//	log_level = "info"
//
//	[profile]
//	username = "seller_api1.example.com"
//	password = "..."
//	signature = "..."
type File struct {
	Environment string       `toml:"environment"`
	Version     string       `toml:"version"`
	EndpointURL string       `toml:"endpoint_url"`
	LogLevel    string       `toml:"log_level"`
	Profile     APISignature `toml:"profile"`
}

// LoadFile reads and validates a configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFile(data)
}

func ParseFile(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := log.ParseLevel(f.LogLevel); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := f.Env(); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &f, nil
}

// Env parses Environment. An empty value means sandbox.
func (f *File) Env() (consts.Environment, error) {
	return consts.ParseEnvironment(f.Environment)
}
