package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "morris/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ServerConfig struct {
	Addr string `json:"addr"`
}

type Config struct {
	MoveLimit   int          `json:"move_limit"`
	MaxTurns    int          `json:"max_turns"`
	Games       int          `json:"games"`
	Workers     int          `json:"workers"`
	Seed        uint64       `json:"seed"`
	Players     [2]string    `json:"players"`
	Temperature float64      `json:"temperature"`
	RecordDir   string       `json:"record_dir"`
	Server      ServerConfig `json:"server"`
	LogLevel    string       `json:"log_level"`

	workersSet bool
}

// InitConfig starts from DefaultConfig and overlays the first config file
// found in the XDG config directories, if any.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return Load(absPath)
}

// Load overlays the file at path on DefaultConfig. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		keys, err := readCfgFile(path, &config)
		if err != nil {
			return nil, err
		}
		_, config.workersSet = keys["workers"]
	}
	config.Normalize()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// SetWorkers fixes the number of concurrent games. An explicit count is kept
// by Normalize even when a human plays.
func (c *Config) SetWorkers(n int) {
	c.Workers = n
	c.workersSet = true
}

// Normalize drops Workers to 1 when a human plays and no worker count was set
// explicitly, since a human answers one game at a time.
func (c *Config) Normalize() {
	if c.workersSet {
		return
	}
	for _, p := range c.Players {
		if p == "human" {
			c.Workers = 1
			return
		}
	}
}

func (c *Config) Validate() error {
	if c.MoveLimit <= 0 {
		return &InvalidConfig{"move_limit must be positive"}
	}
	if c.MaxTurns <= 0 {
		return &InvalidConfig{"max_turns must be positive"}
	}
	if c.Games <= 0 {
		return &InvalidConfig{"games must be positive"}
	}
	if c.Workers <= 0 {
		return &InvalidConfig{"workers must be positive"}
	}
	if c.Temperature < 0 {
		return &InvalidConfig{"temperature must not be negative"}
	}
	for _, p := range c.Players {
		if !isPlayerKind(p) && !isURL(p) {
			return &InvalidConfig{fmt.Sprintf("unknown player %q, want one of %v or an agent URL", p, PlayerKinds)}
		}
		if p == "human" && c.Workers != 1 {
			return &InvalidConfig{"human players need a single worker"}
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log_level %q", c.LogLevel)}
	}
	return nil
}

// Save writes c to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return errors.Wrap(err, "locating config file")
	}
	return saveCfgFile(absPath, c, 0664)
}

func isPlayerKind(kind string) bool {
	for _, k := range PlayerKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func isURL(kind string) bool {
	return strings.HasPrefix(kind, "http://") || strings.HasPrefix(kind, "https://")
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return errors.Wrapf(os.WriteFile(filePath, jsonData, perm), "writing %s", filePath)
}

// readCfgFile decodes the file into a and also returns its top-level keys.
func readCfgFile(filePath string, a interface{}) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filePath)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filePath)
	}
	var keys map[string]json.RawMessage
	return keys, errors.Wrapf(json.Unmarshal(data, &keys), "parsing %s", filePath)
}
