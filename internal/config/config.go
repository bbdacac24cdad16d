// Package config persists the viewer's user preferences.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mj1618/object-viewer/internal/logging"
	"github.com/mj1618/object-viewer/internal/model"
	"gopkg.in/yaml.v3"
)

// Config holds persistent user preferences.
// Stored as YAML at ~/.object-viewer/config.yaml.
type Config struct {
	NVDAReviewMode   bool   `yaml:"nvdaReviewMode"`   // Follow the host's own review preference
	SimpleReviewMode bool   `yaml:"simpleReviewMode"` // Used when NVDAReviewMode is off
	AddTreeNotesMode string `yaml:"addTreeNotesMode"` // "children" or "iterator"
}

// Default returns factory defaults.
func Default() Config {
	return Config{NVDAReviewMode: true, SimpleReviewMode: false, AddTreeNotesMode: "children"}
}

// Keys lists the option names accepted by Get and Set.
var Keys = []string{"addTreeNotesMode", "nvdaReviewMode", "simpleReviewMode"}

// ErrUnknownKey is returned for option names not in Keys.
var ErrUnknownKey = errors.New("unknown config key")

// DefaultPath returns the standard config location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".object-viewer", "config.yaml")
}

// Store loads and saves the configuration. Every setter persists.
type Store struct {
	path string
	cfg  Config
	log  *slog.Logger
}

// Load reads config from path. Missing files and missing keys fall back to
// defaults; an unreadable or corrupt file is logged and replaced by defaults
// in memory.
func Load(path string, log *slog.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Store{path: path, cfg: Default(), log: log}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s
	}
	if err != nil {
		log.Warn("config read failed, using defaults", "path", path, "err", err)
		return s
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn("config parse failed, using defaults", "path", path, "err", err)
		return s
	}
	if _, err := model.ParsePopulationMode(cfg.AddTreeNotesMode); err != nil {
		log.Warn("invalid addTreeNotesMode, using children", "value", cfg.AddTreeNotesMode)
		cfg.AddTreeNotesMode = Default().AddTreeNotesMode
	}
	s.cfg = cfg
	return s
}

// Path returns the file the store persists to.
func (s *Store) Path() string { return s.path }

// Config returns a copy of the current values.
func (s *Store) Config() Config { return s.cfg }

// Save writes the config to disk atomically (write to temp, then rename).
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	data, err := yaml.Marshal(s.cfg)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// persist saves and logs failures; a preference that cannot be written
// still applies for the rest of the session.
func (s *Store) persist() {
	if err := s.Save(); err != nil {
		s.log.Warn("config not persisted", "path", s.path, "err", err)
	}
}

// PopulationMode returns the configured tree population strategy.
func (s *Store) PopulationMode() model.PopulationMode {
	m, _ := model.ParsePopulationMode(s.cfg.AddTreeNotesMode)
	return m
}

// SetPopulationMode changes and persists the population strategy.
func (s *Store) SetPopulationMode(m model.PopulationMode) {
	if s.cfg.AddTreeNotesMode == m.String() {
		return
	}
	s.cfg.AddTreeNotesMode = m.String()
	s.persist()
}

// NVDAReviewMode reports whether traversal follows the host's preference.
func (s *Store) NVDAReviewMode() bool { return s.cfg.NVDAReviewMode }

// SetNVDAReviewMode changes and persists the host review option.
func (s *Store) SetNVDAReviewMode(on bool) {
	s.cfg.NVDAReviewMode = on
	s.persist()
}

// SimpleReviewMode reports the viewer's own simple review option.
func (s *Store) SimpleReviewMode() bool { return s.cfg.SimpleReviewMode }

// SetSimpleReviewMode changes and persists the simple review option.
func (s *Store) SetSimpleReviewMode(on bool) {
	s.cfg.SimpleReviewMode = on
	s.persist()
}

// TraversalMode resolves the relation variant to follow. With NVDA review
// mode on the host's own preference applies.
func (s *Store) TraversalMode(hostSimple bool) model.TraversalMode {
	simple := s.cfg.SimpleReviewMode
	if s.cfg.NVDAReviewMode {
		simple = hostSimple
	}
	if simple {
		return model.Simplified
	}
	return model.HostDefault
}

// Get returns an option value by name.
func (s *Store) Get(key string) (string, error) {
	switch key {
	case "nvdaReviewMode":
		return strconv.FormatBool(s.cfg.NVDAReviewMode), nil
	case "simpleReviewMode":
		return strconv.FormatBool(s.cfg.SimpleReviewMode), nil
	case "addTreeNotesMode":
		return s.cfg.AddTreeNotesMode, nil
	default:
		return "", fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownKey, key, Keys)
	}
}

// Set parses and persists an option value by name.
func (s *Store) Set(key, value string) error {
	switch key {
	case "nvdaReviewMode", "simpleReviewMode":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", key, value, err)
		}
		if key == "nvdaReviewMode" {
			s.cfg.NVDAReviewMode = on
		} else {
			s.cfg.SimpleReviewMode = on
		}
	case "addTreeNotesMode":
		m, err := model.ParsePopulationMode(value)
		if err != nil {
			return err
		}
		s.cfg.AddTreeNotesMode = m.String()
	default:
		return fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownKey, key, Keys)
	}
	return s.Save()
}

// All returns every option as a name to value map.
func (s *Store) All() map[string]string {
	out := make(map[string]string, len(Keys))
	for _, k := range Keys {
		out[k], _ = s.Get(k)
	}
	return out
}
