package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the app configuration: where the data lives, the startup filter
// and the keymap. Loaded from a YAML file with env overrides on top.
type Config struct {
	// DataDir holds tasks.json. Defaults to the working directory.
	DataDir string `yaml:"data_dir"`

	// DefaultFilter preselects a status bucket at startup:
	// "" | "to-do" | "in-progress" | "done".
	DefaultFilter string `yaml:"default_filter"`

	Keys Keymap `yaml:"keys"`
}

// Keymap binds the list-mode actions. Text-entry modes use fixed bindings
// (esc, tab, ctrl+s) so typing is never shadowed by a configured key.
type Keymap struct {
	Up     string `yaml:"up"`
	Down   string `yaml:"down"`
	Add    string `yaml:"add"`
	Edit   string `yaml:"edit"`
	Delete string `yaml:"delete"`
	Search string `yaml:"search"`
	Filter string `yaml:"filter"`
	Quit   string `yaml:"quit"`
}

func Default() Config {
	return Config{
		DataDir:       ".",
		DefaultFilter: "",
		Keys: Keymap{
			Up:     "k",
			Down:   "j",
			Add:    "a",
			Edit:   "e",
			Delete: "d",
			Search: "/",
			Filter: "f",
			Quit:   "q",
		},
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// a file that exists but does not parse is an error. Env overrides are
// applied last either way.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	fillKeymap(&cfg.Keys)
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if dir := os.Getenv("TASK_TRACKER_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
}

// fillKeymap backfills unset bindings so a partial keys block in the file
// does not leave actions unbound.
func fillKeymap(k *Keymap) {
	def := Default().Keys
	if k.Up == "" {
		k.Up = def.Up
	}
	if k.Down == "" {
		k.Down = def.Down
	}
	if k.Add == "" {
		k.Add = def.Add
	}
	if k.Edit == "" {
		k.Edit = def.Edit
	}
	if k.Delete == "" {
		k.Delete = def.Delete
	}
	if k.Search == "" {
		k.Search = def.Search
	}
	if k.Filter == "" {
		k.Filter = def.Filter
	}
	if k.Quit == "" {
		k.Quit = def.Quit
	}
}
