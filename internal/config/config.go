package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds user-tunable settings loaded from config.toml.
type Config struct {
	Team    TeamConfig    `toml:"team"`
	Reports ReportsConfig `toml:"reports"`
	UI      UIConfig      `toml:"ui"`
}

// TeamConfig sets the defaults applied to newly provisioned members.
type TeamConfig struct {
	HoursPerDay float64 `toml:"hours_per_day"`
	WorkDays    []int   `toml:"work_days"` // time.Weekday values, 0=Sunday
}

type ReportsConfig struct {
	OutputDir string `toml:"output_dir"`
}

type UIConfig struct {
	Theme            string `toml:"theme"`
	DefaultRangeType string `toml:"default_range"` // day, week, month
}

// WorkingDays converts the configured integers to weekdays, falling back
// to Monday-Friday when the list is empty or contains junk.
func (t TeamConfig) WorkingDays() []time.Weekday {
	var days []time.Weekday
	for _, d := range t.WorkDays {
		if d >= 0 && d <= 6 {
			days = append(days, time.Weekday(d))
		}
	}
	if len(days) == 0 {
		return append([]time.Weekday(nil), DefaultWorkingDays...)
	}
	return days
}

func DefaultConfig() Config {
	return Config{
		Team: TeamConfig{
			HoursPerDay: DefaultHoursPerDay,
			WorkDays:    []int{1, 2, 3, 4, 5},
		},
		Reports: ReportsConfig{},
		UI: UIConfig{
			Theme:            "default",
			DefaultRangeType: "week",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads config.toml, returning defaults when the file is absent.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Team.HoursPerDay <= 0 {
		cfg.Team.HoursPerDay = DefaultHoursPerDay
	}
	return &cfg, nil
}
