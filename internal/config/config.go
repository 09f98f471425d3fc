package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wearable_display/internal/display"
	"wearable_display/internal/models"

	"github.com/spf13/viper"
)

const envPrefix = "WD"

type Config struct {
	Port     string             `mapstructure:"port"`
	LogLevel string             `mapstructure:"log_level"`
	DB       DBConfig           `mapstructure:"db"`
	Auth     AuthConfig         `mapstructure:"auth"`
	Display  DisplayConfig      `mapstructure:"display"`
	Profile  models.UserProfile `mapstructure:"profile"`
	Journal  JournalConfig      `mapstructure:"journal"`
	Sim      SimConfig          `mapstructure:"simulator"`
	Serial   SerialConfig       `mapstructure:"serial"`
	GPIO     GPIOConfig         `mapstructure:"gpio"`
	FB       FBConfig           `mapstructure:"framebuffer"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type DisplayConfig struct {
	Tick            time.Duration `mapstructure:"tick"`
	SleepThreshold  time.Duration `mapstructure:"sleep_threshold"`
	SplashTimeout   time.Duration `mapstructure:"splash_timeout"`
	BootTimeout     time.Duration `mapstructure:"boot_timeout"`
	MaxDrainPerTick int           `mapstructure:"max_drain_per_tick"`
	PlotCapacity    int           `mapstructure:"plot_capacity"`
	BootCapacity    int           `mapstructure:"boot_capacity"`
	EventCapacity   int           `mapstructure:"event_capacity"`
	StartScreen     string        `mapstructure:"start_screen"`
	StreamBuffer    int           `mapstructure:"stream_buffer"`
}

type JournalConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	Retention time.Duration `mapstructure:"retention"`
}

type SimConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Tick     time.Duration `mapstructure:"tick"`
	Scenario string        `mapstructure:"scenario"`
}

type SerialConfig struct {
	Port string `mapstructure:"port"`
	Baud int    `mapstructure:"baud"`
}

type GPIOConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	PanelPin       string `mapstructure:"panel_pin"`
	PanelActiveLow bool   `mapstructure:"panel_active_low"`
	BatteryPin     string `mapstructure:"battery_pin"`
}

type FBConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Device  string `mapstructure:"device"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)

	v.SetDefault("display.tick", display.DefaultTick)
	v.SetDefault("display.sleep_threshold", display.DefaultSleepThreshold)
	v.SetDefault("display.splash_timeout", display.DefaultSplashTimeout)
	v.SetDefault("display.boot_timeout", display.DefaultBootTimeout)
	v.SetDefault("display.max_drain_per_tick", display.DefaultMaxDrainPerTick)
	v.SetDefault("display.plot_capacity", display.DefaultPlotCapacity)
	v.SetDefault("display.boot_capacity", display.DefaultBootCapacity)
	v.SetDefault("display.event_capacity", 128)
	v.SetDefault("display.start_screen", "HOME")
	v.SetDefault("display.stream_buffer", 256)

	v.SetDefault("profile.height_cm", models.DefaultHeightCM)
	v.SetDefault("profile.weight_kg", models.DefaultWeightKG)
	v.SetDefault("profile.met", models.DefaultMET)

	v.SetDefault("journal.interval", 500*time.Millisecond)
	v.SetDefault("journal.retention", 7*24*time.Hour)
	v.SetDefault("simulator.enabled", true)
	v.SetDefault("simulator.tick", 40*time.Millisecond)
	v.SetDefault("serial.baud", 115200)
	v.SetDefault("framebuffer.width", 240)
	v.SetDefault("framebuffer.height", 240)
}

// Load reads configs/config.yml (or path, when set) with WD_* env overrides.
// A missing config file is not an error; defaults apply.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}
	if c.Auth.SigningKey == "" {
		errs = append(errs, errors.New("auth.signing_key is required"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if _, err := models.ParseScreen(c.Display.StartScreen); err != nil {
		errs = append(errs, fmt.Errorf("display.start_screen: %w", err))
	}
	if c.Display.Tick <= 0 || c.Display.SleepThreshold <= 0 {
		errs = append(errs, errors.New("display.tick and display.sleep_threshold must be positive"))
	}
	if c.Profile.HeightCM <= 0 || c.Profile.WeightKG <= 0 || c.Profile.MET <= 0 {
		errs = append(errs, errors.New("profile values must be positive"))
	}
	if c.GPIO.Enabled && c.GPIO.PanelPin == "" {
		errs = append(errs, errors.New("gpio.panel_pin is required when gpio is enabled"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ControllerConfig maps the display section onto the controller config.
func (c Config) ControllerConfig() display.Config {
	start, _ := models.ParseScreen(c.Display.StartScreen)
	return display.Config{
		SleepThreshold:  c.Display.SleepThreshold,
		SplashTimeout:   c.Display.SplashTimeout,
		BootTimeout:     c.Display.BootTimeout,
		MaxDrainPerTick: c.Display.MaxDrainPerTick,
		PlotCapacity:    c.Display.PlotCapacity,
		BootCapacity:    c.Display.BootCapacity,
		EventCapacity:   c.Display.EventCapacity,
		StartScreen:     start,
		Profile:         c.Profile,
	}
}
