package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"ganttui/pkg/keymaps"
	"ganttui/pkg/timeline"
)

// Config holds the application configuration
type Config struct {
	CellWidth  int               `json:"cell_width"`
	Mouse      bool              `json:"mouse"`
	KeyMap     map[string]string `json:"keymap"`
	StylesFile string            `json:"styles_file"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	// Chart colors
	BarColor     string `json:"bar_color"`
	BarFillColor string `json:"bar_fill_color"`
	HeaderColor  string `json:"header_color"`
	TodayColor   string `json:"today_color"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	configDir := filepath.Join(homeDir, ".config", "ganttui")

	return Config{
		CellWidth:  timeline.DefaultCellWidth,
		Mouse:      true,
		KeyMap:     keymaps.GetDefaultKeyMappings(),
		StylesFile: filepath.Join(configDir, "styles.json"),
	}
}

// DefaultStyles returns the built-in color scheme.
func DefaultStyles() Styles {
	return Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		BarColor:          "61",
		BarFillColor:      "205",
		HeaderColor:       "245",
		TodayColor:        "229",
	}
}

// Load loads the application configuration from the specified path
func Load(configPath string) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}
	configDir := filepath.Join(homeDir, ".config", "ganttui")

	config := Default()

	// Setup viper
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(configDir)
	}
	v.SetDefault("cell_width", config.CellWidth)
	v.SetDefault("mouse", config.Mouse)
	v.SetDefault("keymap", config.KeyMap)
	v.SetDefault("styles_file", config.StylesFile)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return config, Styles{}, err
		}
		// Config file not found, create default config
		if configPath == "" {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return config, Styles{}, err
			}
			if err := v.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
				return config, Styles{}, err
			}
		}
	}

	config.CellWidth = v.GetInt("cell_width")
	config.Mouse = v.GetBool("mouse")
	config.StylesFile = v.GetString("styles_file")

	// Viper lowercases map keys, so match overrides back to the
	// canonical action names.
	overrides := v.GetStringMapString("keymap")
	for action := range config.KeyMap {
		if key, ok := overrides[strings.ToLower(action)]; ok && key != "" {
			config.KeyMap[action] = key
		}
	}

	// A zero or negative cell width would collapse the whole chart
	if config.CellWidth < 1 {
		config.CellWidth = Default().CellWidth
	}

	// Now load the styles file
	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := DefaultStyles()

	// Try to read the styles file
	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		// If the file doesn't exist, create it with default values
		if os.IsNotExist(err) {
			// Create the directory if it doesn't exist
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			// Marshal the default styles to JSON
			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			// Write the default styles file
			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		// Some other error occurred
		return defaultStyles, err
	}

	// File exists, parse it
	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
