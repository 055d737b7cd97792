// Package config provides configuration management for the qrecc CLI tool
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrProfileNotFound is returned when a named profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for encode and check
type DefaultSettings struct {
	CorrectionBytes int    `json:"correction_bytes"` // Default: 10
	Profile         string `json:"profile"`          // Used when no -k/-p is given
	InputFormat     string `json:"input_format"`     // text, hex, base64, decimal
	OutputFormat    string `json:"output_format"`    // hex, base64, decimal
	FullCodeword    bool   `json:"full_codeword"`    // Print data + correction bytes
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color"` // Enable colored output
	Verbosity string `json:"verbosity"` // quiet, normal, verbose
}

// Profile is a named correction byte count
type Profile struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	CorrectionBytes int      `json:"correction_bytes"`
	Tags            []string `json:"tags"`
	Builtin         bool     `json:"builtin,omitempty"`
}

// builtinProfiles are the per-block correction byte counts of QR versions 1-4.
var builtinProfiles = []Profile{
	{Name: "1-L", CorrectionBytes: 7, Description: "QR version 1, level L"},
	{Name: "1-M", CorrectionBytes: 10, Description: "QR version 1, level M"},
	{Name: "1-Q", CorrectionBytes: 13, Description: "QR version 1, level Q"},
	{Name: "1-H", CorrectionBytes: 17, Description: "QR version 1, level H"},
	{Name: "2-L", CorrectionBytes: 10, Description: "QR version 2, level L"},
	{Name: "2-M", CorrectionBytes: 16, Description: "QR version 2, level M"},
	{Name: "2-Q", CorrectionBytes: 22, Description: "QR version 2, level Q"},
	{Name: "2-H", CorrectionBytes: 28, Description: "QR version 2, level H"},
	{Name: "3-L", CorrectionBytes: 15, Description: "QR version 3, level L"},
	{Name: "3-M", CorrectionBytes: 26, Description: "QR version 3, level M"},
	{Name: "3-Q", CorrectionBytes: 18, Description: "QR version 3, level Q (per block)"},
	{Name: "3-H", CorrectionBytes: 22, Description: "QR version 3, level H (per block)"},
	{Name: "4-L", CorrectionBytes: 20, Description: "QR version 4, level L"},
	{Name: "4-M", CorrectionBytes: 18, Description: "QR version 4, level M (per block)"},
	{Name: "4-Q", CorrectionBytes: 26, Description: "QR version 4, level Q (per block)"},
	{Name: "4-H", CorrectionBytes: 16, Description: "QR version 4, level H (per block)"},
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
	profiles   map[string]*Profile
}

// NewConfigManager creates a new configuration manager at the default path
func NewConfigManager() (*ConfigManager, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return NewConfigManagerAt(configPath)
}

// NewConfigManagerAt creates a configuration manager backed by configPath
func NewConfigManagerAt(configPath string) (*ConfigManager, error) {
	cm := &ConfigManager{
		configPath: configPath,
		profiles:   make(map[string]*Profile),
	}

	// Load or create default config
	if err := cm.LoadConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	if err := cm.LoadProfiles(); err != nil {
		return nil, err
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			CorrectionBytes: 10,
			Profile:         "",
			InputFormat:     "text",
			OutputFormat:    "hex",
			FullCodeword:    false,
		},
		UI: UIConfig{
			UseColor:  true,
			Verbosity: "normal",
		},
	}
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Reset replaces the configuration with the defaults and saves it
func (cm *ConfigManager) Reset() error {
	cm.config = DefaultConfig()
	return cm.SaveConfig()
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// Path returns the configuration file path
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

func (cm *ConfigManager) profilesPath() string {
	return filepath.Join(filepath.Dir(cm.configPath), "profiles.json")
}

// LoadProfiles loads saved profiles
func (cm *ConfigManager) LoadProfiles() error {
	data, err := os.ReadFile(cm.profilesPath())
	if err != nil {
		if os.IsNotExist(err) {
			// Profiles file doesn't exist yet
			return nil
		}
		return err
	}

	profiles := make(map[string]*Profile)
	if err := json.Unmarshal(data, &profiles); err != nil {
		return fmt.Errorf("failed to parse profiles: %w", err)
	}

	cm.profiles = profiles
	return nil
}

// SaveProfiles saves profiles to disk
func (cm *ConfigManager) SaveProfiles() error {
	if err := os.MkdirAll(filepath.Dir(cm.configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	if err := os.WriteFile(cm.profilesPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}

	return nil
}

// AddProfile adds or replaces a user profile
func (cm *ConfigManager) AddProfile(profile *Profile) error {
	if profile.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if profile.CorrectionBytes <= 0 {
		return fmt.Errorf("profile %q: correction bytes must be positive", profile.Name)
	}
	if _, ok := lookupBuiltin(profile.Name); ok {
		return fmt.Errorf("profile %q is built in and cannot be replaced", profile.Name)
	}

	stored := *profile
	stored.Builtin = false
	cm.profiles[profile.Name] = &stored
	return cm.SaveProfiles()
}

// GetProfile retrieves a profile by name, user profiles first
func (cm *ConfigManager) GetProfile(name string) (*Profile, error) {
	if profile, exists := cm.profiles[name]; exists {
		return profile, nil
	}
	if profile, ok := lookupBuiltin(name); ok {
		return profile, nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrProfileNotFound, name)
}

// ListProfiles returns built-in and user profiles sorted by name
func (cm *ConfigManager) ListProfiles() []*Profile {
	profiles := make([]*Profile, 0, len(builtinProfiles)+len(cm.profiles))
	for i := range builtinProfiles {
		p := builtinProfiles[i]
		p.Builtin = true
		profiles = append(profiles, &p)
	}
	for _, profile := range cm.profiles {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})
	return profiles
}

// DeleteProfile removes a user profile
func (cm *ConfigManager) DeleteProfile(name string) error {
	if _, exists := cm.profiles[name]; !exists {
		if _, ok := lookupBuiltin(name); ok {
			return fmt.Errorf("profile '%s' is built in and cannot be deleted", name)
		}
		return fmt.Errorf("%w: '%s'", ErrProfileNotFound, name)
	}

	delete(cm.profiles, name)
	return cm.SaveProfiles()
}

// ResolveCorrectionBytes picks the correction byte count for a command: an
// explicit k wins, then the named profile, then the configured default
// profile, then the configured default count.
func (cm *ConfigManager) ResolveCorrectionBytes(k int, profile string) (int, error) {
	if k != 0 {
		return k, nil
	}
	if profile == "" {
		profile = cm.config.Defaults.Profile
	}
	if profile != "" {
		p, err := cm.GetProfile(profile)
		if err != nil {
			return 0, err
		}
		return p.CorrectionBytes, nil
	}
	return cm.config.Defaults.CorrectionBytes, nil
}

func lookupBuiltin(name string) (*Profile, bool) {
	for i := range builtinProfiles {
		if builtinProfiles[i].Name == name {
			p := builtinProfiles[i]
			p.Builtin = true
			return &p, true
		}
	}
	return nil, false
}

// GetConfigPath returns the configuration file path
func GetConfigPath() (string, error) {
	// Check for custom config path
	if customPath := os.Getenv("QRECC_CONFIG"); customPath != "" {
		return customPath, nil
	}

	// Use XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "qrecc", "config.json"), nil
	}

	// Default to ~/.config/qrecc/config.json
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "qrecc", "config.json"), nil
}
