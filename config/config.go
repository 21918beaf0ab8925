package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// Codec names usable in a profile.
const (
	CodecEscaped = "escaped"
	CodecAlpha   = "alpha"
)

// ValidCodec reports whether name is a known codec.
func ValidCodec(name string) bool {
	return name == CodecEscaped || name == CodecAlpha
}

// Profile is a named preset of codec behavior.
type Profile struct {
	Name      string
	Codec     string `yaml:"codec"`
	ShowStats bool   `yaml:"show-stats"`
}

type Config struct {
	CurrentProfile  string     `yaml:"current-profile"`
	ProfileOverride string     `yaml:"-"`
	Profiles        []*Profile `yaml:"profiles"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

// DefaultProfile is what an unconfigured run behaves like.
func DefaultProfile() *Profile {
	return &Profile{Codec: CodecEscaped}
}

func (c *Config) HasProfile(name string) bool {
	for _, profile := range c.Profiles {
		if profile.Name == name {
			return true
		}
	}
	return false
}

// SetCurrentProfile selects an existing profile and persists the choice.
func (c *Config) SetCurrentProfile(name string) error {
	oldProfile := c.CurrentProfile
	for _, profile := range c.Profiles {
		if profile.Name == name {
			c.CurrentProfile = name

			if err := c.Write(); err != nil {
				// "Revert" the change, either everything is successful or
				// nothing.
				c.CurrentProfile = oldProfile
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("could not find profile with name %v", name)
}

// ActiveProfile resolves the profile in effect: an override beats the
// configured current profile. Returns nil when nothing matches.
func (c *Config) ActiveProfile() *Profile {
	if c == nil {
		return nil
	}

	toSearch := c.ProfileOverride
	if c.ProfileOverride == "" {
		toSearch = c.CurrentProfile
	}

	if toSearch == "" {
		return nil
	}

	for _, profile := range c.Profiles {
		if profile.Name == toSearch {
			// Make a copy of the profile struct, using a pointer leads to
			// unintended behavior where modifications on the active profile
			// are written back into the config
			p := *profile
			return &p
		}
	}
	return nil
}

// AddProfile validates and persists a new profile.
func (c *Config) AddProfile(p *Profile) error {
	if p.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if c.HasProfile(p.Name) {
		return fmt.Errorf("profile %q already exists", p.Name)
	}
	if p.Codec == "" {
		p.Codec = CodecEscaped
	}
	if !ValidCodec(p.Codec) {
		return fmt.Errorf("unknown codec %q (want %s or %s)", p.Codec, CodecEscaped, CodecAlpha)
	}
	c.Profiles = append(c.Profiles, p)
	return c.Write()
}

// DeleteProfile removes a profile and persists the change. Deleting the
// current profile clears the selection.
func (c *Config) DeleteProfile(name string) error {
	for i, profile := range c.Profiles {
		if profile.Name == name {
			c.Profiles = append(c.Profiles[:i], c.Profiles[i+1:]...)
			if c.CurrentProfile == name {
				c.CurrentProfile = ""
			}
			return c.Write()
		}
	}
	return fmt.Errorf("could not find profile with name %v", name)
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(&c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	return nil
}

func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&c)
	// An empty file decodes to the zero config.
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".relic", "config"), nil
}
