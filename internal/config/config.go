// Package config provides centralized configuration loading for the
// inheritance calculator using spf13/viper, with local .env loading via
// joho/godotenv. All config access must go through this package.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Exported configuration keys.
const (
	LogLevelKey               = "log_level"
	PatternOverridesPathKey   = "pattern_overrides_path"
	DefaultOutputFormatKey    = "default_output_format"
	InvarianceEnableValidKey  = "invariance.enable_validation"
)

var (
	config            *viper.Viper
	configOnce        sync.Once
	configPath        string
	envLoaded         bool
	requiredKeys      []string
	requiredKeysMutex sync.Mutex
)

// ResetForTest resets the config singleton for test use only.
func ResetForTest() {
	config = nil
	configOnce = sync.Once{}
	configPath = ""
	envLoaded = false
	requiredKeysMutex.Lock()
	requiredKeys = nil
	requiredKeysMutex.Unlock()
}

// SetConfigPath allows test code to override the config file path before first use.
func SetConfigPath(path string) {
	configPath = path
}

// loadConfig initializes viper and loads config from file and env. A
// .env file in the working directory, if present, is loaded into the
// process environment before viper reads AutomaticEnv values, matching how
// local developer machines are expected to supply secrets outside of a
// committed config file.
func loadConfig() (*viper.Viper, error) {
	if !envLoaded {
		_ = godotenv.Load()
		envLoaded = true
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetConfigName("config")
	v.AddConfigPath(os.ExpandEnv("$HOME/.mawarith"))
	if configPath != "" {
		v.SetConfigFile(configPath)
	}
	v.AutomaticEnv()
	v.SetDefault(LogLevelKey, "INFO")
	v.SetDefault(DefaultOutputFormatKey, "json")
	v.SetDefault(InvarianceEnableValidKey, true)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return v, nil
	}
	return v, nil
}

func initConfig() error {
	var err error
	configOnce.Do(func() {
		var c *viper.Viper
		c, err = loadConfig()
		if err == nil {
			config = c
		} else {
			config = nil
		}
	})
	return err
}

// Reload reloads the configuration from disk.
func Reload() error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	config = c
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	_ = initConfig()
	if config == nil {
		return ""
	}
	return config.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	_ = initConfig()
	if config == nil {
		return false
	}
	return config.GetBool(key)
}

// RegisterRequiredKey adds a key to the list of required configuration
// items. Packages call this during their own init() phase.
func RegisterRequiredKey(key string) {
	requiredKeysMutex.Lock()
	defer requiredKeysMutex.Unlock()
	for _, k := range requiredKeys {
		if k == key {
			return
		}
	}
	requiredKeys = append(requiredKeys, key)
}

// HasKey returns true if the config has the key set.
func HasKey(key string) bool {
	_ = initConfig()
	if config == nil {
		return false
	}
	return config.IsSet(key)
}

// Validate checks for required/invalid config values.
func Validate() error {
	_ = initConfig()
	if config == nil {
		return fmt.Errorf("config not initialized, cannot validate")
	}

	var missingKeys []string
	requiredKeysMutex.Lock()
	keysToCheck := make([]string, len(requiredKeys))
	copy(keysToCheck, requiredKeys)
	requiredKeysMutex.Unlock()
	for _, key := range keysToCheck {
		if !HasKey(key) {
			missingKeys = append(missingKeys, key)
		}
	}
	if len(missingKeys) > 0 {
		return fmt.Errorf("missing required config keys: %v", missingKeys)
	}

	level := strings.ToUpper(GetString(LogLevelKey))
	switch level {
	case "DEBUG", "INFO", "WARN", "ERROR":
		// valid
	default:
		return fmt.Errorf("invalid log_level '%s', must be one of: DEBUG, INFO, WARN, ERROR", GetString(LogLevelKey))
	}

	format := strings.ToLower(GetString(DefaultOutputFormatKey))
	switch format {
	case "json", "csv", "text":
		// valid
	default:
		return fmt.Errorf("invalid default_output_format '%s', must be one of: json, csv, text", format)
	}
	return nil
}
