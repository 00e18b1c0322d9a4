package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-jot/internal/config"
	"github.com/alnah/go-jot/internal/fileutil"
)

// envConfig holds configuration from JOT_* environment variables.
// Set values override the config file; --config and --subdir override them.
type envConfig struct {
	ConfigPath string // JOT_CONFIG: config file path
	Root       string // JOT_ROOT: notes root directory
	Subdir     string // JOT_SUBDIR: subdirectory for new notes
	Editor     string // JOT_EDITOR: editor command
	CSS        string // JOT_CSS: stylesheet path
}

// knownEnvVars lists valid JOT_* environment variables.
var knownEnvVars = map[string]bool{
	"JOT_CONFIG":    true,
	"JOT_ROOT":      true,
	"JOT_SUBDIR":    true,
	"JOT_EDITOR":    true,
	"JOT_CSS":       true,
	"JOT_CONTAINER": true, // read by doctor
}

func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("JOT_CONFIG"),
		Root:       os.Getenv("JOT_ROOT"),
		Subdir:     os.Getenv("JOT_SUBDIR"),
		Editor:     os.Getenv("JOT_EDITOR"),
		CSS:        os.Getenv("JOT_CSS"),
	}
}

// warnUnknownEnvVars warns about unrecognized JOT_* variables,
// such as JOT_EDITR for JOT_EDITOR.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "JOT_") && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config values with the set environment variables.
// Paths get the same "~" expansion as the config file.
func applyEnvConfig(env *envConfig, cfg *config.Config) error {
	if env.Editor != "" {
		cfg.Editor = env.Editor
	}
	if env.Subdir != "" {
		cfg.Subdir = env.Subdir
	}
	if env.Root != "" {
		root, err := absPath(env.Root)
		if err != nil {
			return err
		}
		cfg.Root = root
	}
	if env.CSS != "" {
		css, err := absPath(env.CSS)
		if err != nil {
			return err
		}
		cfg.CSS = css
	}
	return nil
}

// loadConfig resolves the configuration for a command. An explicit path
// (--config, then JOT_CONFIG) must exist; the default location may not.
func loadConfig(flagPath string) (*config.Config, error) {
	env := loadEnvConfig()

	path := flagPath
	if path == "" {
		path = env.ConfigPath
	}

	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	if err := applyEnvConfig(env, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func absPath(path string) (string, error) {
	expanded, err := fileutil.ExpandHome(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}
