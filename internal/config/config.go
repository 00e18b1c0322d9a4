package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/alnah/go-jot/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrNoConfigDir      = errors.New("config directory could not be resolved")
	ErrInvalidJumpStyle = errors.New("invalid jump_style")
	ErrEmptyEditor      = errors.New("editor cannot be empty")
)

// Defaults and well-known locations.
const (
	FileName       = "conf.toml"
	AppDir         = "jot"
	StylesheetName = "jot.css"
	DefaultRoot    = "~/notes"
	DefaultSubdir  = "atoms"
	FallbackEditor = "vim"
)

// Jump styles for positioning the editor cursor on open.
const (
	JumpEnd  = "end"  // fixed "+" argument
	JumpLine = "line" // computed "+N" argument, N = line count
)

// Config is the resolved configuration. Paths are absolute.
type Config struct {
	Editor    string    // editor command, may contain arguments
	Jump      bool      // pass a jump argument to the editor
	JumpStyle string    // JumpEnd or JumpLine
	Root      string    // notes root directory
	Subdir    string    // directory inside Root for new notes
	CSS       string    // stylesheet inlined into HTML output ("" = none)
	PDF       PDFConfig // PDF page settings
	Path      string    // config file used ("" = built-in defaults)
}

// PDFConfig defines PDF page settings. Zero values mean defaults.
type PDFConfig struct {
	PageSize    string  `toml:"page_size"`   // "letter", "a4", "legal"
	Orientation string  `toml:"orientation"` // "portrait", "landscape"
	Margin      float64 `toml:"margin"`      // inches
}

// fileConfig mirrors conf.toml. Pointers distinguish absent keys from zero values.
type fileConfig struct {
	Editor    *string   `toml:"editor"`
	Jump      *bool     `toml:"jump"`
	JumpStyle string    `toml:"jump_style"`
	Root      *string   `toml:"root"`
	Subdir    *string   `toml:"subdir"`
	CSS       *string   `toml:"css"`
	PDF       PDFConfig `toml:"pdf"`
}

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// BaseDir returns the directory new notes are stored under.
func (c *Config) BaseDir() string {
	return filepath.Join(c.Root, c.Subdir)
}

// Validate checks values that cannot be checked while decoding.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Editor) == "" {
		return ErrEmptyEditor
	}
	switch c.JumpStyle {
	case JumpEnd, JumpLine:
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidJumpStyle, c.JumpStyle, JumpEnd, JumpLine)
	}
	return nil
}

// DefaultPath returns the default config file location,
// <user config dir>/jot/conf.toml.
func DefaultPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(dir, AppDir, FileName), nil
}

// Default returns the built-in configuration used when no config file exists.
// Jumping is on and no stylesheet is configured.
func Default() (*Config, error) {
	root, err := resolvePath(DefaultRoot)
	if err != nil {
		return nil, err
	}
	return &Config{
		Editor:    fallbackEditor(),
		Jump:      true,
		JumpStyle: JumpEnd,
		Root:      root,
		Subdir:    DefaultSubdir,
	}, nil
}

// LoadDefault loads the config file at DefaultPath, falling back to Default
// when it does not exist. Any other error is returned.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := Load(path)
	if errors.Is(err, ErrConfigNotFound) {
		return Default()
	}
	return cfg, err
}

// Load reads and validates the TOML config file at path.
// Unknown keys and mistyped values are rejected with ErrConfigParse.
func Load(path string) (*Config, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, describeDecodeError(err))
	}

	cfg, err := fc.resolve(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve applies defaults for absent keys. A file that omits "jump"
// disables jumping, unlike the built-in defaults.
func (fc *fileConfig) resolve(path string) (*Config, error) {
	cfg := &Config{
		Editor:    fallbackEditor(),
		JumpStyle: JumpEnd,
		Subdir:    DefaultSubdir,
		PDF:       fc.PDF,
		Path:      path,
	}
	if fc.Editor != nil {
		cfg.Editor = *fc.Editor
	}
	if fc.Jump != nil {
		cfg.Jump = *fc.Jump
	}
	if fc.JumpStyle != "" {
		cfg.JumpStyle = fc.JumpStyle
	}
	if fc.Subdir != nil {
		cfg.Subdir = *fc.Subdir
	}

	root := DefaultRoot
	if fc.Root != nil {
		root = *fc.Root
	}
	var err error
	if cfg.Root, err = resolvePath(root); err != nil {
		return nil, err
	}

	if fc.CSS != nil && *fc.CSS != "" {
		if cfg.CSS, err = resolvePath(*fc.CSS); err != nil {
			return nil, err
		}
	} else {
		cfg.CSS = discoverStylesheet(cfg.Root, filepath.Dir(path))
	}
	return cfg, nil
}

// discoverStylesheet looks for jot.css in the notes root first, then next to
// the config file. Returns "" when neither exists.
func discoverStylesheet(root, configDir string) string {
	for _, dir := range []string{root, configDir} {
		candidate := filepath.Join(dir, StylesheetName)
		if fileutil.FileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// fallbackEditor returns $EDITOR, or vim when unset.
func fallbackEditor() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return FallbackEditor
}

// resolvePath expands "~" and makes path absolute.
func resolvePath(path string) (string, error) {
	expanded, err := fileutil.ExpandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", path, err)
	}
	return abs, nil
}

// describeDecodeError adds the TOML position to decode errors when available.
func describeDecodeError(err error) string {
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return fmt.Sprintf("line %d, column %d: %s", row, col, derr.Error())
	}
	var serr *toml.StrictMissingError
	if errors.As(err, &serr) {
		return strings.TrimSpace(serr.String())
	}
	return err.Error()
}
