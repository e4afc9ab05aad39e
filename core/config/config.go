package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	EventLogName      = "events.log"
	DirName           = ".psh"
)

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs afero.Fs

	Prompt       string `json:"prompt" validate:"required"`
	TimeFormat   string `json:"time_format" validate:"required"`
	Color        string `json:"color" validate:"oneof=always auto never"`
	ClearOnStart bool   `json:"clear_on_start"`
	Farewell     string `json:"farewell"`
	HistoryFile  string `json:"history_file"`
	CdDefault    string `json:"cd_default" validate:"required"`

	WaitBeforeBuiltin bool `json:"wait_before_builtin"`
	EventLog          bool `json:"event_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewMemMapFs()
	}
	return c.configFs
}

// Dir returns the directory the configuration was loaded from, or an empty
// string for the built-in defaults.
func (c *Configuration) Dir() string {
	if bp, ok := c.configFs.(*afero.BasePathFs); ok {
		if dir, err := bp.RealPath("/"); err == nil {
			return dir
		}
	}
	return ""
}

// HistoryPath returns the absolute path of the readline history file or an
// empty string if history is disabled.
func (c *Configuration) HistoryPath() string {
	dir := c.Dir()
	if c.HistoryFile == "" || dir == "" {
		return ""
	}
	if filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	return filepath.Join(dir, c.HistoryFile)
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	return c.fs().OpenFile(EventLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.fs().OpenFile(EventLogName, os.O_RDONLY, 0600)
}

// Default returns the built-in configuration, it isn't backed by a directory
// so the history and event log are kept in memory.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// DefaultDir returns the configuration directory under the user's home.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DirName
	}
	return filepath.Join(home, DirName)
}
