// Package config defines the application configuration and its TOML
// serialization.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sonoshi/mado/dpi"
	"github.com/sonoshi/mado/util"
	"github.com/sonoshi/mado/util/log"
)

const (
	// ConfigFile is the default configuration file name.
	ConfigFile = "mado.conf"

	LogFileStdOut  = "stdout"   // log to stdout
	LogFileStdErr  = "stderr"   // log to stderr
	DefaultLogFile = "mado.log" // default log file

	LogLevelInfo    = "info"  // information level only.
	LogLevelDebug   = "debug" // all levels, debug and info.
	DefaultLogLevel = LogLevelInfo

	DefaultLogLimitMegaByte = 10

	DefaultFont     = ""   // font file. empty means use the host's builtin font.
	DefaultFontSize = 12.0 // font size in pt
)

// Config configures the application. Build it with New rather than a
// struct literal so defaults are populated.
type Config struct {
	LogFile          string `toml:"logfile"`
	LogLevel         string `toml:"loglevel"`
	LogLimitMegaByte int64  `toml:"loglimit_megabytes"`

	Font     string  `toml:"font"`     // path of the font file.
	FontSize float64 `toml:"fontsize"` // font size in pt.

	// DPIOverride pins the logical DPI instead of resolving it from the
	// windowing system. 0 means resolve normally. The value applies to
	// both axes.
	DPIOverride float64 `toml:"dpi_override"`

	// AdjustLineHeightPx adds pixels to the computed cell height.
	AdjustLineHeightPx int `toml:"adjust_line_height_px"`
	// AdjustLineHeight scales the computed cell height. It wins over
	// AdjustLineHeightPx when both are set. 0 means no scaling.
	AdjustLineHeight float64 `toml:"adjust_line_height"`

	// RefreshPxCacheOnOverride drops memoized point-to-pixel conversions
	// whenever the DPI override changes. Off by default: previously
	// computed pixel sizes keep being served, matching long-standing
	// behavior.
	RefreshPxCacheOnOverride bool `toml:"refresh_px_cache_on_override"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogFile:          DefaultLogFile,
		LogLevel:         DefaultLogLevel,
		LogLimitMegaByte: DefaultLogLimitMegaByte,
		Font:             DefaultFont,
		FontSize:         DefaultFontSize,
	}
}

// LineHeight returns the cell-height adjustment the config asks for, nil
// when none.
func (c *Config) LineHeight() dpi.Adjustment {
	if c.AdjustLineHeight != 0 {
		return dpi.Relative(c.AdjustLineHeight)
	}
	if c.AdjustLineHeightPx != 0 {
		return dpi.Absolute(c.AdjustLineHeightPx)
	}
	return nil
}

// Override returns the configured logical DPI override, nil when unset.
func (c *Config) Override() *dpi.Pair {
	if c.DPIOverride <= 0 {
		return nil
	}
	p := dpi.Uniform(c.DPIOverride)
	return &p
}

// ErrDefaultConfigGenerated reports the config file was absent, so the
// default config was written there and returned.
var ErrDefaultConfigGenerated = errors.New("config: default config generated")

// LoadOrDefault loads file when it exists. Otherwise the default config is
// written to file and returned together with ErrDefaultConfigGenerated.
func LoadOrDefault(file string) (*Config, error) {
	if !util.FileExists(file) {
		c := New()
		if err := EncodeFile(file, c); err != nil {
			return nil, err
		}
		return c, ErrDefaultConfigGenerated
	}

	c := New() // defaults remain for keys missing from the file.
	if err := DecodeFile(file, c); err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeFile writes data as TOML to file.
func EncodeFile(file string, data interface{}) error {
	fp, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer fp.Close()
	return toml.NewEncoder(fp).Encode(data)
}

// DecodeFile reads TOML from file into data. Unknown keys are logged and
// otherwise ignored.
func DecodeFile(file string, data interface{}) error {
	meta, err := toml.DecodeFile(file, data)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Infoln("config: undecoded keys exist,", undecoded)
	}
	return nil
}

// SetupLog applies the log configuration and returns a finalizer closing
// the log destination. On error the finalizer is nil and need not run.
func SetupLog(c *Config) (func(), error) {
	switch level := c.LogLevel; level {
	case LogLevelInfo:
		log.SetLevel(log.InfoLevel)
	case LogLevelDebug:
		log.SetLevel(log.DebugLevel)
	default:
		log.Infof("config: unknown log level (%s), using info instead", level)
		log.SetLevel(log.InfoLevel)
	}

	var (
		writer    io.Writer
		closeFunc func()
	)
	switch logfile := c.LogFile; logfile {
	case LogFileStdOut, "":
		writer = os.Stdout
		closeFunc = func() {}
	case LogFileStdErr:
		writer = os.Stderr
		closeFunc = func() {}
	default:
		fp, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("config: open log file: %w", err)
		}
		writer = fp
		closeFunc = func() { fp.Close() }
	}
	limit := c.LogLimitMegaByte * 1000 * 1000
	if limit < 0 {
		limit = 0
	}
	log.SetOutput(log.LimitWriter(writer, limit))
	return closeFunc, nil
}
