package typenv

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Redacted replaces secret values in dumps.
const Redacted = "***redacted***"

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpFormat int

const (
	formatText dumpFormat = iota
	formatJSON
	formatYAML
	formatTOML
)

// dumpConfig holds options for WriteDump.
type dumpConfig struct {
	format      dumpFormat
	withSources bool   // Include value origin in text output
	indent      string // Indentation for JSON output (default: "  ")
}

// WithSources includes the origin of each value in text output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// AsJSON outputs the ledger as a JSON object keyed by variable name.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatJSON
	}
}

// AsYAML outputs the ledger as a YAML mapping keyed by variable name.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatYAML
	}
}

// AsTOML outputs the ledger as TOML, one table per variable.
func AsTOML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatTOML
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// dumpEntry is the serialized form of a ParsedValue.
type dumpEntry struct {
	Type     string `json:"type" yaml:"type" toml:"type"`
	Optional bool   `json:"optional" yaml:"optional" toml:"optional"`
	Origin   string `json:"origin" yaml:"origin" toml:"origin"`
	Value    any    `json:"value" yaml:"value" toml:"value,omitempty"`
}

// WriteDump writes every resolved variable with its value, type and origin.
// Secret values are rendered as Redacted.
// Returns an error if encoding or writing fails.
func (e *Env) WriteDump(w io.Writer, opts ...DumpOption) error {
	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	switch config.format {
	case formatJSON:
		return e.dumpAsJSON(w, config)
	case formatYAML:
		return e.dumpAsYAML(w)
	case formatTOML:
		return e.dumpAsTOML(w)
	default:
		return e.dumpAsText(w, config)
	}
}

// dumpAsText outputs one NAME=value line per variable, sorted by name.
func (e *Env) dumpAsText(w io.Writer, config dumpConfig) error {
	for _, name := range e.ledger.names() {
		v := e.ledger.entries[name]

		line := fmt.Sprintf("%s=%s (%s)", name, formatValue(v), exampleType(v))
		if config.withSources {
			line += fmt.Sprintf(" (source: %s)", v.Origin)
		}
		line += "\n"

		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}

	return nil
}

func (e *Env) dumpAsJSON(w io.Writer, config dumpConfig) error {
	entries := e.dumpEntries(plainValue)

	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(entries, "", config.indent)
	} else {
		data, err = json.Marshal(entries)
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func (e *Env) dumpAsYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e.dumpEntries(plainValue)); err != nil {
		return fmt.Errorf("yaml marshal error: %w", err)
	}
	return enc.Close()
}

// dumpAsTOML renders values as strings: TOML has no null and no mixed arrays.
func (e *Env) dumpAsTOML(w io.Writer) error {
	entries := e.dumpEntries(func(v ParsedValue) any {
		if v.Value == nil && !v.Secret {
			return nil
		}
		return formatValue(v)
	})

	if err := toml.NewEncoder(w).Encode(entries); err != nil {
		return fmt.Errorf("toml marshal error: %w", err)
	}
	return nil
}

func (e *Env) dumpEntries(render func(ParsedValue) any) map[string]dumpEntry {
	entries := make(map[string]dumpEntry, len(e.ledger.entries))
	for name, v := range e.ledger.entries {
		entries[name] = dumpEntry{
			Type:     string(v.Type),
			Optional: v.Optional,
			Origin:   string(v.Origin),
			Value:    render(v),
		}
	}
	return entries
}

// plainValue converts a recorded value to something every encoder understands.
func plainValue(v ParsedValue) any {
	if v.Secret {
		return Redacted
	}

	switch val := v.Value.(type) {
	case float64:
		return plainFloat(val)
	case []float64:
		out := make([]any, len(val))
		for i, f := range val {
			out[i] = plainFloat(f)
		}
		return out
	case []byte:
		return hex.EncodeToString(val)
	case decimal.Decimal:
		return val.String()
	case []decimal.Decimal:
		out := make([]string, len(val))
		for i, d := range val {
			out[i] = d.String()
		}
		return out
	default:
		return val
	}
}

// plainFloat keeps finite floats numeric; NaN and infinities become strings
// since JSON has no literal for them.
func plainFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return f
}

// formatValue formats a recorded value as a single-line string, redacting secrets.
func formatValue(v ParsedValue) string {
	if v.Secret {
		return Redacted
	}

	switch val := v.Value.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", val)
	case []byte:
		return "0x" + hex.EncodeToString(val)
	case decimal.Decimal:
		return val.String()
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", val)
	}
}
