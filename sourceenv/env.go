package sourceenv

import (
	"os"
	"strings"
)

// Options configures Snapshot.
type Options struct {
	// Prefix filters vars starting with prefix. The prefix is kept in the key.
	// Empty = capture all vars.
	// Prefix matching behavior is controlled by CaseSensitive.
	Prefix string

	// CaseSensitive controls prefix matching and key lookups (default: false).
	// When false, prefix matching is case-insensitive (APP_ matches app_, App_, etc.)
	// and captured keys are stored upper-cased, so lookups ignore case.
	// When true, prefix and keys must match exactly.
	CaseSensitive bool
}

// ProcessSource looks names up in the live process environment.
type ProcessSource struct{}

// Process returns a source backed by os.LookupEnv.
func Process() ProcessSource {
	return ProcessSource{}
}

// Lookup returns the value of the environment variable name.
func (ProcessSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapSource serves values from a fixed map.
type MapSource struct {
	values        map[string]string
	caseSensitive bool
}

// Map returns a case-sensitive source over a copy of values.
func Map(values map[string]string) *MapSource {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &MapSource{values: copied, caseSensitive: true}
}

// Lookup returns the value stored for name.
func (m *MapSource) Lookup(name string) (string, bool) {
	if !m.caseSensitive {
		name = strings.ToUpper(name)
	}
	v, ok := m.values[name]
	return v, ok
}

// Len returns the number of captured variables.
func (m *MapSource) Len() int {
	return len(m.values)
}

// Snapshot scans the process environment once, filters by prefix, and returns
// a source that no longer observes later changes to the environment.
func Snapshot(opts Options) *MapSource {
	result := make(map[string]string)

	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		value := parts[1]

		if key == "" {
			continue
		}

		if opts.Prefix != "" {
			var hasPrefix bool
			if opts.CaseSensitive {
				hasPrefix = strings.HasPrefix(key, opts.Prefix)
			} else {
				hasPrefix = strings.HasPrefix(strings.ToUpper(key), strings.ToUpper(opts.Prefix))
			}

			if !hasPrefix {
				continue
			}
		}

		if !opts.CaseSensitive {
			key = strings.ToUpper(key)
		}
		result[key] = value
	}

	return &MapSource{values: result, caseSensitive: opts.CaseSensitive}
}
