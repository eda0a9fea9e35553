package typenv

import (
	"sort"
	"strings"
)

// Origin describes where a recorded value came from.
type Origin string

const (
	OriginEnv     Origin = "env"     // Read from the source and cast
	OriginDefault Origin = "default" // Caller-supplied default
	OriginNull    Origin = "null"    // Missing with a null default
)

// ParsedValue is the ledger record of one resolved variable.
type ParsedValue struct {
	Value    any    // Final typed value, nil for a null default
	Type     Tag    // Cast-type tag used
	Optional bool   // Whether a default (null or concrete) was supplied
	Origin   Origin // Where Value came from
	Secret   bool   // Whether dumps must redact Value
}

// ledger records resolved variables keyed by fully-qualified name.
type ledger struct {
	entries map[string]ParsedValue
}

func newLedger() *ledger {
	return &ledger{entries: make(map[string]ParsedValue)}
}

// record upserts the entry for name.
func (l *ledger) record(name string, v ParsedValue) {
	l.entries[name] = v
}

func (l *ledger) snapshot() map[string]ParsedValue {
	out := make(map[string]ParsedValue, len(l.entries))
	for k, v := range l.entries {
		out[k] = v
	}
	return out
}

func (l *ledger) names() []string {
	names := make([]string, 0, len(l.entries))
	for k := range l.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Dump returns a copy of every variable resolved so far, keyed by fully-qualified name.
// Mutating the returned map does not affect the Env.
func (e *Env) Dump() map[string]ParsedValue {
	return e.ledger.snapshot()
}

// Example renders the ledger as an example env file: one NAME=TYPE line per
// variable, sorted by name, with optional variables written as NAME=Optional[TYPE].
func (e *Env) Example() string {
	var b strings.Builder
	for _, name := range e.ledger.names() {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(exampleType(e.ledger.entries[name]))
		b.WriteByte('\n')
	}
	return b.String()
}

// GetExample is an alias for Example.
func (e *Env) GetExample() string {
	return e.Example()
}

func exampleType(v ParsedValue) string {
	if v.Optional {
		return "Optional[" + string(v.Type) + "]"
	}
	return string(v.Type)
}
