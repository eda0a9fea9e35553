// Package sourceenv provides the value sources typenv reads raw strings from.
//
// Process reads the live process environment. Snapshot freezes a copy of it,
// optionally filtered by prefix. Map serves a fixed set of values, which is
// handy in tests.
//
// Example:
//
//	env := typenv.New(typenv.Options{
//	    Source: sourceenv.Snapshot(sourceenv.Options{Prefix: "APP_"}),
//	})
package sourceenv
