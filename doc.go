// Package typenv reads typed values from environment variables with validation and a record of what was read.
//
// Quick Start:
//
//	env := typenv.New(typenv.Options{})
//
//	port, err := env.Int("PORT", typenv.WithDefault(8080), typenv.WithValidators(typenv.Min(1024)))
//	debug, err := env.Bool("DEBUG", typenv.WithDefault(false))
//	hosts, err := env.List("ALLOWED_HOSTS")
//	ratio, err := typenv.List(env, "RATIOS", typenv.KindFloat)
//
//	fmt.Print(env.Example()) // ALLOWED_HOSTS=list\nDEBUG=Optional[bool]\n...
//
// Cast types: str, bytes (hex), int, bool (true/false/1/0), float, decimal, json, list.
// Defaults: none (mandatory), WithNullDefault (optional, resolves to nothing), WithDefault(v).
//
// See example_test.go for detailed usage.
package typenv
