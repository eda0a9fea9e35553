package typenv

import "github.com/Azhovan/typenv/envfile"

// ReadEnv loads a dotenv file into the process environment before any lookup.
// If path names an existing file it is loaded; otherwise the working directory
// and its ancestors are searched for path. It reports whether a file was loaded.
// With override false, variables already in the environment keep their values.
func ReadEnv(path string, override bool) (bool, error) {
	return envfile.Read(path, envfile.Options{Override: override})
}

// ReadEnv is ReadEnv using e's logger.
func (e *Env) ReadEnv(path string, override bool) (bool, error) {
	return envfile.Read(path, envfile.Options{Override: override, Logger: e.log})
}
