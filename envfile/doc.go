// Package envfile loads dotenv-formatted files into the process environment.
//
// If the given path names an existing file it is loaded directly. Otherwise the
// path is searched for in the working directory and then in each ancestor
// directory, and the first match is loaded.
//
// Example:
//
//	found, err := envfile.Read(".env", envfile.Options{})
package envfile
