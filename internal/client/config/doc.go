// Package config resolves runtime settings for the jobtrack CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, a JSON config file (-c/-config), environment
// variables (with .env support), and command-line flags. Resolution never
// fails outright: an unset or unreadable source simply falls through to
// the next one.
package config
