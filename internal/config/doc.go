// Package config loads the rowbind configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/rowbind/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, use defaults for them
//
// # Fields
//
//	catalog             = "~/.config/rowbind/catalog.toml"  # path or http(s) URL
//	choice_mode         = "multiple-modal"  # none|single|multiple|single-modal|multiple-modal
//	finish_on_clear     = true   # close the selection session when nothing is checked
//	start_on_single_tap = false  # let a plain click open the session
//	detect_moves        = true   # report reorders as moves when diffing reloads
//	poll_seconds        = 2
//	log_verbosity       = 0      # glog -v level, 0-4
//
// # Validation
//
// Unlike missing values, wrong values are errors: an unknown choice_mode
// (wrapping choice.ErrUnknownMode), a non-positive poll_seconds, or a
// log_verbosity outside 0-4 make Load fail, so a typo surfaces at startup.
//
// # Path Expansion
//
// A leading ~ in the config path and in a file catalog is expanded to the
// user's home directory and the result made absolute. Catalog URLs are left
// untouched.
package config
