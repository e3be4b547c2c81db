// Package config loads postboard's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/postboard/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/postboard/config.toml
//   - base_url: https://jsonplaceholder.typicode.com
//   - log_file: ~/.local/state/postboard/postboard.log
//   - log_level: info
//
// # TOML Format
//
//	base_url = "http://localhost:8080"
//	log_file = "~/.local/state/postboard/postboard.log"
//	log_level = "debug"
//
// All fields are optional. Values are trimmed, log_level is lowercased and
// log_file gets tilde expansion. A base_url without a scheme, such as
// "example.org", is read as https.
//
// # Validation
//
// After merging defaults, the struct is checked with
// github.com/go-playground/validator/v10: base_url must be an absolute URL
// and log_level one of debug, info, warn or error. The command line
// -base-url flag goes through the same check via WithBaseURL.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and validation failures. A missing
// file is not an error.
package config
