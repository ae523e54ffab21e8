// Package cli provides command-line interface setup and configuration
// for the naivetrans application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and the
// diagnostics logger.
package cli
