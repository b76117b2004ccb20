// Package cli provides command-line interface setup and configuration
// for the jsontrans application. It handles flag parsing, command
// creation, and configuration management using cobra and viper, and
// turns the result into an explicit pipeline configuration.
package cli
