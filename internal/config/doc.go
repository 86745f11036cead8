// Package config provides user configuration management for termform.
//
// This package manages a YAML-based configuration file that stores application
// preferences (theme, log level, overwrite confirmation) and a short history of
// every form that has been filled in. The configuration follows OS-specific
// conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/termform/config.yaml or $HOME/.config/termform/config.yaml
//   - macOS: $HOME/.config/termform/config.yaml
//   - Windows: %LOCALAPPDATA%\termform\config.yaml
//
// TERMFORM_CONFIG_DIR overrides the directory on every platform.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//
//	registry.RecordSubmission("forms/ticket.yaml", "Support Ticket", "ticket.json")
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
