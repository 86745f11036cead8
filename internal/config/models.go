package config

import (
	"fmt"
	"strings"
	"time"
)

// Registry represents the entire user configuration file.
// It stores application preferences and per-form submission history.
type Registry struct {
	Version     int                    `yaml:"version"`
	Preferences *Preferences           `yaml:"preferences,omitempty"`
	Forms       map[string]*FormRecord `yaml:"forms,omitempty"` // Keyed by definition path or "builtin:<name>"
}

// Preferences represents application-wide user preferences.
// Command-line flags take precedence over every value here.
type Preferences struct {
	Theme            string `yaml:"theme"`                // "dark" or "light"
	LogLevel         string `yaml:"log_level,omitempty"`  // debug, info, warn, error; empty is silent
	OutputDir        string `yaml:"output_dir,omitempty"` // Directory for relative output paths
	ConfirmOverwrite bool   `yaml:"confirm_overwrite"`    // Ask before replacing an existing output file
}

// FormRecord tracks what happened the last time a form was filled in.
type FormRecord struct {
	Title         string    `yaml:"title,omitempty"`
	LastOutput    string    `yaml:"last_output,omitempty"`
	LastSubmitted time.Time `yaml:"last_submitted,omitempty"`
	Submissions   int       `yaml:"submissions"`
	Cancellations int       `yaml:"cancellations,omitempty"`
}

// LogLevels lists the accepted values for Preferences.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// DefaultPreferences returns the preferences used when none are configured.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Theme:            "dark",
		ConfirmOverwrite: true,
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Preferences: DefaultPreferences(),
		Forms:       make(map[string]*FormRecord),
	}
}

// Validate checks preference values that cannot be fixed up silently.
func (p *Preferences) Validate() error {
	if p.LogLevel == "" {
		return nil
	}
	for _, l := range LogLevels {
		if strings.EqualFold(p.LogLevel, l) {
			return nil
		}
	}
	return fmt.Errorf("invalid log_level %q (expected one of %s)", p.LogLevel, strings.Join(LogLevels, ", "))
}

// GetForm retrieves the record for a form key.
// Returns nil if the form has never been run.
func (r *Registry) GetForm(key string) *FormRecord {
	return r.Forms[key]
}

// EnsureForm ensures a record exists for the form key and returns it.
func (r *Registry) EnsureForm(key string) *FormRecord {
	if r.Forms == nil {
		r.Forms = make(map[string]*FormRecord)
	}

	if rec, exists := r.Forms[key]; exists {
		return rec
	}

	rec := &FormRecord{}
	r.Forms[key] = rec
	return rec
}

// RecordSubmission notes a successful submission written to output.
func (r *Registry) RecordSubmission(key, title, output string) {
	rec := r.EnsureForm(key)
	rec.Title = title
	rec.LastOutput = output
	rec.LastSubmitted = time.Now()
	rec.Submissions++
}

// RecordCancellation notes that the user abandoned the form.
func (r *Registry) RecordCancellation(key, title string) {
	rec := r.EnsureForm(key)
	rec.Title = title
	rec.Cancellations++
}
