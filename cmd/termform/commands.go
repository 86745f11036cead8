package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/termform/internal/config"
	"github.com/muurk/termform/internal/definition"
	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/logging"
	"github.com/muurk/termform/internal/prompt"
	"github.com/muurk/termform/internal/tui"
	"github.com/muurk/termform/internal/ui"
)

const logFileName = "termform.log"

// Command flags
var (
	themeName   string
	logLevel    string
	logFile     string
	outputPath  string
	prefillPath string
	plainMode   bool
	forceWrite  bool
	initForce   bool
)

func init() {
	// Common flags for all commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Colour theme ("+strings.Join(tui.ThemeNames, ", ")+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	addRunFlags(rootCmd)
	addRunFlags(runCmd)
	addRunFlags(demoCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file (default from the definition)")
	cmd.Flags().StringVar(&prefillPath, "prefill", "", "Prefill the form from a previous JSON output")
	cmd.Flags().BoolVar(&plainMode, "plain", false, "Ask line by line instead of the full-screen interface")
	cmd.Flags().BoolVar(&forceWrite, "force", false, "Replace an existing output file without asking")
}

// session holds the effective settings for one command invocation
type session struct {
	registry *config.Registry
	prefs    config.Preferences
	theme    tui.Theme
	printer  *ui.Printer
}

// newSession loads the user registry and applies command-line overrides.
// A broken config file is reported but does not stop the command.
func newSession(cmd *cobra.Command) (*session, error) {
	printer := ui.NewPrinter(cmd.OutOrStdout())

	registry, err := config.LoadRegistry()
	if err != nil {
		printer.PrintWarning("Ignoring configuration file", []ui.Detail{
			{Key: "Reason", Value: err.Error()},
		})
		registry = config.NewRegistry()
	}

	prefs := *registry.Preferences
	if cmd.Flags().Changed("theme") {
		prefs.Theme = themeName
	}
	if cmd.Flags().Changed("log-level") {
		prefs.LogLevel = logLevel
	}

	theme, ok := tui.ThemeByName(prefs.Theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", prefs.Theme, strings.Join(tui.ThemeNames, ", "))
	}

	return &session{
		registry: registry,
		prefs:    prefs,
		theme:    theme,
		printer:  printer,
	}, nil
}

// initLogging starts the logger. Full-screen runs cannot share the terminal
// with log output, so they log to a file in the config directory unless
// --log-file is given.
func (s *session) initLogging(fullScreen bool) error {
	output := logFile
	if output == "" && fullScreen {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = filepath.Join(dir, logFileName)
	}
	return logging.InitializeWithOutput(s.prefs.LogLevel, output)
}

var runCmd = &cobra.Command{
	Use:   "run <definition.yaml>",
	Short: "Fill in the form described by a definition file",
	Long: `Load a form definition, let the user fill it in and write the
submitted values to a JSON file.

The output path is taken from --output, then the definition's output key,
then the form title. Relative paths from the definition are resolved
against the configured output_dir.`,
	Example: `  # Fill in a form
  termform run ticket.yaml

  # Write somewhere else and start from last time's answers
  termform run ticket.yaml -o ticket-2.json --prefill ticket.json

  # Prompt line by line (no full-screen interface)
  termform run ticket.yaml --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	def, err := definition.Load(args[0])
	if err != nil {
		sess.printer.PrintError("Cannot load form", err, []string{
			"Check the definition: termform check " + args[0],
		})
		return fmt.Errorf("failed to load definition: %w", err)
	}

	key := args[0]
	if abs, err := filepath.Abs(args[0]); err == nil {
		key = abs
	}
	return sess.fill(cmd, def, key)
}

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Fill in a built-in example form",
	Long: `Run one of the forms bundled with termform.

Without a name the shipping form is used.`,
	Example: `  termform demo
  termform demo contact --plain`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: definition.BuiltinNames(),
	RunE:      runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	name := "shipping"
	if len(args) == 1 {
		name = args[0]
	}

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	def, err := definition.Builtin(name)
	if err != nil {
		sess.printer.PrintError("Unknown demo form", err, []string{
			"Available forms: " + strings.Join(definition.BuiltinNames(), ", "),
		})
		return fmt.Errorf("unknown demo form %q", name)
	}
	return sess.fill(cmd, def, "builtin:"+name)
}

// fill runs the form, then writes and records the result
func (s *session) fill(cmd *cobra.Command, def *definition.Definition, key string) error {
	f, err := def.Build()
	if err != nil {
		s.printer.PrintError("Invalid form definition", err, nil)
		return fmt.Errorf("failed to build form: %w", err)
	}

	if prefillPath != "" {
		values, err := form.ReadJSON(prefillPath)
		if err != nil {
			return fmt.Errorf("failed to read prefill file: %w", err)
		}
		if err := f.SetValues(values); err != nil {
			return fmt.Errorf("failed to prefill form: %w", err)
		}
	}

	output := s.outputPath(def)
	fullScreen := !plainMode && ui.IsInteractive()
	if err := s.initLogging(fullScreen); err != nil {
		return err
	}
	logging.Info("Running form",
		zap.String("form", key),
		zap.Int("fields", f.Len()),
		zap.Bool("full_screen", fullScreen))

	ctx := cmd.Context()
	if fullScreen {
		err = tui.Run(ctx, f, tui.Options{Theme: s.theme})
	} else {
		err = prompt.Run(ctx, f, prompt.NewSurveyDriver())
	}
	if err != nil {
		return err
	}

	if f.Result() != form.StatusSubmitted {
		s.registry.RecordCancellation(key, f.Title())
		s.saveRegistry()
		s.printer.PrintWarning("Form cancelled", []ui.Detail{
			{Key: "Form", Value: formName(f)},
			{Key: "Output", Value: "not written"},
		})
		return nil
	}

	if _, err := os.Stat(output); err == nil && !forceWrite && s.prefs.ConfirmOverwrite {
		if !ui.ConfirmOverwrite(cmd.InOrStdin(), cmd.OutOrStdout(), output) {
			s.printer.PrintWarning("Output not written", []ui.Detail{
				{Key: "Form", Value: formName(f)},
				{Key: "Existing file", Value: output},
			})
			return nil
		}
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := f.WriteJSON(output); err != nil {
		s.printer.PrintError("Failed to save form", err, []string{
			"Choose another location with --output",
		})
		return err
	}

	s.registry.RecordSubmission(key, f.Title(), output)
	s.saveRegistry()

	s.printer.PrintSuccess("Form submitted", []ui.Detail{
		{Key: "Form", Value: formName(f)},
		{Key: "Fields", Value: strconv.Itoa(f.Len())},
		{Key: "Output", Value: output},
	})
	return nil
}

func (s *session) saveRegistry() {
	if err := s.registry.Save(); err != nil {
		logging.Warn("Failed to save configuration", zap.Error(err))
	}
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// outputPath picks the output file for def
func (s *session) outputPath(def *definition.Definition) string {
	if outputPath != "" {
		return outputPath
	}

	out := def.Output
	if out == "" {
		base := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(def.Title), "_"), "_")
		if base == "" {
			base = "form"
		}
		out = base + ".json"
	}
	if s.prefs.OutputDir != "" && !filepath.IsAbs(out) {
		out = filepath.Join(s.prefs.OutputDir, out)
	}
	return out
}

func formName(f *form.Form) string {
	if f.Title() == "" {
		return "(untitled)"
	}
	return f.Title()
}

var checkCmd = &cobra.Command{
	Use:   "check <definition.yaml>",
	Short: "Validate a definition and list its fields",
	Long: `Build the form described by a definition file without running it.

Blocks are expanded, so the listed ids are exactly the keys of the
JSON output.`,
	Example: `  termform check ticket.yaml`,
	Args:    cobra.ExactArgs(1),
	RunE:    runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := sess.initLogging(false); err != nil {
		return err
	}

	def, f, err := buildDefinition(args[0])
	if err != nil {
		sess.printer.PrintError("Definition is invalid", err, []string{
			"Field ids must be unique, including the ids blocks expand to",
			"Blocks need a non-empty group",
		})
		return fmt.Errorf("check failed: %w", err)
	}
	view := f.View()

	sess.printer.PrintHeader(formName(f), "check", []ui.Detail{
		{Key: "Definition", Value: args[0]},
		{Key: "Output", Value: sess.outputPath(def)},
	})

	rows := make([]ui.Detail, 0, len(view.Fields))
	for _, fv := range view.Fields {
		desc := fmt.Sprintf("%-8s %s", fv.Kind, fv.Label)
		if fv.Required {
			desc += " *"
		}
		if fv.Section != "" {
			desc += "  [" + fv.Section + "]"
		}
		rows = append(rows, ui.Detail{Key: fv.ID, Value: desc})
	}
	sess.printer.PrintTable("Field", "Kind / Label", rows)
	sess.printer.Newline()
	sess.printer.PrintSuccess("Definition is valid", []ui.Detail{
		{Key: "Fields", Value: strconv.Itoa(len(view.Fields))},
	})
	return nil
}

func buildDefinition(path string) (*definition.Definition, *form.Form, error) {
	def, err := definition.Load(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := def.Build()
	if err != nil {
		return nil, nil, err
	}
	return def, f, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the user configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print preferences and form history",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default preferences",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Replace an existing configuration file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	sess.printer.PrintHeader("termform configuration", "config show", []ui.Detail{
		{Key: "File", Value: path},
	})

	p := sess.prefs
	sess.printer.PrintTable("Preference", "Value", []ui.Detail{
		{Key: "theme", Value: p.Theme},
		{Key: "log_level", Value: orDash(p.LogLevel)},
		{Key: "output_dir", Value: orDash(p.OutputDir)},
		{Key: "confirm_overwrite", Value: strconv.FormatBool(p.ConfirmOverwrite)},
	})

	if len(sess.registry.Forms) == 0 {
		return nil
	}

	keys := make([]string, 0, len(sess.registry.Forms))
	for k := range sess.registry.Forms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]ui.Detail, 0, len(keys))
	for _, k := range keys {
		rec := sess.registry.Forms[k]
		desc := fmt.Sprintf("%s: %d submitted", orDash(rec.Title), rec.Submissions)
		if rec.Cancellations > 0 {
			desc += fmt.Sprintf(", %d cancelled", rec.Cancellations)
		}
		if !rec.LastSubmitted.IsZero() {
			desc += fmt.Sprintf(", last %s to %s", rec.LastSubmitted.Format("2006-01-02 15:04"), rec.LastOutput)
		}
		rows = append(rows, ui.Detail{Key: k, Value: desc})
	}
	sess.printer.Newline()
	sess.printer.PrintTable("Form", "History", rows)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	printer := ui.NewPrinter(cmd.OutOrStdout())

	path, err := config.CreateDefaultConfig(initForce)
	if errors.Is(err, config.ErrConfigExists) {
		printer.PrintWarning("Configuration already exists", []ui.Detail{
			{Key: "File", Value: path},
			{Key: "Hint", Value: "use --force to replace it"},
		})
		return nil
	}
	if err != nil {
		printer.PrintError("Failed to write configuration", err, nil)
		return err
	}

	printer.PrintSuccess("Configuration written", []ui.Detail{
		{Key: "File", Value: path},
	})
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
