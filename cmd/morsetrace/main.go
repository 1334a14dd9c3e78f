// Package main provides the CLI entrypoint for morsetrace.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/morsetrace/internal/config"
	"github.com/verte-zerg/morsetrace/internal/diagram"
	"github.com/verte-zerg/morsetrace/internal/logging"
	"github.com/verte-zerg/morsetrace/internal/model"
	"github.com/verte-zerg/morsetrace/internal/morse"
	"github.com/verte-zerg/morsetrace/internal/stats"
	"github.com/verte-zerg/morsetrace/internal/tui"
)

const (
	defaultIntervalMs    = 300
	defaultDiagramFormat = "dot"
	defaultLogLevel      = "info"
	defaultReportWidth   = 80
)

var (
	logLevel string

	viewerIntervalMs int
	viewerAutoplay   bool

	decodeTrace  bool
	decodeReport bool

	diagramFormat string
	diagramPath   string
	diagramOut    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "morsetrace [code]",
		Short:         "Step through a Morse code decoding automaton",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runViewerCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().IntVar(&viewerIntervalMs, "interval", defaultIntervalMs, "autoplay step interval in milliseconds")
	rootCmd.Flags().BoolVar(&viewerAutoplay, "autoplay", false, "start stepping automatically")

	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newDiagramCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadConfig reads the config file and applies values for flags the user did not set.
func loadConfig(cmd *cobra.Command) (config.FileConfig, *slog.Logger, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.LogLevel)
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return config.FileConfig{}, nil, fmt.Errorf("--log-level: %w", err)
	}
	return fileCfg, logging.New(level), nil
}

func runViewerCmd(cmd *cobra.Command, args []string) error {
	fileCfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "interval", &viewerIntervalMs, fileCfg.Viewer.IntervalMs)
	applyBoolConfig(cmd, "autoplay", &viewerAutoplay, fileCfg.Viewer.Autoplay)

	cfg := model.ViewerConfig{
		Interval: time.Duration(viewerIntervalMs) * time.Millisecond,
		Autoplay: viewerAutoplay,
	}
	if err := validateViewerConfig(cfg); err != nil {
		return err
	}

	input := ""
	if len(args) == 1 {
		input = args[0]
	} else if !term.IsTerminal(int(os.Stdin.Fd())) {
		lines, err := readLines(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = strings.Join(lines, " / ")
	}

	m := tui.NewModel(cfg, input, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [code...]",
		Short: "Decode Morse code to text",
		Long: "Decode Morse code to text. Arguments are joined with a letter gap; " +
			"without arguments each stdin line is decoded separately. " +
			"Put -- before codes that start with a dash.",
		RunE: runDecodeCmd,
	}
	cmd.Flags().BoolVar(&decodeTrace, "trace", false, "print every automaton step")
	cmd.Flags().BoolVar(&decodeReport, "report", false, "print run summary and letter table")
	return cmd
}

func runDecodeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyBoolConfig(cmd, "trace", &decodeTrace, fileCfg.Decode.Trace)
	applyBoolConfig(cmd, "report", &decodeReport, fileCfg.Decode.Report)
	cfg := model.DecodeConfig{Trace: decodeTrace, Report: decodeReport}

	inputs := []string{strings.Join(args, " ")}
	if len(args) == 0 {
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		if len(inputs) == 0 {
			logErrln("No input. Pass Morse code as arguments or on stdin.")
			return nil
		}
	}

	out := cmd.OutOrStdout()
	a := morse.New()
	for _, input := range inputs {
		if err := decodeOne(out, a, input, cfg, logger); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func decodeOne(w io.Writer, a *morse.Automaton, input string, cfg model.DecodeConfig, logger *slog.Logger) error {
	a.Reset(input)
	if !cfg.Trace && !cfg.Report {
		decoded := a.DecodeAll()
		logger.Debug("decoded", "input", input, "output", decoded)
		_, err := fmt.Fprintln(w, decoded)
		return err
	}

	var events []morse.Event
	for !a.Done() {
		ev := a.Step()
		logger.Debug("step", "event", ev.String())
		events = append(events, ev)
	}
	if _, err := fmt.Fprintln(w, a.Output()); err != nil {
		return err
	}
	if cfg.Trace {
		if _, err := fmt.Fprintln(w, ""); err != nil {
			return err
		}
		if err := stats.RenderTrace(w, events); err != nil {
			return err
		}
	}
	if cfg.Report {
		report := stats.BuildReport(events)
		if err := stats.RenderSummary(w, report, reportWidth()); err != nil {
			return err
		}
		if err := stats.RenderLetterTable(w, report); err != nil {
			return err
		}
	}
	return nil
}

func reportWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultReportWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultReportWidth
	}
	// Leave room for the "Stack depth: " label.
	return max(width-len("Stack depth: "), 1)
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the Morse code table",
		Args:  cobra.NoArgs,
		RunE:  runTableCmd,
	}
}

func runTableCmd(cmd *cobra.Command, _ []string) error {
	return writeCodeTable(cmd.OutOrStdout())
}

func writeCodeTable(w io.Writer) error {
	for _, e := range morse.Entries() {
		if _, err := fmt.Fprintf(w, "%c  %s\n", e.Char, e.Key); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newDiagramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Render the code table as a state diagram",
		Args:  cobra.NoArgs,
		RunE:  runDiagramCmd,
	}
	cmd.Flags().StringVar(&diagramFormat, "format", defaultDiagramFormat, "output format (dot, mermaid)")
	cmd.Flags().StringVar(&diagramPath, "path", "", "highlight the path of this dot/dash key")
	cmd.Flags().StringVar(&diagramOut, "out", "", "write to file instead of stdout")
	return cmd
}

func runDiagramCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "format", &diagramFormat, fileCfg.Diagram.Format)
	cfg := model.DiagramConfig{
		Format: strings.ToLower(strings.TrimSpace(diagramFormat)),
		Path:   diagramPath,
		Out:    diagramOut,
	}
	if err := validateDiagramConfig(cfg); err != nil {
		return err
	}

	rendered := renderDiagram(cfg)
	if cfg.Out == "" {
		if _, err := io.WriteString(cmd.OutOrStdout(), rendered); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Out), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(cfg.Out, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write diagram: %w", err)
	}
	logger.Info("diagram written", "path", cfg.Out, "format", cfg.Format)
	return nil
}

func renderDiagram(cfg model.DiagramConfig) string {
	var overlay *diagram.Overlay
	if cfg.Path != "" {
		overlay = &diagram.Overlay{Key: cfg.Path}
	}
	g := diagram.Build()
	if cfg.Format == "mermaid" {
		return diagram.Mermaid(g, overlay)
	}
	return diagram.DOT(g, overlay)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logErrf("Created %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# morsetrace configuration
# Uncomment a value to enable it. CLI flags override config values.

# log-level = %q          # debug, info, warn or error

[viewer]
# interval-ms = %d          # Autoplay step interval in milliseconds
# autoplay = false          # Start stepping automatically

[decode]
# trace = false             # Print every automaton step
# report = false            # Print run summary and letter table

[diagram]
# format = %q            # dot or mermaid
`,
		defaultLogLevel,
		defaultIntervalMs,
		defaultDiagramFormat,
	)
}

func validateViewerConfig(cfg model.ViewerConfig) error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("--interval must be > 0")
	}
	return nil
}

func validateDiagramConfig(cfg model.DiagramConfig) error {
	switch cfg.Format {
	case "dot", "mermaid":
	default:
		return fmt.Errorf("--format must be dot or mermaid")
	}
	for _, r := range cfg.Path {
		if s := morse.Classify(r); s != morse.Dot && s != morse.Dash {
			return fmt.Errorf("--path must contain only dots and dashes")
		}
	}
	if len(cfg.Path) > morse.MaxKeyLen {
		return fmt.Errorf("--path must be at most %d symbols", morse.MaxKeyLen)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
