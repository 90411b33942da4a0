// Package main provides the CLI entrypoint for coniuga.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/netrunner-run/coniuga/internal/config"
	"github.com/netrunner-run/coniuga/internal/deck"
	"github.com/netrunner-run/coniuga/internal/render"
	"github.com/netrunner-run/coniuga/internal/scores"
	"github.com/netrunner-run/coniuga/internal/scoresui"
	"github.com/netrunner-run/coniuga/internal/session"
	"github.com/netrunner-run/coniuga/internal/storage"
	"github.com/netrunner-run/coniuga/internal/tui"
	"github.com/netrunner-run/coniuga/internal/verbimport"
	"github.com/netrunner-run/coniuga/internal/verbs"
)

const (
	defaultLeaderboardURL = "https://scoreboard.netrunner.run"
	defaultServeAddr      = ":8090"
)

var (
	practiceVerbs        string
	practiceConjugations bool

	scoresURL      string
	scoresUsername string
	scoresEmail    string

	importFile string

	serveAddr        string
	serveDatabaseURL string

	resetAll bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "coniuga",
		Short:         "TUI trainer for Italian present-tense conjugation",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceVerbs, "verbs", "", "comma-separated infinitives to practice (default: all)")
	rootCmd.Flags().BoolVar(&practiceConjugations, "show-conjugations", false, "show the conjugation panel")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVerbsCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "show-conjugations", &practiceConjugations, fileCfg.Practice.ShowConjugations)

	kv := openPracticeStore()
	defer func() {
		if cerr := kv.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	settings := storage.NewSettings(kv)

	verbSet, err := loadVerbSet(kv)
	if err != nil {
		return err
	}

	if selection := resolveSelection(cmd, fileCfg); selection != nil {
		if err := validateSelection(verbSet, selection); err != nil {
			return err
		}
		if err := settings.SaveSelectedVerbs(selection); err != nil {
			logErrf("failed to save verb selection: %v\n", err)
		}
	}

	controller := session.New(verbSet, deck.New(), settings)
	if practiceConjugations && !controller.ShowConjugations() {
		controller.ToggleConjugations()
	}

	model := tui.NewModel(controller, verbSet)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveSelection merges the --verbs flag over the config file. A nil
// return keeps whatever selection is already persisted.
func resolveSelection(cmd *cobra.Command, fileCfg config.FileConfig) []string {
	if cmd.Flags().Changed("verbs") {
		return splitVerbList(practiceVerbs)
	}
	if fileCfg.Practice.Verbs != nil {
		return *fileCfg.Practice.Verbs
	}
	return nil
}

func splitVerbList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validateSelection(verbSet []verbs.Verb, selection []string) error {
	for _, infinitive := range selection {
		if _, ok := verbs.Find(verbSet, infinitive); !ok {
			return fmt.Errorf("unknown verb %q (run: coniuga verbs)", infinitive)
		}
	}
	return nil
}

// openPracticeStore opens the local progress database, degrading to an
// in-memory store so practice still works without a writable disk.
func openPracticeStore() storage.KV {
	st, err := storage.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db, progress will not be saved: %v\n", err)
		return storage.NewMemory()
	}
	return st
}

func loadVerbSet(kv storage.KV) ([]verbs.Verb, error) {
	builtin := verbs.All()
	st, ok := kv.(*storage.Store)
	if !ok {
		return builtin, nil
	}
	custom, err := st.LoadVerbs()
	if err != nil {
		return nil, fmt.Errorf("failed to load custom verbs: %w", err)
	}
	return storage.MergeVerbs(builtin, custom), nil
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

func newVerbsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verbs",
		Short: "List practiceable verbs",
		Args:  cobra.NoArgs,
		RunE:  runVerbsCmd,
	}
	cmd.AddCommand(newVerbsImportCmd())
	return cmd
}

func runVerbsCmd(cmd *cobra.Command, _ []string) error {
	kv := openPracticeStore()
	defer func() {
		if cerr := kv.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	verbSet, err := loadVerbSet(kv)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(verbSet))
	byClass := verbs.ByClass(verbSet)
	for _, class := range verbs.Classes {
		for _, v := range byClass[class] {
			rows = append(rows, []string{v.Infinitive, v.Meaning, string(v.Class)})
		}
	}
	for _, line := range render.FormatTable([]string{"Verb", "Meaning", "Class"}, rows, nil) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newVerbsImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import custom verbs from an .xlsx or .csv file",
		Args:  cobra.NoArgs,
		RunE:  runVerbsImportCmd,
	}
	cmd.Flags().StringVar(&importFile, "file", "", "path to the spreadsheet")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		// MarkFlagRequired only fails for unknown flags.
		panic(err)
	}
	return cmd
}

func runVerbsImportCmd(cmd *cobra.Command, _ []string) error {
	imported, result, err := verbimport.Import(importFile)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		logErrf("skipped %s\n", msg)
	}
	if len(imported) == 0 {
		return fmt.Errorf("no verbs imported from %s", importFile)
	}

	st, err := storage.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	for _, v := range imported {
		if err := st.SaveVerb(v); err != nil {
			return fmt.Errorf("failed to save %s: %w", v.Infinitive, err)
		}
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Imported %d verbs (%d rows skipped)\n", result.Imported, result.Skipped); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the shared leaderboard",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().StringVar(&scoresURL, "url", defaultLeaderboardURL, "leaderboard server URL")
	cmd.Flags().StringVar(&scoresUsername, "username", "", "name to submit scores under")
	cmd.Flags().StringVar(&scoresEmail, "email", "", "e-mail for beaten-score notifications")
	return cmd
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "url", &scoresURL, fileCfg.Leaderboard.URL)
	applyStringConfig(cmd, "username", &scoresUsername, fileCfg.Leaderboard.Username)
	applyStringConfig(cmd, "email", &scoresEmail, fileCfg.Leaderboard.Email)

	client := scores.NewClient(scoresURL)
	submission, canSubmit := localSubmission()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printScores(cmd, client)
	}

	model := scoresui.NewModel(client, submission, canSubmit)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run leaderboard TUI: %w", err)
	}
	return nil
}

// localSubmission builds a submission from saved practice progress.
func localSubmission() (scores.NewScore, bool) {
	kv := openPracticeStore()
	defer func() {
		if cerr := kv.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	settings := storage.NewSettings(kv)
	progress := settings.Progress()

	accuracy := 0
	if progress.TotalAttempts > 0 {
		accuracy = int(float64(progress.TotalScore)/float64(progress.TotalAttempts)*100 + 0.5)
	}
	verbType := "all"
	if selected := settings.SelectedVerbs(); len(selected) > 0 && len(selected) < len(verbs.All()) {
		verbType = "custom"
	}
	submission := scores.NewScore{
		Username:      scoresUsername,
		Email:         scoresEmail,
		Score:         progress.TotalScore,
		Accuracy:      accuracy,
		VerbType:      verbType,
		TotalAttempts: progress.TotalAttempts,
	}
	return submission, progress.TotalAttempts > 0
}

// printScores renders the leaderboard as a plain table for piped output.
func printScores(cmd *cobra.Command, client *scores.Client) error {
	top, err := client.ListTop(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	if len(top) == 0 {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), "No scores yet."); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	rows := make([][]string, 0, len(top))
	for i, s := range top {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Username,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d%%", s.Accuracy),
			s.VerbType,
		})
	}
	headers := []string{"#", "Name", "Score", "Accuracy", "Verbs"}
	for _, line := range render.FormatTable(headers, rows, map[int]bool{0: true, 2: true, 3: true}) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the leaderboard API server",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().StringVar(&serveDatabaseURL, "database-url", "", "Postgres connection URL (default: local SQLite)")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	// Secrets come from the environment; a .env next to the binary is
	// loaded when present.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logErrf("failed to load .env: %v\n", err)
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "addr", &serveAddr, fileCfg.Server.Addr)
	applyStringConfig(cmd, "database-url", &serveDatabaseURL, fileCfg.Server.DatabaseURL)
	if serveDatabaseURL == "" {
		serveDatabaseURL = os.Getenv("DATABASE_URL")
	}

	store, err := scores.OpenStore(serveDatabaseURL, config.DefaultScoresDBPath())
	if err != nil {
		return fmt.Errorf("failed to open scores db: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logErrf("failed to close scores db: %v\n", cerr)
		}
	}()

	notifier := scores.NewNotifier(os.Getenv("RESEND_API_KEY"), "")
	if !notifier.Enabled() {
		logErrln("RESEND_API_KEY not set; beaten-score notifications disabled")
	}

	server := scores.NewServer(store, notifier, nil)
	logErrf("listening on %s\n", serveAddr)
	if err := http.ListenAndServe(serveAddr, server.Handler()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset practice progress",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetAll, "all", false, "also clear verb selection and display settings")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	st, err := storage.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	settings := storage.NewSettings(st)
	if resetAll {
		if err := settings.ClearAll(); err != nil {
			return fmt.Errorf("failed to clear settings: %w", err)
		}
	} else if err := settings.ResetProgress(); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Progress reset."); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
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
	return fmt.Sprintf(`# coniuga configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# verbs = ["parlare", "capire"]  # Infinitives to practice (default: all)
# show-conjugations = false      # Show the conjugation panel

[leaderboard]
# url = %q
# username = "yourname"
# email = "you@example.com"      # Opt in to beaten-score notifications

[server]
# addr = %q
# database-url = ""              # Postgres URL; empty uses local SQLite
`, defaultLeaderboardURL, defaultServeAddr)
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
