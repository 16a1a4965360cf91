// macrolog — a terminal dashboard for a nutrition-log server.
//
// Usage:
//
//	macrolog [-api-url URL] [-verbose] [-quiet]
package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/joho/godotenv"

	"github.com/pvernier/macrolog/internal/api"
	"github.com/pvernier/macrolog/internal/logbook"
	"github.com/pvernier/macrolog/internal/logger"
	"github.com/pvernier/macrolog/internal/prefs"
	"github.com/pvernier/macrolog/internal/ui"
)

const defaultAPIURL = "http://127.0.0.1:8000"

func main() {
	_ = godotenv.Load()

	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "macrolog needs an interactive terminal")
		os.Exit(1)
	}

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", defaultLogPath(), "file to write logs to (use \"stderr\" to log to console)")
	apiURL := flag.String("api-url", "", "base URL of the log server (overrides MACROLOG_API_URL)")
	prefsPath := flag.String("prefs", prefs.DefaultPath(), "path to the preferences file")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so Bubble Tea keeps the terminal.
	logOut, closer, err := logger.OpenFile(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		logOut = os.Stderr
	}
	if closer != nil {
		defer closer.Close()
	}

	// Redirect Go's default log package to the same output so stray
	// library logging doesn't corrupt the UI.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Resolve the server URL: flag wins, then env, then localhost.
	baseURL := *apiURL
	if baseURL == "" {
		baseURL = os.Getenv("MACROLOG_API_URL")
	}
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	// Wire dependencies.
	client := api.NewClient(baseURL, log)
	book := logbook.New(client, log)
	store := prefs.NewFileStore(*prefsPath, log)

	saved, err := store.Load()
	if err != nil {
		log.Warn("loading preferences: %v", err)
	}

	log.Info("macrolog starting (server=%s, theme=%s)", baseURL, saved.Theme)

	model := ui.New(book, store, log, saved)

	// Bubble Tea owns the terminal — blocks until quit.
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// defaultLogPath keeps logs next to the preferences file under the
// user's home directory, or the working directory when home is unknown.
func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".macrolog/macrolog.log"
	}
	return filepath.Join(home, ".macrolog", "macrolog.log")
}
