package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/mattn/go-isatty"

	"bellum/internal/api"
	"bellum/internal/config"
	"bellum/internal/i18n"
	"bellum/internal/log"
	"bellum/internal/notify"
	"bellum/internal/session"
	"bellum/internal/storage"
	"bellum/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Set up global panic handler first
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "Application crashed. See the debug log for details.\n")
			os.Exit(1)
		}
	}()

	cfg := config.Load()

	if err := log.SetFileOutput(cfg.LogFile); err != nil {
		fmt.Printf("Warning: Could not configure debug logging to file: %v\n", err)
	}
	defer log.Close()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGSEGV, syscall.SIGABRT, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		log.Error("SIGNAL RECEIVED", "signal", sig.String())
		fmt.Fprintf(os.Stderr, "Application received signal %s.\n", sig.String())
		os.Exit(1)
	}()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("Bellum Astrum Client")
		fmt.Println("This application requires a terminal/TTY to run properly.")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.StorePath())
	if err != nil {
		fmt.Printf("Error opening local storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions := session.NewManager(store)
	client := api.NewClient(cfg.APIBaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithTokenSource(sessions.Token),
		api.WithUnauthorizedHandler(sessions.ExpireSession),
	)
	sessions.SetAuthenticator(client)
	sessions.Restore()

	// Language preference: environment wins, then the persisted key.
	pref := cfg.Language
	if pref == "" {
		if stored, err := store.Get(storage.KeyLanguage); err == nil {
			pref = stored
		}
	}
	tr := i18n.New(pref)
	if err := store.Set(storage.KeyLanguage, tr.Tag().String()); err != nil {
		log.Warn("Could not persist language preference", "error", err)
	}

	queue := notify.NewQueue(notify.DefaultMaxEntries)

	log.Info("Starting client", "version", version, "commit", commit, "built", date, "api", cfg.APIBaseURL)

	app := tui.NewApp(cfg, client, sessions, queue, tr)
	app.SetVersionInfo(version)
	if err := app.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
