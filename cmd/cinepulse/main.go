// Command cinepulse is the terminal client for the CinePulse discovery
// backend: a guided wizard that accumulates mood, intent, context, and
// personality, submits them for curated recommendations, and manages the
// watchlist and share links.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KunjShah95/movie-recommendation/internal/api"
	"github.com/KunjShah95/movie-recommendation/internal/auth"
	"github.com/KunjShah95/movie-recommendation/internal/chat"
	"github.com/KunjShah95/movie-recommendation/internal/config"
	"github.com/KunjShah95/movie-recommendation/internal/models"
	"github.com/KunjShah95/movie-recommendation/internal/session"
	"github.com/KunjShah95/movie-recommendation/internal/share"
	"github.com/KunjShah95/movie-recommendation/internal/storage"
	"github.com/KunjShah95/movie-recommendation/internal/watchlist"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cinepulse <command> [args]

commands:
  discover            run the discovery wizard (default)
  chat                talk to the archivist assistant
  research <title>    deep-scan a single title
  watchlist           list saved movie ids
  watchlist <id>      toggle a movie on the watchlist
  share <id>          view a shared session
  login               authenticate against the backend
  logout              drop the stored session
  whoami              show the logged-in account`)
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		slog.Error("failed to open local store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, tokenSourceFunc(store.Token))
	authn := auth.NewAuthenticator(client, store)
	lists := watchlist.NewManager(store, client, authn)
	sess := session.NewStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli{
		cfg:    cfg,
		client: client,
		authn:  authn,
		lists:  lists,
		sess:   sess,
	}

	cmd := "discover"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "discover":
		app.runWizard(ctx)
	case "chat":
		app.runChat(ctx)
	case "research":
		if len(args) != 1 {
			usage()
			os.Exit(2)
		}
		app.runResearch(ctx, args[0])
	case "watchlist":
		app.runWatchlist(ctx, args)
	case "share":
		if len(args) != 1 {
			usage()
			os.Exit(2)
		}
		app.runShareView(ctx, args[0])
	case "login":
		app.runLogin(ctx)
	case "logout":
		if err := authn.Logout(); err != nil {
			fmt.Fprintln(os.Stderr, "logout failed:", err)
			os.Exit(1)
		}
		fmt.Println("Logged out.")
	case "whoami":
		app.runWhoami(ctx)
	default:
		usage()
		os.Exit(2)
	}
}

// tokenSourceFunc adapts the storage token lookup to api.TokenSource.
type tokenSourceFunc func() (string, error)

func (f tokenSourceFunc) Token() string {
	token, err := f()
	if err != nil {
		slog.Error("failed to read stored token", "error", err)
		return ""
	}
	return token
}

// cli bundles the wired components behind the commands.
type cli struct {
	cfg    *config.Config
	client *api.Client
	authn  *auth.Authenticator
	lists  *watchlist.Manager
	sess   *session.Store
}

func (a *cli) chatSession() *chat.Session {
	return chat.NewSession(a.client, models.ChatContext{
		Platform: a.cfg.Chat.Platform,
		Mode:     a.cfg.Chat.Mode,
	})
}

func (a *cli) publisher() *share.Publisher {
	return share.NewPublisher(a.sess, a.client, printClipboard{}, a.cfg.Share.LinkBase)
}

// printClipboard surfaces the share URL on stdout; a terminal has no
// clipboard of its own.
type printClipboard struct{}

func (printClipboard) Copy(url string) error {
	fmt.Println("Share link:", url)
	return nil
}
