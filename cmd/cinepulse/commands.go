package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/KunjShah95/movie-recommendation/internal/models"
	"github.com/KunjShah95/movie-recommendation/internal/share"
)

// runChat opens a standalone conversation with the archivist.
func (a *cli) runChat(ctx context.Context) {
	in := bufio.NewScanner(os.Stdin)
	fmt.Println("CINEPULSE // archivist (empty line to leave)")
	a.runChatLoop(ctx, in)
}

func (a *cli) runChatLoop(ctx context.Context, in *bufio.Scanner) {
	sess := a.chatSession()
	for {
		line := promptLine(in, "you> ")
		if line == "" {
			return
		}
		sess.Send(ctx, line)

		transcript := sess.Transcript()
		if len(transcript) > 0 {
			last := transcript[len(transcript)-1]
			if last.Role == models.RoleAssistant {
				fmt.Println("archivist>", last.Content)
			}
		}
		for i, s := range sess.Suggestions() {
			fmt.Printf("  pulled %d: %s (%s) [id %d]\n", i+1, s.Title, s.Year, s.ID)
		}
	}
}

// runResearch deep-scans one title.
func (a *cli) runResearch(ctx context.Context, title string) {
	movie, err := a.client.Research(ctx, title)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scan failed:", err)
		os.Exit(1)
	}
	fmt.Println("Analysis complete. Profile mapped.")
	a.renderResults([]models.Movie{*movie}, "")
}

// runWatchlist lists saved ids or toggles one.
func (a *cli) runWatchlist(ctx context.Context, args []string) {
	if len(args) == 0 {
		ids, err := a.lists.List()
		if err != nil {
			fmt.Fprintln(os.Stderr, "watchlist:", err)
			os.Exit(1)
		}
		if len(ids) == 0 {
			fmt.Println("Watchlist is empty.")
			return
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		usage()
		os.Exit(2)
	}
	saved, err := a.lists.Toggle(ctx, id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "watchlist:", err)
		os.Exit(1)
	}
	if saved {
		fmt.Printf("Movie %d saved.\n", id)
	} else {
		fmt.Printf("Movie %d removed.\n", id)
	}
}

// runShareView fetches and renders a shared session read-only.
func (a *cli) runShareView(ctx context.Context, shareID string) {
	viewer := share.NewViewer(a.client)
	fmt.Println("Loading shared frequency...")
	viewer.Load(ctx, shareID)

	if viewer.State() != share.ViewReady {
		fmt.Println("This share does not exist (or the archive is unreachable).")
		return
	}

	snap := viewer.Snapshot()
	fmt.Printf("A friend shared this cinematic frequency: mood %q", snap.Mood)
	if snap.Intent != "" {
		fmt.Printf(", intent %q", snap.Intent)
	}
	fmt.Println()
	if snap.Personality != "" {
		fmt.Println("Profile:", snap.Personality)
	}
	a.renderResults(snap.Movies, "")
}

// runLogin prompts for credentials and persists the session token.
func (a *cli) runLogin(ctx context.Context) {
	in := bufio.NewScanner(os.Stdin)
	username := promptLine(in, "email: ")
	password := promptLine(in, "password: ")
	if err := a.authn.Login(ctx, username, password); err != nil {
		fmt.Fprintln(os.Stderr, "login failed:", err)
		os.Exit(1)
	}
	fmt.Println("Logged in. Watchlist changes now sync to your account.")
}

// runWhoami shows the account behind the stored token.
func (a *cli) runWhoami(ctx context.Context) {
	user, err := a.authn.CurrentUser(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if user.FullName != "" {
		fmt.Printf("%s <%s>\n", user.FullName, user.Email)
		return
	}
	fmt.Println(user.Email)
}
