package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KunjShah95/movie-recommendation/internal/models"
	"github.com/KunjShah95/movie-recommendation/internal/session"
)

// runWizard walks the discovery steps in order, accumulating session fields,
// then submits and renders the result.
func (a *cli) runWizard(ctx context.Context) {
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("CINEPULSE // discovery wizard")
	fmt.Println()

	a.stepMood(in)
	a.stepIntent(in)
	a.stepContext(in)
	a.stepPersonality(in)

	if promptYesNo(in, "Talk it through with the archivist first?", false) {
		a.runChatLoop(ctx, in)
	}

	fmt.Println("\nSubmitting your frequency...")
	done := make(chan struct{})
	orch := session.NewOrchestrator(a.sess, a.client, func() { close(done) })
	orch.Submit(ctx)

	recs := a.sess.Recommendations()
	select {
	case <-done:
	default:
		// Failure path: loading is cleared, previous result untouched.
		fmt.Println("No transmission received. The archive may be offline; your inputs are kept.")
		return
	}

	a.renderResults(recs, a.sess.Explanation())

	if len(recs) > 0 && promptYesNo(in, "Share this batch?", false) {
		a.publisher().Create(ctx)
	}
	for {
		line := promptLine(in, "Toggle watchlist by movie id (enter to finish): ")
		if line == "" {
			return
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println("Not a movie id.")
			continue
		}
		saved, err := a.lists.Toggle(ctx, id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "watchlist:", err)
			continue
		}
		if saved {
			fmt.Printf("Movie %d saved.\n", id)
		} else {
			fmt.Printf("Movie %d removed.\n", id)
		}
	}
}

// stepMood captures the mood baseline: a preset or free text, capped at the
// input layer.
func (a *cli) stepMood(in *bufio.Scanner) {
	fmt.Println("STEP 01 / MOOD_BASELINE")
	for i, m := range models.PresetMoods {
		fmt.Printf("  %d) %s\n", i+1, m)
	}
	for {
		line := promptLine(in, "Pick a number or type your current state: ")
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(models.PresetMoods) {
			a.sess.SetMood(models.PresetMoods[n-1])
			return
		}
		if len(line) > models.MaxMoodLength {
			fmt.Printf("Keep it under %d characters.\n", models.MaxMoodLength)
			continue
		}
		a.sess.SetMood(line)
		return
	}
}

// stepIntent captures exactly one intent label.
func (a *cli) stepIntent(in *bufio.Scanner) {
	fmt.Println("\nSTEP 02 / INTENT_MAPPING")
	for i, label := range models.IntentChoices {
		fmt.Printf("  %d) %s\n", i+1, label)
	}
	for {
		line := promptLine(in, "Objective (number, enter to skip): ")
		if line == "" {
			return
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(models.IntentChoices) {
			a.sess.SetIntent(models.IntentChoices[n-1])
			return
		}
		if models.ValidIntents[line] {
			a.sess.SetIntent(line)
			return
		}
		fmt.Println("Pick one of the listed objectives.")
	}
}

// stepContext contributes the environmental keys without touching anything
// another step wrote.
func (a *cli) stepContext(in *bufio.Scanner) {
	fmt.Println("\nSTEP 03 / CONTEXT")
	alone := promptYesNo(in, "Watching alone?", true)
	a.sess.UpdateContext(models.ContextKeyIsAlone, alone)

	for {
		line := promptLine(in, "Minutes available [60-240, default 120]: ")
		if line == "" {
			a.sess.UpdateContext(models.ContextKeyMaxRuntime, 120)
			return
		}
		minutes, err := strconv.Atoi(line)
		if err != nil || minutes < 60 || minutes > 240 {
			fmt.Println("Give a number between 60 and 240.")
			continue
		}
		a.sess.UpdateContext(models.ContextKeyMaxRuntime, minutes)
		return
	}
}

// stepPersonality reads the three slider positions and regenerates the
// summary wholesale.
func (a *cli) stepPersonality(in *bufio.Scanner) {
	fmt.Println("\nSTEP 04 / PERSONALITY_SNAPSHOT")
	pace := promptSlider(in, "Pacing (0 slow burn .. 100 fast)", 50)
	ending := promptSlider(in, "Ending tone (0 happy .. 100 somber)", 50)
	novelty := promptSlider(in, "Novelty (0 classic .. 100 experimental)", 50)
	summary := session.DerivePersonality(pace, ending, novelty)
	a.sess.SetPersonality(summary)
	fmt.Println("Profile:", summary)
}

func (a *cli) renderResults(recs []models.Movie, explanation string) {
	if len(recs) == 0 {
		fmt.Println("\nZero matches for this frequency. Adjust and rerun.")
		return
	}
	fmt.Printf("\nDISCOVERIES_FOUND: %03d_MATCHES\n", len(recs))
	if explanation != "" {
		fmt.Println(explanation)
	}
	for _, m := range recs {
		fmt.Printf("\n[%d] %s (%d) — %s\n", m.ID, m.Title, m.Year, m.EmotionalTag)
		if m.Reasoning != "" {
			fmt.Println("    ", m.Reasoning)
		}
		for _, r := range m.DisplayReasons() {
			fmt.Println("     •", r)
		}
	}
	fmt.Println()
}

// ---- Prompt Helpers ----

func promptLine(in *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func promptYesNo(in *bufio.Scanner, prompt string, fallback bool) bool {
	hint := "y/N"
	if fallback {
		hint = "Y/n"
	}
	switch strings.ToLower(promptLine(in, fmt.Sprintf("%s [%s]: ", prompt, hint))) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return fallback
	}
}

func promptSlider(in *bufio.Scanner, prompt string, fallback int) int {
	for {
		line := promptLine(in, fmt.Sprintf("%s [%d]: ", prompt, fallback))
		if line == "" {
			return fallback
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n > 100 {
			fmt.Println("Give a number between 0 and 100.")
			continue
		}
		return n
	}
}
