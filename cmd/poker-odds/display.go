package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-odds/analysis"
	"github.com/lox/holdem-odds/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	footerStyle = lipgloss.NewStyle().
			Faint(true)
)

// parsePockets parses one two-card pocket per argument.
func parsePockets(args []string) ([]poker.Hand, error) {
	pockets := make([]poker.Hand, 0, len(args))
	for i, arg := range args {
		pocket, err := parsePocket(arg)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		pockets = append(pockets, pocket)
	}
	return pockets, nil
}

func parsePocket(s string) (poker.Hand, error) {
	h, err := poker.ParseHand(s)
	if err != nil {
		return 0, err
	}
	if n := h.CountCards(); n != 2 {
		return 0, fmt.Errorf("must contain exactly 2 cards, got %d", n)
	}
	return h, nil
}

// parseCards parses an optional card list of at most maxCards cards.
func parseCards(name, s string, maxCards int) (poker.Hand, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	h, err := poker.ParseHand(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n := h.CountCards(); n > maxCards {
		return 0, fmt.Errorf("%s cannot have more than %d cards, got %d", name, maxCards, n)
	}
	return h, nil
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func displayBoard(out io.Writer, label string, cards poker.Hand) {
	if cards == 0 {
		return
	}
	fmt.Fprintf(out, "%s\n", headerStyle.Render(label))
	fmt.Fprintf(out, "%s\n\n", cards)
}

func displayOdds(out io.Writer, pockets []poker.Hand, result *analysis.OddsResult) {
	w := newTabWriter(out)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))

	for i, pocket := range pockets {
		r := result.Player(i)
		equity := percent(r.Equity())
		if result.Sampled {
			lower, upper := r.ConfidenceInterval()
			equity += fmt.Sprintf(" (%s-%s)", percent(lower), percent(upper))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			handStyle.Render(pocket.String()),
			winStyle.Render(percent(r.WinRate())),
			tieStyle.Render(percent(r.TieRate())),
			equity)
	}
	w.Flush()
}

// displayDistributions prints one row per hand category, strongest first,
// skipping categories that never occur.
func displayDistributions(out io.Writer, labels []string, columns []analysis.Distribution) {
	w := newTabWriter(out)

	fmt.Fprintf(w, "%s", categoryStyle.Render("hand"))
	for _, label := range labels {
		fmt.Fprintf(w, "\t%s", handStyle.Render(label))
	}
	fmt.Fprintf(w, "\n")

	for i := poker.NumberOfHandTypes - 1; i >= 0; i-- {
		t := poker.HandType(i)
		var seen bool
		for _, col := range columns {
			seen = seen || col[t] > 0
		}
		if !seen {
			continue
		}

		fmt.Fprintf(w, "%s", categoryStyle.Render(t.String()))
		for _, col := range columns {
			if col[t] > 0 {
				fmt.Fprintf(w, "\t%s", percentStyle.Render(percent(col[t])))
			} else {
				fmt.Fprintf(w, "\t%s", percentStyle.Render("."))
			}
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "%s", categoryStyle.Render("total"))
	for _, col := range columns {
		fmt.Fprintf(w, "\t%s", percent(col.Sum()))
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
}

func displayFooter(out io.Writer, what string, elapsed time.Duration) {
	fmt.Fprintf(out, "\n%s\n", footerStyle.Render(fmt.Sprintf("%s in %v", what, elapsed.Truncate(time.Millisecond))))
}
