package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bellum/internal/api"
	"bellum/internal/battlelog"
	"bellum/internal/theme"
)

// openBattleLog presents a finished battle as a stratified timeline,
// cross-referenced against live ship stat snapshots.
func (a *App) openBattleLog(result *api.BattleResult) {
	view := theme.NewTextView()
	view.SetBorder(true)
	view.SetTitle(" " + a.tr.T("battle.log_title") + " ")
	view.SetScrollable(true)
	view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			a.pages.RemovePage(pageBattleLog)
			return nil
		}
		return event
	})

	frame := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 1, 0, false).
			AddItem(view, 0, 8, true).
			AddItem(nil, 1, 0, false), 0, 6, true).
		AddItem(nil, 0, 1, false)

	a.pages.AddPage(pageBattleLog, frame, true, true)
	printfTo(view, "\n  ...\n")

	viewerID := a.sessions.Identity().UserID

	a.background(func(ctx context.Context) func() {
		// Viewer's own ships first, then any participant ship numbers the
		// pool cannot resolve, fetched concurrently with per-ship failure
		// isolation.
		ownShips, err := a.client.GetUserShips(ctx, viewerID, "")
		if err != nil {
			ownShips = nil
		}
		pool := battlelog.NewSnapshotPool(ownShips)
		pool.FetchMissing(ctx, a.client, pool.MissingFrom(result.Participants))

		interp := battlelog.NewInterpreter(result, viewerID)
		entries := interp.InterpretAll(result.BattleLog)
		outcome := battlelog.DecideOutcome(result, viewerID)

		return func() {
			view.Clear()
			renderBattleLog(view, a, result, viewerID, pool, entries, outcome)
			view.ScrollToBeginning()
		}
	})
}

func renderBattleLog(view *tview.TextView, a *App, result *api.BattleResult, viewerID int64, pool *battlelog.SnapshotPool, entries []battlelog.Entry, outcome battlelog.Outcome) {
	colors := theme.Battle()

	banner := a.tr.T("battle.draw")
	bannerColor := colors.Draw
	switch outcome {
	case battlelog.OutcomeVictory:
		banner = a.tr.T("battle.victory")
		bannerColor = colors.Victory
	case battlelog.OutcomeDefeat:
		banner = a.tr.T("battle.defeat")
		bannerColor = colors.Defeat
	}
	printfTo(view, "\n  %s=== %s ===\n\n", theme.Tag(bannerColor), banner)

	// Participant snapshots with current-vs-base HP bars. A ship with no
	// resolvable snapshot renders a full bar.
	for _, part := range result.Participants {
		sideColor := colors.Hostile
		if part.UserID == viewerID {
			sideColor = colors.Friendly
		}
		ratios := pool.Ratios(part.ShipNumber)
		printfTo(view, "  %s%-20s %-16s %sHP %s %3.0f%%\n",
			theme.Tag(sideColor),
			battlelog.DisplayName(part.Nickname),
			part.ShipName,
			theme.Tag(colors.Neutral),
			statBar(ratios.HP, 10),
			ratios.HP)
	}
	printfTo(view, "\n")

	for _, entry := range entries {
		printfTo(view, "  %s\n", formatEntry(entry, outcome, colors))
	}
}

// formatEntry styles one timeline entry. "wins" result lines take their
// color from the single outcome decision, never from their own text.
func formatEntry(entry battlelog.Entry, outcome battlelog.Outcome, colors theme.BattleColors) string {
	content := tview.Escape(entry.Content)
	switch entry.Type {
	case battlelog.EntryHeader:
		return theme.Tag(colors.Header) + content
	case battlelog.EntryRound:
		return theme.Tag(colors.Round) + content
	case battlelog.EntryAttack:
		tag := theme.Tag(colors.Neutral)
		if entry.AttackerIsViewer {
			tag = theme.Tag(colors.Friendly)
		} else if entry.TargetIsViewer {
			tag = theme.Tag(colors.Hostile)
		}
		if entry.Evaded {
			return tag + "~ " + content
		}
		return fmt.Sprintf("%s> %s  (%.1f)", tag, content, entry.Damage)
	case battlelog.EntryResult:
		if strings.Contains(entry.Content, "wins") {
			switch outcome {
			case battlelog.OutcomeVictory:
				return theme.Tag(colors.Victory) + content
			case battlelog.OutcomeDefeat:
				return theme.Tag(colors.Defeat) + content
			default:
				return theme.Tag(colors.Draw) + content
			}
		}
		return theme.Tag(colors.Neutral) + content
	case battlelog.EntryReward:
		return theme.Tag(colors.Reward) + content
	default:
		return theme.Tag(colors.Info) + content
	}
}

// statBar renders a ratio in [0,100] as a fixed-width bar.
func statBar(ratio float64, width int) string {
	filled := int(ratio / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
