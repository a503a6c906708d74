package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/rivo/tview"

	"bellum/internal/api"
	"bellum/internal/battle"
	"bellum/internal/battlelog"
	"bellum/internal/theme"
)

// battlePage lists challengeable opponents and submits battles.
type battlePage struct {
	app       *App
	root      *tview.Flex
	list      *tview.List
	opponents []api.UserProfile
	fighting  bool
}

func newBattlePage(a *App) *battlePage {
	p := &battlePage{app: a}
	p.list = theme.NewList()
	p.list.SetTitle(" " + a.tr.T("battle.opponents") + " ")
	p.list.ShowSecondaryText(true)
	p.list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		p.fight(index)
	})

	p.root = tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(p.list, 0, 2, true).
		AddItem(nil, 0, 1, false)
	return p
}

func (p *battlePage) load() {
	a := p.app
	viewerID := a.sessions.Identity().UserID

	a.background(func(ctx context.Context) func() {
		opponents, err := a.orch.Opponents(ctx, viewerID)
		return func() {
			if err != nil {
				a.queue.Error(a.tr.T("error.load_failed"), api.Detail(err, ""))
				return
			}
			p.opponents = opponents
			p.list.Clear()
			for _, opp := range opponents {
				secondary := fmt.Sprintf("%s %.0f  %s %d",
					a.tr.T("dashboard.elo"), opp.ELO, a.tr.T("dashboard.level"), opp.Level)
				p.list.AddItem(battlelog.DisplayName(opp.Nickname), secondary, 0, nil)
			}
		}
	})
}

// fight submits the battle and routes the result into both a toast and
// the battle-log modal.
func (p *battlePage) fight(index int) {
	if p.fighting || index < 0 || index >= len(p.opponents) {
		return
	}
	p.fighting = true

	a := p.app
	viewerID := a.sessions.Identity().UserID
	opponent := p.opponents[index]

	a.background(func(ctx context.Context) func() {
		result, err := a.orch.Start(ctx, viewerID, opponent.UserID)
		return func() {
			p.fighting = false
			if err != nil {
				switch {
				case errors.Is(err, battle.ErrNoActiveShips):
					a.queue.Warning(a.tr.T("battle.no_ships"), "")
				case errors.Is(err, battle.ErrOpponentNoShips):
					a.queue.Warning(a.tr.T("battle.opponent_empty"), "")
				default:
					a.queue.Error(a.tr.T("battle.failed"), api.Detail(err, ""))
				}
				return
			}

			outcome := battlelog.DecideOutcome(result, viewerID)
			title := a.tr.T("battle.draw")
			switch outcome {
			case battlelog.OutcomeVictory:
				title = a.tr.T("battle.victory")
			case battlelog.OutcomeDefeat:
				title = a.tr.T("battle.defeat")
			}
			a.queue.Info(title, fmt.Sprintf("Battle #%d vs %s", result.BattleID, battlelog.DisplayName(opponent.Nickname)))
			a.openBattleLog(result)
		}
	})
}
