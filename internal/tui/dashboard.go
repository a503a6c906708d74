package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bellum/internal/api"
	"bellum/internal/battlelog"
	"bellum/internal/theme"
)

// dashboardPage shows the viewer's profile and a fleet summary.
type dashboardPage struct {
	app     *App
	root    *tview.Flex
	profile *tview.TextView
	fleet   *tview.TextView
	user    *api.UserProfile
}

func newDashboardPage(a *App) *dashboardPage {
	p := &dashboardPage{app: a}
	p.profile = theme.NewTextView()
	p.profile.SetBorder(true)
	p.profile.SetTitle(" " + a.tr.T("nav.dashboard") + " ")
	p.profile.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'f' {
			p.cycleFormation()
			return nil
		}
		return event
	})
	p.fleet = theme.NewTextView()
	p.fleet.SetBorder(true)
	p.fleet.SetTitle(" " + a.tr.T("fleet.title") + " ")

	p.root = tview.NewFlex().
		AddItem(p.profile, 0, 1, true).
		AddItem(p.fleet, 0, 1, false)
	return p
}

// cycleFormation toggles and persists the default formation.
func (p *dashboardPage) cycleFormation() {
	if p.user == nil {
		return
	}
	a := p.app
	next := api.FormationAggressive
	if p.user.DefaultFormation == api.FormationAggressive {
		next = api.FormationDefensive
	}
	userID := p.user.UserID

	a.background(func(ctx context.Context) func() {
		err := a.client.UpdateFormation(ctx, userID, next)
		return func() {
			if err != nil {
				a.queue.Error(a.tr.T("error.load_failed"), api.Detail(err, ""))
				return
			}
			p.user.DefaultFormation = next
			p.renderProfile(p.user)
		}
	})
}

// load fetches profile and fleet concurrently; the two calls are
// independent.
func (p *dashboardPage) load() {
	a := p.app
	viewerID := a.sessions.Identity().UserID

	a.background(func(ctx context.Context) func() {
		type loaded struct {
			user  *api.UserProfile
			ships []api.OwnedShip
		}
		var result loaded
		var userErr, shipsErr error

		done := make(chan struct{})
		go func() {
			result.user, userErr = a.client.GetUser(ctx, viewerID)
			close(done)
		}()
		result.ships, shipsErr = a.client.GetUserShips(ctx, viewerID, "")
		<-done

		return func() {
			if userErr != nil {
				a.queue.Error(a.tr.T("error.load_failed"), api.Detail(userErr, ""))
			} else {
				p.user = result.user
				p.renderProfile(result.user)
			}
			if shipsErr != nil {
				a.queue.Error(a.tr.T("error.load_failed"), api.Detail(shipsErr, ""))
			} else {
				p.renderFleet(result.ships)
			}
		}
	})
}

func (p *dashboardPage) renderProfile(user *api.UserProfile) {
	tr := p.app.tr
	p.profile.Clear()
	printfTo(p.profile, "\n  %s\n\n", battlelog.DisplayName(user.Nickname))
	printfTo(p.profile, "  %-18s %d\n", tr.T("dashboard.level"), user.Level)
	printfTo(p.profile, "  %-18s %.2f\n", tr.T("dashboard.credits"), user.Credits)
	printfTo(p.profile, "  %-18s %.0f\n", tr.T("dashboard.elo"), user.ELO)
	printfTo(p.profile, "  %-18s %s\n", tr.T("dashboard.rank"), user.Rank)
	printfTo(p.profile, "  %-18s %dW / %dL\n", tr.T("dashboard.record"), user.VictoryCount, user.DefeatCount)
	printfTo(p.profile, "  %-18s %s\n", tr.T("dashboard.formation"), user.DefaultFormation)
}

func (p *dashboardPage) renderFleet(ships []api.OwnedShip) {
	p.fleet.Clear()
	printfTo(p.fleet, "\n")
	for _, ship := range ships {
		ratio := battlelog.StatRatio(ship.ActualHP, ship.BaseHP)
		printfTo(p.fleet, "  #%d %-16s %-10s HP %3.0f%%\n",
			ship.ShipNumber, ship.ShipName, ship.Status, ratio)
	}
}
