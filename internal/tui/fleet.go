package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bellum/internal/api"
	"bellum/internal/battlelog"
	"bellum/internal/theme"
)

// fleetPage manages the viewer's owned ships: activation, docking,
// repairs and the default formation.
type fleetPage struct {
	app   *App
	root  *tview.Flex
	list  *tview.List
	help  *tview.TextView
	ships []api.OwnedShip
}

func newFleetPage(a *App) *fleetPage {
	p := &fleetPage{app: a}
	p.list = theme.NewList()
	p.list.SetTitle(" " + a.tr.T("fleet.title") + " ")
	p.list.ShowSecondaryText(true)
	p.list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		index := p.list.GetCurrentItem()
		switch event.Rune() {
		case 'a':
			p.lifecycle(index, lifecycleActivate)
			return nil
		case 'd':
			p.lifecycle(index, lifecycleDeactivate)
			return nil
		case 'r':
			p.lifecycle(index, lifecycleRepair)
			return nil
		case 's':
			p.sell(index)
			return nil
		}
		return event
	})

	p.help = theme.NewTextView()
	printfTo(p.help, " a:%s  d:%s  r:%s  s:%s",
		a.tr.T("fleet.activate"), a.tr.T("fleet.deactivate"),
		a.tr.T("fleet.repair"), a.tr.T("market.sell"))

	p.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.list, 0, 1, true).
		AddItem(p.help, 1, 0, false)
	return p
}

func (p *fleetPage) load() {
	a := p.app
	viewerID := a.sessions.Identity().UserID

	a.background(func(ctx context.Context) func() {
		ships, err := a.client.GetUserShips(ctx, viewerID, "")
		return func() {
			if err != nil {
				a.queue.Error(a.tr.T("error.load_failed"), api.Detail(err, ""))
				return
			}
			p.ships = ships
			p.render()
		}
	})
}

func (p *fleetPage) render() {
	p.list.Clear()
	for _, ship := range p.ships {
		hp := battlelog.StatRatio(ship.ActualHP, ship.BaseHP)
		secondary := fmt.Sprintf("%-10s HP %s %3.0f%%  ATK %.0f  SHD %.0f  EVA %.0f",
			ship.Status, statBar(hp, 10), hp, ship.ActualAttack, ship.ActualShield, ship.ActualEvasion)
		p.list.AddItem(fmt.Sprintf("#%d %s", ship.ShipNumber, ship.ShipName), secondary, 0, nil)
	}
}

type lifecycleAction int

const (
	lifecycleActivate lifecycleAction = iota
	lifecycleDeactivate
	lifecycleRepair
)

func (p *fleetPage) lifecycle(index int, action lifecycleAction) {
	if index < 0 || index >= len(p.ships) {
		return
	}
	a := p.app
	shipNumber := p.ships[index].ShipNumber

	a.background(func(ctx context.Context) func() {
		var err error
		var successKey string
		switch action {
		case lifecycleActivate:
			_, err = a.client.ActivateShip(ctx, shipNumber)
			successKey = "fleet.activate"
		case lifecycleDeactivate:
			_, err = a.client.DeactivateShip(ctx, shipNumber)
			successKey = "fleet.deactivate"
		case lifecycleRepair:
			// Repair may be rejected with a cooldown-remaining detail.
			_, err = a.client.RepairShip(ctx, shipNumber)
			successKey = "fleet.repaired"
		}
		return func() {
			if err != nil {
				a.queue.Error(a.tr.T("fleet.failed"), api.Detail(err, ""))
				return
			}
			a.queue.Success(a.tr.T(successKey), fmt.Sprintf("#%d", shipNumber))
			p.load()
		}
	})
}

func (p *fleetPage) sell(index int) {
	if index < 0 || index >= len(p.ships) {
		return
	}
	a := p.app
	ship := p.ships[index]

	a.background(func(ctx context.Context) func() {
		resp, err := a.client.SellShip(ctx, ship.ShipNumber)
		return func() {
			if err != nil {
				a.queue.Error(a.tr.T("market.failed"), api.Detail(err, ""))
				return
			}
			a.queue.Success(a.tr.T("market.sold"),
				fmt.Sprintf("%s  %s %.2f", ship.ShipName, a.tr.T("dashboard.credits"), resp.Credits))
			p.load()
		}
	})
}
