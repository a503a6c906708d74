package tui

import (
	"context"
	"fmt"

	"github.com/rivo/tview"

	"bellum/internal/api"
	"bellum/internal/theme"
)

// marketPage lists the ship catalog and purchases ships.
type marketPage struct {
	app     *App
	root    *tview.Flex
	list    *tview.List
	catalog []api.MarketShip
}

func newMarketPage(a *App) *marketPage {
	p := &marketPage{app: a}
	p.list = theme.NewList()
	p.list.SetTitle(" " + a.tr.T("market.title") + " ")
	p.list.ShowSecondaryText(true)
	p.list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		p.buy(index)
	})

	p.root = tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(p.list, 0, 3, true).
		AddItem(nil, 0, 1, false)
	return p
}

func (p *marketPage) load() {
	a := p.app

	a.background(func(ctx context.Context) func() {
		catalog, err := a.client.MarketShips(ctx)
		return func() {
			if err != nil {
				a.queue.Error(a.tr.T("error.load_failed"), api.Detail(err, ""))
				return
			}
			p.catalog = catalog
			p.list.Clear()
			for _, ship := range catalog {
				secondary := fmt.Sprintf("ATK %.0f  SHD %.0f  HP %.0f  EVA %.0f  %.2f cr",
					ship.Attack, ship.Shield, ship.HP, ship.Evasion, ship.Value)
				p.list.AddItem(ship.ShipName, secondary, 0, nil)
			}
		}
	})
}

// buy purchases the selected catalog ship. Insufficient credits come
// back as a domain rejection and surface verbatim.
func (p *marketPage) buy(index int) {
	if index < 0 || index >= len(p.catalog) {
		return
	}
	a := p.app
	ship := p.catalog[index]

	a.background(func(ctx context.Context) func() {
		resp, err := a.client.BuyShip(ctx, ship.ShipID)
		return func() {
			if err != nil {
				a.queue.Error(a.tr.T("market.failed"), api.Detail(err, ""))
				return
			}
			a.queue.Success(a.tr.T("market.bought"),
				fmt.Sprintf("%s (#%d)  %s %.2f", resp.ShipName, resp.ShipNumber, a.tr.T("dashboard.credits"), resp.Credits))
		}
	})
}
