package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rivo/tview"

	"bellum/internal/api"
	"bellum/internal/theme"
)

// workPage shows the work cooldown state and performs work activities.
type workPage struct {
	app     *App
	root    *tview.Flex
	status  *tview.TextView
	types   *tview.List
	history *tview.TextView

	available []api.WorkType
}

func newWorkPage(a *App) *workPage {
	p := &workPage{app: a}
	p.status = theme.NewTextView()
	p.status.SetBorder(true)
	p.status.SetTitle(" " + a.tr.T("work.title") + " ")

	p.types = theme.NewList()
	p.types.SetTitle(" " + a.tr.T("work.perform") + " ")
	p.types.ShowSecondaryText(true)
	p.types.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		p.perform(index)
	})

	p.history = theme.NewTextView()
	p.history.SetBorder(true)
	p.history.SetTitle(" " + a.tr.T("work.history") + " ")

	p.root = tview.NewFlex().
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(p.status, 7, 0, false).
			AddItem(p.types, 0, 1, true), 0, 1, true).
		AddItem(p.history, 0, 1, false)
	return p
}

// load fetches status, available types and history concurrently.
func (p *workPage) load() {
	a := p.app

	a.background(func(ctx context.Context) func() {
		var (
			wg         sync.WaitGroup
			status     *api.WorkStatus
			types      []api.WorkType
			history    []api.WorkHistoryEntry
			statusErr  error
			typesErr   error
			historyErr error
		)
		wg.Add(3)
		go func() { defer wg.Done(); status, statusErr = a.client.WorkStatus(ctx) }()
		go func() { defer wg.Done(); types, typesErr = a.client.WorkTypes(ctx) }()
		go func() { defer wg.Done(); history, historyErr = a.client.WorkHistory(ctx) }()
		wg.Wait()

		return func() {
			if statusErr != nil {
				a.queue.Error(a.tr.T("error.load_failed"), api.Detail(statusErr, ""))
			} else {
				p.renderStatus(status)
			}
			if typesErr == nil {
				p.available = types
				p.renderTypes()
			}
			if historyErr == nil {
				p.renderHistory(history)
			}
		}
	})
}

func (p *workPage) renderStatus(status *api.WorkStatus) {
	tr := p.app.tr
	p.status.Clear()
	printfTo(p.status, "\n")
	if status.CanWork {
		printfTo(p.status, "  %s%s\n", theme.Tag(theme.LightGreen), tr.T("work.ready"))
	} else {
		cooldown := time.Duration(status.CooldownSeconds) * time.Second
		printfTo(p.status, "  %s%s: %s\n", theme.Tag(theme.Yellow), tr.T("work.cooldown"), cooldown)
	}
	printfTo(p.status, "  %s%s: %.2f (%d)\n", theme.Tag(theme.LightGray), tr.T("work.earned"),
		status.TotalEarned, status.WorksPerformed)
}

func (p *workPage) renderTypes() {
	p.types.Clear()
	for _, wt := range p.available {
		secondary := fmt.Sprintf("%.0f - %.0f cr  [%s]", wt.MinIncome, wt.MaxIncome, wt.RequiredRank)
		p.types.AddItem(wt.Name, secondary, 0, nil)
	}
}

func (p *workPage) renderHistory(history []api.WorkHistoryEntry) {
	p.history.Clear()
	printfTo(p.history, "\n")
	for _, entry := range history {
		printfTo(p.history, "  %-14s %8.2f cr  %s\n", entry.WorkType, entry.Income, entry.PerformedAt)
	}
}

func (p *workPage) perform(index int) {
	if index < 0 || index >= len(p.available) {
		return
	}
	a := p.app
	workType := p.available[index].Name

	a.background(func(ctx context.Context) func() {
		result, err := a.client.PerformWork(ctx, workType)
		return func() {
			if err != nil {
				// Cooldown rejections carry the remaining time in the detail.
				a.queue.Error(a.tr.T("work.failed"), api.Detail(err, ""))
				return
			}
			a.queue.Success(a.tr.T("work.earned"),
				fmt.Sprintf("%s: %.2f cr", result.WorkType, result.Income))
			p.load()
		}
	})
}
