package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bellum/internal/api"
	"bellum/internal/theme"
)

var messageCategories = []string{"", "battle", "market", "work", "system"}
var messageLevels = []string{"", "info", "warning", "error"}

// messagesPage shows the paginated server-side message log with
// category and level filters.
type messagesPage struct {
	app  *App
	root *tview.Flex
	view *tview.TextView

	page        int
	categoryIdx int
	levelIdx    int
	totalCount  int
	pageSize    int
}

func newMessagesPage(a *App) *messagesPage {
	p := &messagesPage{app: a, page: 1}
	p.view = theme.NewTextView()
	p.view.SetBorder(true)
	p.view.SetTitle(" " + a.tr.T("messages.title") + " ")
	p.view.SetScrollable(true)
	p.view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyRight || event.Rune() == 'n':
			p.nextPage()
			return nil
		case event.Key() == tcell.KeyLeft || event.Rune() == 'p':
			p.prevPage()
			return nil
		case event.Rune() == 'c':
			p.categoryIdx = (p.categoryIdx + 1) % len(messageCategories)
			p.page = 1
			p.load()
			return nil
		case event.Rune() == 'l':
			p.levelIdx = (p.levelIdx + 1) % len(messageLevels)
			p.page = 1
			p.load()
			return nil
		}
		return event
	})

	help := theme.NewTextView()
	printfTo(help, " n/p: %s/%s  c: %s  l: %s",
		a.tr.T("messages.next"), a.tr.T("messages.prev"),
		a.tr.T("messages.category"), a.tr.T("messages.level"))

	p.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.view, 0, 1, true).
		AddItem(help, 1, 0, false)
	return p
}

func (p *messagesPage) load() {
	a := p.app
	page := p.page
	category := messageCategories[p.categoryIdx]
	level := messageLevels[p.levelIdx]

	a.background(func(ctx context.Context) func() {
		result, err := a.client.Messages(ctx, page, category, level)
		return func() {
			if err != nil {
				a.queue.Error(a.tr.T("error.load_failed"), api.Detail(err, ""))
				return
			}
			p.totalCount = result.TotalCount
			p.pageSize = result.PageSize
			p.render(result, category, level)
		}
	})
}

func (p *messagesPage) render(result *api.MessagePage, category, level string) {
	colors := theme.Notifications()
	p.view.Clear()
	printfTo(p.view, "\n  %s[%d / %d]  %s=%s  %s=%s\n\n",
		theme.Tag(theme.LightGray), result.Page, p.lastPage(),
		p.app.tr.T("messages.category"), orAll(category),
		p.app.tr.T("messages.level"), orAll(level))

	for _, msg := range result.Messages {
		tag := theme.Tag(colors.InfoFg)
		switch msg.Level {
		case "warning":
			tag = theme.Tag(colors.WarningFg)
		case "error":
			tag = theme.Tag(colors.ErrorFg)
		}
		printfTo(p.view, "  %s%-8s %-19s %s\n", tag, msg.Category, msg.CreatedAt, tview.Escape(msg.Content))
	}
}

func (p *messagesPage) lastPage() int {
	if p.pageSize <= 0 {
		return 1
	}
	last := (p.totalCount + p.pageSize - 1) / p.pageSize
	if last < 1 {
		last = 1
	}
	return last
}

func (p *messagesPage) nextPage() {
	if p.page < p.lastPage() {
		p.page++
		p.load()
	}
}

func (p *messagesPage) prevPage() {
	if p.page > 1 {
		p.page--
		p.load()
	}
}

func orAll(filter string) string {
	if filter == "" {
		return "*"
	}
	return filter
}
