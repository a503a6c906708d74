package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bellum/internal/api"
	"bellum/internal/battle"
	"bellum/internal/config"
	"bellum/internal/i18n"
	"bellum/internal/log"
	"bellum/internal/notify"
	"bellum/internal/session"
	"bellum/internal/theme"
)

// Page names registered on the tview Pages container.
const (
	pageLogin     = "login"
	pageDashboard = "dashboard"
	pageBattle    = "battle"
	pageFleet     = "fleet"
	pageMarket    = "market"
	pageWork      = "work"
	pageMessages  = "messages"
	pageBattleLog = "battlelog"
	pageExpired   = "expired"
)

// App is the tview application shell. All UI mutation happens on the
// tview goroutine via QueueUpdateDraw; fetches run on worker goroutines.
type App struct {
	app       *tview.Application
	pages     *tview.Pages
	menuBar   *tview.TextView
	statusBar *tview.TextView
	toasts    *tview.TextView

	cfg      *config.Config
	client   *api.Client
	sessions *session.Manager
	queue    *notify.Queue
	orch     *battle.Orchestrator
	tr       *i18n.Translator

	loginPage    *loginPage
	dashboard    *dashboardPage
	battlePage   *battlePage
	fleetPage    *fleetPage
	marketPage   *marketPage
	workPage     *workPage
	messagesPage *messagesPage

	version string
}

// NewApp wires the application together.
func NewApp(cfg *config.Config, client *api.Client, sessions *session.Manager, queue *notify.Queue, tr *i18n.Translator) *App {
	a := &App{
		app:      tview.NewApplication(),
		pages:    tview.NewPages(),
		cfg:      cfg,
		client:   client,
		sessions: sessions,
		queue:    queue,
		orch:     battle.NewOrchestrator(client),
		tr:       tr,
	}

	a.menuBar = theme.NewStatusBar()
	a.statusBar = theme.NewStatusBar()
	a.toasts = theme.NewTextView()
	a.toasts.SetBackgroundColor(theme.Black)

	a.loginPage = newLoginPage(a)
	a.dashboard = newDashboardPage(a)
	a.battlePage = newBattlePage(a)
	a.fleetPage = newFleetPage(a)
	a.marketPage = newMarketPage(a)
	a.workPage = newWorkPage(a)
	a.messagesPage = newMessagesPage(a)

	a.pages.AddPage(pageLogin, a.loginPage.root, true, true)
	a.pages.AddPage(pageDashboard, a.dashboard.root, true, false)
	a.pages.AddPage(pageBattle, a.battlePage.root, true, false)
	a.pages.AddPage(pageFleet, a.fleetPage.root, true, false)
	a.pages.AddPage(pageMarket, a.marketPage.root, true, false)
	a.pages.AddPage(pageWork, a.workPage.root, true, false)
	a.pages.AddPage(pageMessages, a.messagesPage.root, true, false)

	grid := tview.NewGrid().
		SetRows(1, 3, 0, 1).
		SetColumns(0).
		SetBorders(false)
	grid.AddItem(a.menuBar, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(a.toasts, 1, 0, 1, 1, 0, 0, false)
	grid.AddItem(a.pages, 2, 0, 1, 1, 0, 0, true)
	grid.AddItem(a.statusBar, 3, 0, 1, 1, 0, 0, false)

	a.app.SetRoot(grid, true)
	a.app.SetInputCapture(a.handleKey)

	// Toast overlay redraws from queue snapshots; the callback arrives
	// off the UI goroutine.
	queue.OnChange(func(entries []notify.Notification) {
		a.app.QueueUpdateDraw(func() {
			a.renderToasts(entries)
		})
	})

	// Session expiry raises a modal from wherever the transport noticed
	// the 401.
	sessions.OnExpired(func() {
		a.app.QueueUpdateDraw(a.showSessionExpired)
	})

	a.renderMenu(false)
	a.setStatus("")
	return a
}

// SetVersionInfo records build metadata for the status bar.
func (a *App) SetVersionInfo(version string) {
	a.version = version
}

// Run starts the UI. When a persisted session restored successfully the
// dashboard opens directly, otherwise the login page shows.
func (a *App) Run() error {
	if a.sessions.IsAuthenticated() {
		a.switchTo(pageDashboard)
	}
	return a.app.Run()
}

// Stop terminates the UI event loop.
func (a *App) Stop() {
	a.app.Stop()
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if !a.sessions.IsAuthenticated() {
		return event
	}
	switch event.Key() {
	case tcell.KeyF2:
		a.switchTo(pageDashboard)
		return nil
	case tcell.KeyF3:
		a.switchTo(pageBattle)
		return nil
	case tcell.KeyF4:
		a.switchTo(pageFleet)
		return nil
	case tcell.KeyF5:
		a.switchTo(pageMarket)
		return nil
	case tcell.KeyF6:
		a.switchTo(pageWork)
		return nil
	case tcell.KeyF7:
		a.switchTo(pageMessages)
		return nil
	case tcell.KeyF10:
		a.Stop()
		return nil
	case tcell.KeyCtrlL:
		a.logout()
		return nil
	}
	return event
}

// switchTo changes the visible page, gating everything but login behind
// an authenticated session.
func (a *App) switchTo(page string) {
	if page != pageLogin && !a.sessions.IsAuthenticated() {
		page = pageLogin
	}
	a.pages.SwitchToPage(page)
	a.renderMenu(page != pageLogin)

	switch page {
	case pageDashboard:
		a.dashboard.load()
	case pageBattle:
		a.battlePage.load()
	case pageFleet:
		a.fleetPage.load()
	case pageMarket:
		a.marketPage.load()
	case pageWork:
		a.workPage.load()
	case pageMessages:
		a.messagesPage.load()
	}
}

func (a *App) logout() {
	a.sessions.Logout()
	a.pages.SwitchToPage(pageLogin)
	a.renderMenu(false)
	a.setStatus("")
}

// showSessionExpired force-routes to a modal; acknowledging it lands on
// the login page.
func (a *App) showSessionExpired() {
	if a.pages.HasPage(pageExpired) {
		a.pages.RemovePage(pageExpired)
	}
	modal := theme.NewModal()
	modal.SetText(a.tr.T("session.expired.message"))
	modal.AddButtons([]string{"OK"})
	modal.SetDoneFunc(func(int, string) {
		a.sessions.AcknowledgeExpiry()
		a.pages.RemovePage(pageExpired)
		a.pages.SwitchToPage(pageLogin)
		a.renderMenu(false)
	})
	a.pages.AddPage(pageExpired, modal, true, true)
}

func (a *App) renderMenu(authenticated bool) {
	colors := theme.Status()
	a.menuBar.Clear()
	if !authenticated {
		printfTo(a.menuBar, " %s%s", theme.Tag(colors.Foreground), a.tr.T("app.title"))
		return
	}
	printfTo(a.menuBar, " %s F2:%s  F3:%s  F4:%s  F5:%s  F6:%s  F7:%s  ^L:%s  F10:%s",
		theme.Tag(colors.Foreground),
		a.tr.T("nav.dashboard"), a.tr.T("nav.battle"), a.tr.T("nav.fleet"),
		a.tr.T("nav.market"), a.tr.T("nav.work"), a.tr.T("nav.messages"),
		a.tr.T("nav.logout"), a.tr.T("nav.quit"))
}

func (a *App) setStatus(text string) {
	colors := theme.Status()
	a.statusBar.Clear()
	identity := a.sessions.Identity()
	who := a.tr.T("app.title")
	stateColor := colors.OfflineFg
	if a.sessions.IsAuthenticated() {
		who = identity.Nickname
		stateColor = colors.OnlineFg
	}
	printfTo(a.statusBar, " %s%s %s%s", theme.Tag(stateColor), who, theme.Tag(colors.Foreground), text)
}

func (a *App) renderToasts(entries []notify.Notification) {
	colors := theme.Notifications()
	a.toasts.Clear()
	// The toast strip shows the newest entries that fit its three rows;
	// the queue itself stays bounded and ordered.
	start := 0
	if len(entries) > 3 {
		start = len(entries) - 3
	}
	for _, n := range entries[start:] {
		tag := theme.Tag(colors.InfoFg)
		switch n.Type {
		case notify.Success:
			tag = theme.Tag(colors.SuccessFg)
		case notify.Error:
			tag = theme.Tag(colors.ErrorFg)
		case notify.Warning:
			tag = theme.Tag(colors.WarningFg)
		}
		if n.Message != "" {
			printfTo(a.toasts, "%s%s: %s\n", tag, n.Title, tview.Escape(n.Message))
		} else {
			printfTo(a.toasts, "%s%s\n", tag, tview.Escape(n.Title))
		}
	}
}

// background runs fn off the UI goroutine and applies its result on it.
func (a *App) background(fn func(ctx context.Context) func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Panic in background task", "error", r)
			}
		}()
		apply := fn(context.Background())
		if apply != nil {
			a.app.QueueUpdateDraw(apply)
		}
	}()
}
