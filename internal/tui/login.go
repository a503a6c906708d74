package tui

import (
	"context"

	"github.com/rivo/tview"

	"bellum/internal/api"
	"bellum/internal/theme"
)

// loginPage hosts the sign-in and registration forms.
type loginPage struct {
	app  *App
	root *tview.Flex
	form *tview.Form

	registering bool
}

func newLoginPage(a *App) *loginPage {
	p := &loginPage{app: a}
	p.form = theme.NewForm()
	p.form.SetBorder(true)
	p.buildForm()

	p.root = tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p.form, 13, 0, true).
			AddItem(nil, 0, 1, false), 48, 0, true).
		AddItem(nil, 0, 1, false)
	return p
}

func (p *loginPage) buildForm() {
	tr := p.app.tr
	p.form.Clear(true)

	if p.registering {
		p.form.SetTitle(" " + tr.T("login.register") + " ")
		p.form.AddInputField(tr.T("login.email"), "", 32, nil, nil)
		p.form.AddInputField(tr.T("login.nickname"), "", 32, nil, nil)
		p.form.AddPasswordField(tr.T("login.password"), "", 32, '*', nil)
		p.form.AddButton(tr.T("login.register"), p.submitRegister)
		p.form.AddButton(tr.T("login.title"), func() {
			p.registering = false
			p.buildForm()
		})
		return
	}

	p.form.SetTitle(" " + tr.T("login.title") + " ")
	p.form.AddInputField(tr.T("login.email"), "", 32, nil, nil)
	p.form.AddPasswordField(tr.T("login.password"), "", 32, '*', nil)
	p.form.AddButton(tr.T("login.submit"), p.submitLogin)
	p.form.AddButton(tr.T("login.register"), func() {
		p.registering = true
		p.buildForm()
	})
}

func (p *loginPage) fieldText(index int) string {
	field, ok := p.form.GetFormItem(index).(*tview.InputField)
	if !ok {
		return ""
	}
	return field.GetText()
}

// submitLogin establishes the session and navigates once the new state
// is committed; there is no settling delay because the session manager's
// state change is synchronous.
func (p *loginPage) submitLogin() {
	email := p.fieldText(0)
	password := p.fieldText(1)
	a := p.app

	a.background(func(ctx context.Context) func() {
		err := a.sessions.Login(ctx, email, password)
		return func() {
			if err != nil {
				a.queue.Error(a.tr.T("login.failed"), api.Detail(err, a.tr.T("error.load_failed")))
				return
			}
			a.setStatus("")
			a.switchTo(pageDashboard)
		}
	})
}

func (p *loginPage) submitRegister() {
	req := api.RegisterRequest{
		Email:    p.fieldText(0),
		Nickname: p.fieldText(1),
		Password: p.fieldText(2),
	}
	a := p.app

	a.background(func(ctx context.Context) func() {
		err := a.sessions.Register(ctx, req)
		return func() {
			if err != nil {
				a.queue.Error(a.tr.T("register.failed"), api.Detail(err, a.tr.T("error.load_failed")))
				return
			}
			a.queue.Success(a.tr.T("register.submitted"), "")
			a.setStatus("")
			a.switchTo(pageDashboard)
		}
	})
}
