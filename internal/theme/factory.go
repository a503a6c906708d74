package theme

import (
	"github.com/rivo/tview"
)

// Factory helpers apply the theme while still allowing manual styling.

// NewForm creates a form with dialog colors applied.
func NewForm() *tview.Form {
	form := tview.NewForm()
	colors := Dialog()

	form.SetBackgroundColor(colors.Background)
	form.SetFieldBackgroundColor(colors.FieldBg)
	form.SetFieldTextColor(colors.FieldFg)
	form.SetLabelColor(colors.Foreground)
	form.SetButtonBackgroundColor(colors.ButtonBg)
	form.SetButtonTextColor(colors.ButtonFg)
	form.SetBorderColor(colors.Border)
	form.SetTitleColor(colors.Title)

	return form
}

// NewModal creates a modal with dialog colors applied.
func NewModal() *tview.Modal {
	modal := tview.NewModal()
	colors := Dialog()

	modal.SetBackgroundColor(colors.Background)
	modal.SetTextColor(colors.Foreground)
	modal.SetButtonBackgroundColor(colors.ButtonBg)
	modal.SetButtonTextColor(colors.ButtonFg)

	return modal
}

// NewList creates a list with dialog colors applied.
func NewList() *tview.List {
	list := tview.NewList()
	colors := Dialog()

	list.SetBackgroundColor(colors.Background)
	list.SetMainTextColor(colors.Foreground)
	list.SetSelectedTextColor(colors.SelectedFg)
	list.SetSelectedBackgroundColor(colors.SelectedBg)
	list.SetBorderColor(colors.Border)
	list.SetTitleColor(colors.Title)
	list.SetBorder(true)

	return list
}

// NewTable creates a table with dialog colors applied.
func NewTable() *tview.Table {
	table := tview.NewTable()
	colors := Dialog()

	table.SetBackgroundColor(Black)
	table.SetBorderColor(colors.Border)
	table.SetTitleColor(colors.Title)

	return table
}

// NewTextView creates a text view on the default background with dynamic
// color tags enabled.
func NewTextView() *tview.TextView {
	view := tview.NewTextView()

	view.SetBackgroundColor(Black)
	view.SetTextColor(LightGray)
	view.SetDynamicColors(true)

	return view
}

// NewStatusBar creates a text view styled for the bottom status bar.
func NewStatusBar() *tview.TextView {
	view := tview.NewTextView()
	colors := Status()

	view.SetBackgroundColor(colors.Background)
	view.SetTextColor(colors.Foreground)
	view.SetDynamicColors(true)

	return view
}

// Tag formats a tcell color as a tview dynamic color tag.
func Tag(c interface{ Hex() int32 }) string {
	hex := c.Hex()
	return "[#" + hexString(hex) + "]"
}

func hexString(v int32) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		out[i] = digits[v&0xf]
		v >>= 4
	}
	return string(out)
}
