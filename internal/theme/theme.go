package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Standard ANSI 16-color palette using fixed hex values so the UI looks
// the same regardless of terminal color scheme.
var (
	Black     = tcell.NewHexColor(0x000000)
	Red       = tcell.NewHexColor(0x800000)
	Green     = tcell.NewHexColor(0x008000)
	Brown     = tcell.NewHexColor(0x808000)
	Blue      = tcell.NewHexColor(0x000080)
	Magenta   = tcell.NewHexColor(0x800080)
	Cyan      = tcell.NewHexColor(0x008080)
	LightGray = tcell.NewHexColor(0xC0C0C0)

	DarkGray     = tcell.NewHexColor(0x808080)
	LightRed     = tcell.NewHexColor(0xFF0000)
	LightGreen   = tcell.NewHexColor(0x00FF00)
	Yellow       = tcell.NewHexColor(0xFFFF00)
	LightBlue    = tcell.NewHexColor(0x0000FF)
	LightMagenta = tcell.NewHexColor(0xFF00FF)
	LightCyan    = tcell.NewHexColor(0x00FFFF)
	White        = tcell.NewHexColor(0xFFFFFF)
)

// DialogColors defines the color scheme for dialogs, forms and modals.
type DialogColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	SelectedBg tcell.Color
	SelectedFg tcell.Color
	ButtonBg   tcell.Color
	ButtonFg   tcell.Color
	FieldBg    tcell.Color
	FieldFg    tcell.Color
}

// StatusColors defines the color scheme for the status bar.
type StatusColors struct {
	Background tcell.Color
	Foreground tcell.Color
	ErrorFg    tcell.Color
	OnlineFg   tcell.Color
	OfflineFg  tcell.Color
}

// NotificationColors styles the toast overlay per notification type.
type NotificationColors struct {
	SuccessFg tcell.Color
	ErrorFg   tcell.Color
	WarningFg tcell.Color
	InfoFg    tcell.Color
	Border    tcell.Color
}

// BattleColors styles the battle-log timeline.
type BattleColors struct {
	Header   tcell.Color
	Round    tcell.Color
	Friendly tcell.Color
	Hostile  tcell.Color
	Neutral  tcell.Color
	Victory  tcell.Color
	Defeat   tcell.Color
	Draw     tcell.Color
	Reward   tcell.Color
	Info     tcell.Color
}

func Dialog() DialogColors {
	return DialogColors{
		Background: Blue,
		Foreground: White,
		Border:     White,
		Title:      White,
		SelectedBg: White,
		SelectedFg: Black,
		ButtonBg:   LightGray,
		ButtonFg:   Black,
		FieldBg:    tcell.NewHexColor(0x000040),
		FieldFg:    White,
	}
}

func Status() StatusColors {
	return StatusColors{
		Background: Blue,
		Foreground: LightGray,
		ErrorFg:    LightRed,
		OnlineFg:   LightGreen,
		OfflineFg:  DarkGray,
	}
}

func Notifications() NotificationColors {
	return NotificationColors{
		SuccessFg: LightGreen,
		ErrorFg:   LightRed,
		WarningFg: Yellow,
		InfoFg:    LightCyan,
		Border:    LightGray,
	}
}

func Battle() BattleColors {
	return BattleColors{
		Header:   White,
		Round:    Yellow,
		Friendly: LightGreen,
		Hostile:  LightRed,
		Neutral:  LightGray,
		Victory:  LightGreen,
		Defeat:   LightRed,
		Draw:     Yellow,
		Reward:   LightCyan,
		Info:     DarkGray,
	}
}
