package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPin      = "📌"
	IconSun      = "☀"
	IconMoon     = "☾"
	IconLeft     = "◧"
	IconRight    = "◨"
	IconGlobe    = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	GroupCountFormat   = "%s (%d)"
)

// Layout sizing
const (
	IconOnlyButtonSize float32 = 36
	HorizontalRowH     float32 = 44

	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 520
	FormDialogWidth      float32 = 320
	FormDialogHeight     float32 = 200
)

// Transparency slider bounds
const (
	TransparencyMin  = 0
	TransparencyMax  = 100
	TransparencyStep = 5
)
