package logsmith

import "github.com/Iron-Ham/logsmith/ansi"

// Built-in color themes, keyed by severity. Apply with
// ApplyColorTheme; pass nil to restore the defaults.
var (
	// LightTheme suits light terminal backgrounds.
	LightTheme = map[Level]LevelStyle{
		TRACE:   {FG: ansi.FG.DimGrey, Intensity: ansi.Dim},
		DEBUG:   {FG: ansi.FG.SkyBlue, Intensity: ansi.Dim},
		INFO:    {FG: ansi.FG.Green},
		WARNING: {FG: ansi.FG.Orange, Intensity: ansi.Bold},
		ERROR:   {FG: ansi.FG.BrightRed, Intensity: ansi.Bold},
		CRITICAL: {
			FG: ansi.FG.BrightYellow, BG: ansi.BG.Red,
			Intensity: ansi.Bold, Styles: []ansi.Code{ansi.Underline},
		},
	}

	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = map[Level]LevelStyle{
		TRACE:   {FG: ansi.FG.BrightBlack},
		DEBUG:   {FG: ansi.FG.Blue},
		INFO:    {FG: ansi.FG.Green},
		WARNING: {FG: ansi.FG.Orange},
		ERROR:   {FG: ansi.FG.Red},
		CRITICAL: {
			FG: ansi.FG.Yellow, BG: ansi.BG.Red,
			Styles: []ansi.Code{ansi.Underline},
		},
	}

	// NeonTheme uses saturated 256-color hues.
	NeonTheme = map[Level]LevelStyle{
		TRACE:    {FG: "38;5;51"},
		DEBUG:    {FG: "38;5;201"},
		INFO:     {FG: "38;5;46"},
		WARNING:  {FG: "38;5;226"},
		ERROR:    {FG: "38;5;196"},
		CRITICAL: {FG: "38;5;15", BG: "48;5;196"},
	}

	// PastelTheme uses soft tones.
	PastelTheme = map[Level]LevelStyle{
		TRACE:   {FG: "38;5;153", Intensity: ansi.Dim},
		DEBUG:   {FG: "38;5;159", Intensity: ansi.Normal},
		INFO:    {FG: "38;5;151", Intensity: ansi.Normal},
		WARNING: {FG: "38;5;223", Intensity: ansi.Bold},
		ERROR:   {FG: "38;5;217", Intensity: ansi.Bold},
		CRITICAL: {
			FG: "38;5;231", BG: "48;5;217",
			Intensity: ansi.Bold, Styles: []ansi.Code{ansi.Underline},
		},
	}

	// FireTheme runs ember orange to red.
	FireTheme = map[Level]LevelStyle{
		TRACE:   {FG: "38;5;130", Intensity: ansi.Dim},
		DEBUG:   {FG: "38;5;166", Intensity: ansi.Normal},
		INFO:    {FG: "38;5;208", Intensity: ansi.Normal},
		WARNING: {FG: "38;5;214", Intensity: ansi.Bold},
		ERROR:   {FG: "38;5;196", Intensity: ansi.Bold},
		CRITICAL: {
			FG: "38;5;226", BG: "48;5;196",
			Intensity: ansi.Bold, Styles: []ansi.Code{ansi.Underline},
		},
	}

	// OceanTheme runs deep navy to bright cyan.
	OceanTheme = map[Level]LevelStyle{
		TRACE:   {FG: "38;5;24", Intensity: ansi.Dim},
		DEBUG:   {FG: "38;5;31", Intensity: ansi.Normal},
		INFO:    {FG: "38;5;37", Intensity: ansi.Normal},
		WARNING: {FG: "38;5;43", Intensity: ansi.Bold},
		ERROR:   {FG: "38;5;81", Intensity: ansi.Bold},
		CRITICAL: {
			FG: ansi.FG.White, BG: "48;5;24",
			Intensity: ansi.Bold, Styles: []ansi.Code{ansi.Underline},
		},
	}
)

// BuiltinThemes maps theme names to their severity/style tables, for
// lookup by CLI tools and configuration layers.
var BuiltinThemes = map[string]map[Level]LevelStyle{
	"light":  LightTheme,
	"dark":   DarkTheme,
	"neon":   NeonTheme,
	"pastel": PastelTheme,
	"fire":   FireTheme,
	"ocean":  OceanTheme,
}
