package ansi

// Foreground color codes. Basic entries use the classic 30-37/90-97
// range; named entries map into the xterm-256 palette via 38;5;N,
// except TrueWhite and ConsoleDefault, which are 24-bit 38;2;R;G;B
// codes.
var FG = struct {
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White                                 Code
	BrightBlack, BrightRed, BrightGreen, BrightYellow                                     Code
	BrightBlue, BrightMagenta, BrightCyan, BrightWhite                                    Code
	Orange, SoftPurple, Grey, DimGrey, BrightGrey, TrueWhite, ConsoleDefault              Code
	NeonCyan, NeonMagenta, NeonGreen, NeonYellow, NeonRed                                 Code
	Chartreuse, SpringGreen, MintGreen, SkyBlue, IceBlue, SoftAzure                       Code
	Periwinkle, Lavender, SoftViolet, HotPink, Rose, CoralPink                            Code
	LightOrange, SoftOrange, Peach, BlueGrey, GreenGrey, PurpleGrey                       Code
}{
	Black: "30", Red: "31", Green: "32", Yellow: "33",
	Blue: "34", Magenta: "35", Cyan: "36", White: "37",

	BrightBlack: "90", BrightRed: "91", BrightGreen: "92", BrightYellow: "93",
	BrightBlue: "94", BrightMagenta: "95", BrightCyan: "96", BrightWhite: "97",

	Orange:         "38;5;208",
	SoftPurple:     "38;5;141",
	Grey:           "38;5;244",
	DimGrey:        "38;5;240",
	BrightGrey:     "38;5;248",
	TrueWhite:      "38;2;255;255;255",
	ConsoleDefault: "38;2;188;188;188",

	NeonCyan: "38;5;51", NeonMagenta: "38;5;201", NeonGreen: "38;5;46",
	NeonYellow: "38;5;226", NeonRed: "38;5;196",

	Chartreuse: "38;5;190", SpringGreen: "38;5;48", MintGreen: "38;5;49",
	SkyBlue: "38;5;117", IceBlue: "38;5;123", SoftAzure: "38;5;159",

	Periwinkle: "38;5;104", Lavender: "38;5;147", SoftViolet: "38;5;183",
	HotPink: "38;5;205", Rose: "38;5;212", CoralPink: "38;5;211",

	LightOrange: "38;5;215", SoftOrange: "38;5;216", Peach: "38;5;223",
	BlueGrey: "38;5;67", GreenGrey: "38;5;65", PurpleGrey: "38;5;103",
}

// Background color codes mirroring FG, using 40-47/100-107 and 48;5;N.
var BG = struct {
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White              Code
	BrightBlack, BrightRed, BrightGreen, BrightYellow                  Code
	BrightBlue, BrightMagenta, BrightCyan, BrightWhite                 Code
	Orange, SoftPurple                                                 Code
	NeonCyan, NeonMagenta, NeonGreen, NeonYellow, NeonRed              Code
}{
	Black: "40", Red: "41", Green: "42", Yellow: "43",
	Blue: "44", Magenta: "45", Cyan: "46", White: "47",

	BrightBlack: "100", BrightRed: "101", BrightGreen: "102", BrightYellow: "103",
	BrightBlue: "104", BrightMagenta: "105", BrightCyan: "106", BrightWhite: "107",

	Orange:     "48;5;208",
	SoftPurple: "48;5;141",

	NeonCyan: "48;5;51", NeonMagenta: "48;5;201", NeonGreen: "48;5;46",
	NeonYellow: "48;5;226", NeonRed: "48;5;196",
}

// Gradient palettes: xterm-256 indices, mapped onto 38;5;N / 48;5;N by
// the gradient renderer.
var (
	// Rainbow runs red through purple.
	Rainbow = []int{196, 208, 226, 46, 21, 93}

	// Sunset is a smooth red-to-yellow ramp.
	Sunset = []int{196, 202, 208, 214, 220, 226}

	// Ocean is a deep-blue-to-cyan ramp.
	Ocean = []int{18, 19, 20, 21, 27, 33, 39, 45, 51}

	// Fire runs deep red to bright yellow.
	Fire = []int{52, 88, 124, 160, 196, 202, 226}

	// Ice runs blue through cyan to white.
	Ice = []int{21, 27, 33, 39, 51, 87, 231}

	// Greyscale is a dark-to-light grey ramp.
	Greyscale = []int{232, 235, 239, 244, 250, 255}

	// Forest is a dark-to-bright green ramp.
	Forest = []int{22, 28, 34, 40, 46, 82, 118}

	// Neon is a bright cyberpunk ramp.
	Neon = []int{201, 93, 51, 87, 123, 159, 195}

	// Pastel is a soft-tone ramp.
	Pastel = []int{224, 225, 189, 151, 146, 182, 218}
)
