package cmd

import (
	"github.com/Iron-Ham/logsmith"
	"github.com/Iron-Ham/logsmith/ansi"
	"github.com/spf13/cobra"
)

var gradientCmd = &cobra.Command{
	Use:   "gradient",
	Short: "Gradient and palette showcase via the raw output path",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		log, err := logsmith.Get("gradient", logsmith.TRACE)
		if err != nil {
			return err
		}
		if err := log.AddConsole(logsmith.TRACE, nil); err != nil {
			return err
		}

		banner := "  L O G S M I T H  "
		palettes := map[string][]int{
			"rainbow":   ansi.Rainbow,
			"sunset":    ansi.Sunset,
			"ocean":     ansi.Ocean,
			"fire":      ansi.Fire,
			"ice":       ansi.Ice,
			"forest":    ansi.Forest,
			"neon":      ansi.Neon,
			"pastel":    ansi.Pastel,
			"greyscale": ansi.Greyscale,
		}
		for _, name := range []string{"rainbow", "sunset", "ocean", "fire", "ice", "forest", "neon", "pastel", "greyscale"} {
			log.Raw(ansi.Gradient(name+"\t"+banner, ansi.GradientOptions{
				FGCodes:   palettes[name],
				Direction: ansi.Horizontal,
				Intensity: ansi.Bold,
			}))
		}

		printHeader("blended: fire + ice")
		log.Raw(ansi.Gradient(banner, ansi.GradientOptions{
			FGCodes: ansi.BlendPalettes(ansi.Fire, ansi.Ice, 0),
		}))

		printHeader("vertical")
		log.Raw(ansi.Gradient("top\nmiddle\nbottom", ansi.GradientOptions{
			FGCodes:   ansi.Ocean,
			Direction: ansi.Vertical,
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gradientCmd)
}
