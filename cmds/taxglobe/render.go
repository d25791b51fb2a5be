package main

import (
	"github.com/spf13/cobra"

	"github.com/safing/taxglobe/base/log"
	"github.com/safing/taxglobe/service/globe"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dataset onto a still globe image",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	flags := renderCmd.Flags()
	{
		flags.StringP("output", "o", "", "Output PNG file. Defaults to <dataset>_globe.png.")
		flags.String("focus", "", "Center the view on a country code, region or continent.")
		flags.Float64("lon", 0, "Longitude facing the viewer.")
		flags.Float64("lat", 0, "Latitude facing the viewer.")
		flags.Float64("roll", 0, "Rotation around the view center in degrees.")
		flags.Int("width", 0, "Image width in pixels.")
		flags.Int("height", 0, "Image height in pixels.")
		flags.Bool("labels", false, "Label visible countries with their code.")
		flags.Bool("no-legend", false, "Do not draw the legend.")
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Render.Output, _ = flags.GetString("output")
	}
	if flags.Changed("focus") {
		cfg.Render.Focus, _ = flags.GetString("focus")
	}
	if flags.Changed("lon") {
		cfg.Render.Lon, _ = flags.GetFloat64("lon")
		cfg.Render.Focus = ""
	}
	if flags.Changed("lat") {
		cfg.Render.Lat, _ = flags.GetFloat64("lat")
		cfg.Render.Focus = ""
	}
	if flags.Changed("roll") {
		cfg.Render.Roll, _ = flags.GetFloat64("roll")
	}
	if flags.Changed("width") {
		cfg.Render.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Render.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("labels") {
		cfg.Render.Labels, _ = flags.GetBool("labels")
	}
	if noLegend, _ := flags.GetBool("no-legend"); noLegend {
		cfg.Render.Legend = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	scene, _, err := buildScene(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	view, err := stillView(cfg)
	if err != nil {
		return err
	}
	renderer, err := globe.NewRenderer(stillStyle(cfg))
	if err != nil {
		return err
	}

	log.Infof("taxglobe: rendering %s at lon %.1f lat %.1f", cfg.Dataset, view.Lon, view.Lat)
	output := cfg.Render.Output
	if output == "" {
		output = cfg.Dataset + "_globe.png"
	}
	return globe.SavePNG(output, renderer.Render(scene, view))
}
