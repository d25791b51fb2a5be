package main

import (
	"github.com/spf13/cobra"

	"github.com/safing/taxglobe/service/animate"
)

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Render the dataset onto a rotating globe GIF",
	Args:  cobra.NoArgs,
	RunE:  runAnimate,
}

func init() {
	rootCmd.AddCommand(animateCmd)

	flags := animateCmd.Flags()
	{
		flags.StringP("output", "o", "", "Output GIF file. Defaults to <dataset>_globe.gif.")
		flags.Int("frames", 0, "Number of frames of one rotation.")
		flags.Int("supersample", 0, "Render frames this many times larger before scaling them down.")
		flags.Float64("lat", 0, "Latitude the globe is tilted to.")
	}
}

func runAnimate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Animation.Output, _ = flags.GetString("output")
	}
	if flags.Changed("frames") {
		cfg.Animation.Frames, _ = flags.GetInt("frames")
	}
	if flags.Changed("supersample") {
		cfg.Animation.Supersample, _ = flags.GetInt("supersample")
	}
	if flags.Changed("lat") {
		cfg.Animation.Lat, _ = flags.GetFloat64("lat")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	scene, _, err := buildScene(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	animator, err := animate.New(frameStyle(cfg), animate.Options{
		Frames:      cfg.Animation.Frames,
		Delay:       cfg.Animation.Delay,
		Supersample: cfg.Animation.Supersample,
		Lat:         cfg.Animation.Lat,
	})
	if err != nil {
		return err
	}
	g, err := animator.Run(cmd.Context(), scene)
	if err != nil {
		return err
	}
	stats.frames(len(g.Image))

	output := cfg.Animation.Output
	if output == "" {
		output = animate.OutputPath("", cfg.Dataset)
	}
	return animate.Save(output, g)
}
