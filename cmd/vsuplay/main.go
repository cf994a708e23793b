// Command vsuplay drives a VSU from a scripted sequence of register
// writes and either exports the resulting audio to a WAV file, plays it
// live through SDL2, or shows a terminal voice meter while it runs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/vbdev/vbvsu-go/debug"
	"github.com/vbdev/vbvsu-go/export"
	"github.com/vbdev/vbvsu-go/meter"
	"github.com/vbdev/vbvsu-go/playback/sdl"
	"github.com/vbdev/vbvsu-go/vsu"
)

func main() {
	app := cli.NewApp()
	app.Name = "vsuplay"
	app.Description = "Runs a Virtual Sound Unit register-write script"
	app.Usage = "vsuplay [options] <script.json>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "out",
			Usage: "Write rendered audio to this WAV file instead of playing it",
		},
		cli.BoolFlag{
			Name:  "live",
			Usage: "Play audio live through SDL2 (requires a build with -tags sdl2)",
		},
		cli.BoolFlag{
			Name:  "meter",
			Usage: "Show a terminal voice meter while running",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("vsuplay failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		cli.ShowAppHelp(c)
		return fmt.Errorf("no script path provided")
	}
	scriptPath := c.Args().Get(0)

	s, err := loadScript(scriptPath)
	if err != nil {
		return err
	}

	v := vsu.New()
	var sink vsu.BufferedSink

	var term *meter.Meter
	if c.Bool("meter") {
		term, err = meter.Open()
		if err != nil {
			return err
		}
		defer term.Close()
	}

	var player *sdl.Player
	if c.Bool("live") {
		player, err = sdl.Open()
		if err != nil {
			return err
		}
		defer player.Close()
	}

	for _, step := range s.Steps {
		if step.AdvanceCycles > 0 {
			v.Advance(step.AdvanceCycles, &sink)
		}
		v.WriteRegister(step.Offset, step.Value)

		if term != nil {
			term.Render(debug.Extract(v, v))
			if term.PollQuit() {
				return nil
			}
		}
		if player != nil {
			if err := drainToPlayer(&sink, player); err != nil {
				return err
			}
		}
	}

	if s.TrailCycles > 0 {
		v.Advance(s.TrailCycles, &sink)
	}

	if player != nil {
		return drainToPlayer(&sink, player)
	}

	if out := c.String("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("vsuplay: create output file: %w", err)
		}
		defer f.Close()

		left, right := sink.Drain()
		if err := export.WriteWAV(f, left, right); err != nil {
			return err
		}
		slog.Info("wrote WAV file", "path", out, "frames", len(left))
	}

	return nil
}

func drainToPlayer(sink *vsu.BufferedSink, player *sdl.Player) error {
	if sink.Len() == 0 {
		return nil
	}
	left, right := sink.Drain()
	return player.QueueStereo(left, right)
}
