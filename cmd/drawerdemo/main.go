// Command drawerdemo shows a draggable drawer in a window.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"honnef.co/go/drawer/drawer"
	"honnef.co/go/drawer/internal/config"
	"honnef.co/go/drawer/snap"
	"honnef.co/go/drawer/swipe"

	"gioui.org/app"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "drawerdemo",
		Usage: "drag a drawer around",
		Flags: flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			cfg.Logger = logger
			logger.Info("starting", "direction", cfg.Direction, "snap_points", len(cfg.SnapPoints))

			go func() {
				w := new(app.Window)
				w.Option(app.Title("drawerdemo"))
				err := run(w, cfg, logger)
				if err != nil {
					log.Fatal(err)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration `FILE`"},
		&cli.StringFlag{Name: "direction", Aliases: []string{"d"}, Usage: "direction that closes the drawer (down, up, left, right)"},
		&cli.StringSliceFlag{Name: "snap", Aliases: []string{"s"}, Usage: "snap point in pixels, as a percentage such as 50%, or closed"},
		&cli.IntFlag{Name: "active", Usage: "index of the initial snap point"},
		&cli.FloatFlag{Name: "close-threshold", Usage: "distance that closes the drawer, in pixels or as a fraction of the panel"},
		&cli.FloatFlag{Name: "velocity-threshold", Usage: "release velocity that closes the drawer, in pixels per millisecond"},
		&cli.DurationFlag{Name: "scroll-lock", Usage: "time after scrolling during which drags don't start"},
		&cli.BoolFlag{Name: "disabled", Usage: "ignore drags"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log gesture sessions"},
	}
}

// loadConfig reads the configuration file, if any, and applies flags on top
// of it.
func loadConfig(c *cli.Command) (drawer.Config, error) {
	var cfg drawer.Config
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return drawer.Config{}, err
		}
	}
	if c.IsSet("direction") {
		dir, err := swipe.ParseDirection(c.String("direction"))
		if err != nil {
			return drawer.Config{}, err
		}
		cfg.Direction = dir
	}
	if c.IsSet("snap") {
		cfg.SnapPoints = snap.ParseAll(c.StringSlice("snap"))
	}
	if c.IsSet("active") {
		cfg.ActiveSnapPointIndex = int(c.Int("active"))
	}
	if c.IsSet("close-threshold") {
		cfg.CloseThreshold = float32(c.Float("close-threshold"))
	}
	if c.IsSet("velocity-threshold") {
		cfg.VelocityThreshold = float32(c.Float("velocity-threshold"))
	}
	if c.IsSet("scroll-lock") {
		cfg.ScrollLockTimeout = c.Duration("scroll-lock")
	}
	if c.IsSet("disabled") {
		cfg.Disabled = c.Bool("disabled")
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return drawer.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
