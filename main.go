// turncoat is a top-down stealth brawler: fight through the facility's
// guards, or flip the defection switch and turn the alarm against them.
//
// Usage:
//
//	turncoat [--level <name>] [--debug] [--seed <n>] [--watch] [--monitor]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/turncoat/assets"
	"github.com/milk9111/turncoat/prefabs"
	"github.com/spf13/cobra"
)

var (
	flagLevel   string
	flagDebug   bool
	flagSeed    uint64
	flagWatch   bool
	flagMonitor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turncoat",
	Short: "Top-down brawler about guards, alarms and changing sides",
	Long: `Fight through the facility one level at a time. Every hit you take,
every guard that spots you and every guard you drop raises the alarm, and
the guards get faster and meaner as it climbs.

Controls:
  WASD/Arrows    - Move
  Mouse/J        - Attack (towards the cursor)
  R              - Restart
  Esc            - Quit`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "level name in levels/ (basename, .json optional)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "debug logging and collider overlay")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed for enemy wander")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload prefabs and scripts when they change on disk")
	rootCmd.Flags().BoolVar(&flagMonitor, "monitor", false, "use base monitor instead of primary (for multi-monitor setups)")
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "turncoat",
	})
	logger.SetStyles(logStyles())
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	if flagMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("turncoat")

	sounds, err := assets.NewLibrary(nil, 0.6)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		sounds = nil
	}

	g, err := NewGame(GameOptions{
		Level:  flagLevel,
		Debug:  flagDebug,
		Seed:   flagSeed,
		Logger: logger,
		Sounds: sounds,
	})
	if err != nil {
		return err
	}

	if flagWatch {
		watcher, err := prefabs.NewWatcher()
		if err != nil {
			logger.Error("prefab watcher", "err", err)
		} else {
			defer watcher.Close()
			g.Watch(watcher)
		}
	}

	return ebiten.RunGame(g)
}

// logStyles tints the gameplay log levels so alarm and death chatter is
// easy to pick out of a debug run.
func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("63"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	styles.Keys["alarm"] = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	return styles
}
