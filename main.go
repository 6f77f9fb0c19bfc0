package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/samurai/common"
	"github.com/milk9111/samurai/obj"
	"github.com/milk9111/samurai/prefabs"
	"github.com/milk9111/samurai/view"
	"github.com/spf13/cobra"
)

var (
	flagDebug    bool
	flagLogLevel string
	flagMonitor  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "samurai",
	Short:        "Samurai - walk a samurai around the screen",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "show the debug overlay and hot-reload prefabs/")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error (default $LOG_LEVEL or info)")
	rootCmd.Flags().BoolVarP(&flagMonitor, "monitor", "m", false, "use base monitor instead of primary (for multi-monitor setups)")
}

func run(cmd *cobra.Command, args []string) error {
	logger := common.NewLogger(os.Stderr, flagLogLevel)
	if flagDebug && flagLogLevel == "" {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		logger.Fatal("load player prefab", "err", err)
	}
	themeSpec, err := prefabs.LoadThemeSpec()
	if err != nil {
		logger.Fatal("load theme prefab", "err", err)
	}
	textures, err := obj.LoadTextures(spec)
	if err != nil {
		logger.Fatal("load textures", "err", err)
	}

	if flagMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle(common.ScreenTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	game := NewGame(logger)
	game.ShowView(view.NewMenuView(view.Config{
		Nav:      game,
		Theme:    view.NewTheme(themeSpec),
		Player:   spec,
		Textures: textures,
		Logger:   logger,
		Debug:    flagDebug,
	}))

	logger.Info("starting", "width", common.ScreenWidth, "height", common.ScreenHeight, "debug", flagDebug)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
