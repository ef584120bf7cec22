package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/tunedeck/internal/app"
	"github.com/llehouerou/tunedeck/internal/config"
	"github.com/llehouerou/tunedeck/internal/errmsg"
	"github.com/llehouerou/tunedeck/internal/logging"
	"github.com/llehouerou/tunedeck/internal/playlists"
	"github.com/llehouerou/tunedeck/internal/state"
)

var version = "dev"

type options struct {
	configPath string
	musicPath  string
	dataPath   string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "tunedeck",
		Short:         "Build playlists from a music directory in the terminal",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: XDG config dir, then ./config.toml)")
	cmd.Flags().StringVarP(&opts.musicPath, "music", "m", "", "music directory, overrides the config")
	cmd.Flags().StringVar(&opts.dataPath, "data", "", "playlists file (default: XDG data dir)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error, overrides the config")

	return cmd
}

func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if opts.musicPath != "" {
		cfg.MusicPath = opts.musicPath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, logCloser, err := logging.Init(cfg.Log.Level, cfg.LogFile())
	if err != nil {
		// The UI owns the terminal, so a broken log file only disables logging.
		logger, logCloser = zerolog.Nop(), io.NopCloser(nil)
	}
	defer logCloser.Close()

	dataPath := opts.dataPath
	if dataPath == "" {
		dataPath = playlists.DefaultPath()
	}
	store, err := playlists.Open(dataPath)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpPlaylistLoad, dataPath, err))
	}

	stateMgr, err := state.OpenDefault()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateLoad, err))
	}
	defer stateMgr.Close()

	logger.Info().
		Str("version", version).
		Str("music", cfg.Music()).
		Str("data", dataPath).
		Msg("starting")

	m := app.New(app.Options{
		Config:   cfg,
		Store:    store,
		StateMgr: stateMgr,
		Logger:   logging.Component(logger, "app"),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
