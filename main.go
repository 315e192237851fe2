package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ratel-online/notepad/config"
	"github.com/ratel-online/notepad/database"
	"github.com/ratel-online/notepad/network"
	"github.com/ratel-online/notepad/session"
)

type flags struct {
	config  string
	dir     string
	watch   string
	debug   bool
	noColor bool
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintln(os.Stderr, "main", err)
			os.Exit(2)
		}
	}()
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "notepad [snapshot]",
		Short: "Detective notes for a game of Clue",
		Long: `notepad records every question asked at the table and rebuilds, after each
turn, who can and cannot hold each card.

With no arguments a new session is started. With a snapshot path the saved
session is resumed.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, args)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", "", "config file (default ~/.notepad/notepad.yaml)")
	cmd.Flags().StringVar(&f.dir, "dir", "", "directory for new session files")
	cmd.Flags().StringVar(&f.watch, "watch", "", "serve the board to websocket watchers on this address, e.g. :8080")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log every deduction step")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(f *flags, args []string) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.dir != "" {
		cfg.SessionDir = f.dir
	}
	if f.watch != "" {
		cfg.WatchAddr = f.watch
	}
	if f.noColor || !cfg.Color {
		color.NoColor = true
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger, err := newLogger(level, f.debug || os.Getenv("DEBUG") != "")
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := session.Options{
		In:          os.Stdin,
		Out:         color.Output,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		Logger:      logger,
	}

	var s *session.Session
	var store *database.Store
	if len(args) == 1 {
		store = database.NewStore(args[0], logger)
		snapshot, err := store.Load()
		if err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}
		if s, err = session.Resume(snapshot, opts); err != nil {
			return err
		}
	} else {
		board, err := cfg.Vocabulary()
		if err != nil {
			return err
		}
		if s, err = session.Start(board, opts); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err = os.MkdirAll(cfg.SessionDir, 0755); err != nil {
			return err
		}
		store = database.NewStore(filepath.Join(cfg.SessionDir, database.FileName(time.Now())), logger)
	}
	if err = s.PersistTo(store); err != nil {
		return err
	}

	if cfg.WatchAddr != "" {
		feed := network.NewFeed(logger)
		s.BoardRebuilt.AddListener(feed)
		server := network.NewWebsocketServer(cfg.WatchAddr, feed, logger)
		go func() {
			if err := server.Serve(); err != nil {
				logger.Error("board feed stopped", zap.Error(err))
			}
		}()
		defer func() {
			_ = server.Close()
		}()
	}

	return s.Run()
}

func newLogger(level zapcore.Level, debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
