package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/shogi-engine/internal/config"
	"github.com/rocketscienceinc/shogi-engine/internal/notation"
	"github.com/rocketscienceinc/shogi-engine/internal/usecase"
)

var ErrScriptNotFound = errors.New("script path is empty")

// RunApp - replays the configured move script on a new game.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if conf.Script == "" {
		return ErrScriptNotFound
	}

	file, err := os.Open(conf.Script)
	if err != nil {
		return fmt.Errorf("could not open script: %w", err)
	}

	defer func() {
		if err = file.Close(); err != nil {
			log.Error("could not close script", "error", err)
		}
	}()

	manager := usecase.NewGameManager(logger, conf.Players.Blue, conf.Players.Red)

	return Replay(ctx, logger, manager, file)
}

// Replay applies every move of a script in order. It stops at the first rejected move,
// or without error once a King has been captured.
func Replay(ctx context.Context, logger *slog.Logger, manager *usecase.GameManager, script io.Reader) error {
	log := logger.With("component", "replay")

	lines, err := notation.ReadScript(script)
	if err != nil {
		return err
	}

	applied := 0
	for i, line := range lines {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("replay interrupted: %w", err)
		}

		board := manager.Board()
		if board.GameOver() {
			log.Warn("game is over, ignoring remaining moves", "remaining", len(lines)-i)
			break
		}

		move, err := notation.ParseMove(line, board.CurrentPlayer().Colour)
		if err != nil {
			return fmt.Errorf("turn %d: %w", i+1, err)
		}

		if _, err = manager.MakeTurn(move.From, move.To, move.Promote); err != nil {
			return fmt.Errorf("turn %d %q: %w", i+1, line, err)
		}
		applied++
	}

	board := manager.Board()
	log.Info("replay finished",
		"turns", applied,
		"game_over", board.GameOver(),
		"winner", manager.Winner().String(),
		"to_move", board.CurrentPlayer().Name,
		"blue_hand", board.Blue().HandSize(),
		"red_hand", board.Red().HandSize(),
	)

	return nil
}
