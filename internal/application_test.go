package application

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/shogi-engine/internal/apperror"
	"github.com/rocketscienceinc/shogi-engine/internal/config"
	"github.com/rocketscienceinc/shogi-engine/internal/notation"
	"github.com/rocketscienceinc/shogi-engine/internal/shogi"
	"github.com/rocketscienceinc/shogi-engine/testing/suite"
)

func TestReplay(t *testing.T) {
	t.Run("example game ends with a king capture", func(t *testing.T) {
		// Given: the bundled example script
		s := suite.New(t)
		script, err := os.Open(filepath.Join("..", "games", "example.txt"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = script.Close() })

		// When: replaying it
		err = Replay(context.Background(), s.Logger, s.Manager, script)

		// Then: blue wins
		require.NoError(t, err)
		assert.True(t, s.Manager.Board().GameOver())
		assert.Equal(t, shogi.Blue, s.Manager.Winner())
	})

	t.Run("moves after the game is over are ignored", func(t *testing.T) {
		s := suite.New(t)
		script := "C3-C4\nG7-G6\nB2-H8\nA7-A6\nH8-G7\nB7-B6\nG7-E9\nC7-C6\n"

		err := Replay(context.Background(), s.Logger, s.Manager, strings.NewReader(script))

		require.NoError(t, err)
		assert.True(t, s.Manager.Board().GameOver())
	})

	t.Run("stops at the first illegal move", func(t *testing.T) {
		s := suite.New(t)
		script := "C3-C4\nG7-G5\nE3-E4\n"

		err := Replay(context.Background(), s.Logger, s.Manager, strings.NewReader(script))

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Contains(t, err.Error(), "turn 2")

		piece, err := s.Manager.Board().At(shogi.BoardSquare(2, 4))
		require.NoError(t, err)
		assert.Equal(t, shogi.NewPiece(shogi.Pawn, shogi.Blue), piece)
	})

	t.Run("bad notation", func(t *testing.T) {
		s := suite.New(t)

		err := Replay(context.Background(), s.Logger, s.Manager, strings.NewReader("C3 to C4\n"))

		require.ErrorIs(t, err, notation.ErrBadNotation)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := suite.New(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Replay(ctx, s.Logger, s.Manager, strings.NewReader("C3-C4\n"))

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunApp(t *testing.T) {
	s := suite.New(t)

	t.Run("no script", func(t *testing.T) {
		err := RunApp(s.Logger, &config.Config{})
		require.ErrorIs(t, err, ErrScriptNotFound)
	})

	t.Run("missing script file", func(t *testing.T) {
		err := RunApp(s.Logger, &config.Config{Script: filepath.Join(t.TempDir(), "nope.txt")})
		require.Error(t, err)
	})

	t.Run("example script", func(t *testing.T) {
		conf := &config.Config{
			Script:  filepath.Join("..", "games", "example.txt"),
			Players: config.Players{Blue: "Sente", Red: "Gote"},
		}
		require.NoError(t, RunApp(s.Logger, conf))
	})
}
