package suite

import (
	"log/slog"
	"os"
	"testing"

	"github.com/rocketscienceinc/shogi-engine/internal/usecase"
)

const (
	bluePlayer = "Blue"
	redPlayer  = "Red"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Manager *usecase.GameManager
}

// New returns a fixture holding a debug logger and a manager over a fresh board.
func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &Suite{
		T:       t,
		Logger:  logger,
		Manager: usecase.NewGameManager(logger, bluePlayer, redPlayer),
	}
}
