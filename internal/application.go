package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/ui"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs the terminal host until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := tview.NewApplication()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			app.Stop()
		case <-ctx.Done():
		}
	}()

	session := usecase.NewSession(logger)
	status := ui.NewStatus()
	board := ui.NewBoardView(session, ui.NewTheme(conf.UI), status, app.Stop)

	app.SetRoot(ui.NewLayout(board, status), true).
		SetFocus(board.Box).
		EnableMouse(!conf.UI.DisableMouse)

	log.Info("Starting terminal host", "mouse", !conf.UI.DisableMouse)

	if err := app.Run(); err != nil {
		return fmt.Errorf("terminal host failed: %w", err)
	}

	log.Info("Terminal host stopped", "board", session.Board())

	return nil
}
