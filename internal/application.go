package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-local/transport/rest"
	"github.com/rocketscienceinc/tictactoe-local/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-local/transport/window"
)

// RunApp - runs the application.
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

	grid, prompt := screenLayout(conf)
	session := usecase.NewSession(logger, entity.NewGame(), grid, prompt)

	statusErrCh := make(chan error, 1)
	if conf.Status.Addr != "" {
		go func() {
			log.Info("Starting status server", "addr", conf.Status.Addr)
			if err := rest.Start(ctx, conf.Status.Addr, rest.NewRouter(logger, session)); err != nil {
				log.Error("status server error", "error", err)
				statusErrCh <- err
				cancel()
			}
		}()
	}

	if err := runUI(ctx, logger, conf, session); err != nil {
		return err
	}

	select {
	case err := <-statusErrCh:
		return fmt.Errorf("status server error: %w", err)
	default:
		log.Info("Game closed, shutting down")
		return nil
	}
}

func screenLayout(conf *config.Config) (layout.Grid, layout.Prompt) {
	if conf.UI == config.UITerminal {
		grid := terminal.NewGrid()
		return grid, terminal.NewPrompt(grid)
	}

	grid := window.NewGrid(conf.Window.CellSize)
	return grid, window.NewPrompt(grid)
}

func runUI(ctx context.Context, logger *slog.Logger, conf *config.Config, session *usecase.Session) error {
	if conf.UI == config.UITerminal {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("could not open terminal: %w", err)
		}

		if err = terminal.New(logger, session, screen).Run(ctx, conf.Window.FPS); err != nil {
			return fmt.Errorf("terminal ui error: %w", err)
		}
		return nil
	}

	if err := window.New(logger, session).Run(ctx, conf.Window.FPS); err != nil {
		return fmt.Errorf("window ui error: %w", err)
	}
	return nil
}
