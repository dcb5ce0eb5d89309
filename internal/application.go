package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-client/internal/config"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/render"
	"github.com/rocketscienceinc/tictactoe-client/internal/render/terminal"
	"github.com/rocketscienceinc/tictactoe-client/internal/repository"
	"github.com/rocketscienceinc/tictactoe-client/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-client/internal/service"
	"github.com/rocketscienceinc/tictactoe-client/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-client/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-client/transport/rest"
	"github.com/rocketscienceinc/tictactoe-client/transport/websocket"
)

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrUnknownRenderer = errors.New("unknown renderer")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	geometry := tictactoe.NewGeometry(conf.Board.OriginX, conf.Board.OriginY, conf.Board.CellSize)

	channel := websocket.New(logger, conf.Channel.URL, entity.PlayerID(conf.Channel.PlayerID), conf.Channel.MaxReconnectInterval)

	assetRepo := repository.NewAssetRepository(redisStorage, conf.Redis.AssetTTL)
	assetService := service.NewAssetService(logger, assetRepo, &http.Client{Timeout: conf.Channel.AssetTimeout})
	binder := usecase.NewPlayerBinder(logger, assetService, channel)

	var screen *terminal.Screen
	var renderer usecase.Renderer

	switch conf.Renderer {
	case config.RendererLog:
		renderer = render.NewLogRenderer(logger)
	case config.RendererTerminal:
		screen = terminal.New(logger, geometry)
		renderer = screen
	default:
		return fmt.Errorf("%w: %s", ErrUnknownRenderer, conf.Renderer)
	}

	reconciler := usecase.NewReconciler(logger, geometry, binder, renderer, channel)
	channel.OnSnapshot(reconciler.OnUpdate)

	errCh := make(chan error, 4)

	go func() {
		errCh <- wrap("reconciler", reconciler.Run(ctx))
	}()

	go func() {
		log.Info("Connecting to game server", "url", conf.Channel.URL)
		errCh <- wrap("channel", channel.Run(ctx))
	}()

	// run HTTP server
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		errCh <- wrap("HTTP server", rest.Start(ctx, conf.HTTPPort, rest.NewHandlers(reconciler)))
	}()

	if screen != nil {
		go func() {
			err := screen.Run(ctx, reconciler.OnPointer)
			if err == nil {
				// the user quit from the terminal
				cancel()
			}
			errCh <- wrap("terminal", err)
		}()
	}

	select {
	case err = <-errCh:
		if err != nil {
			return err
		}

		log.Info("Component stopped, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func wrap(component string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s error: %w", component, err)
}
