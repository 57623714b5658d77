package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jsonplaceholder/core/app"
	"jsonplaceholder/core/loader"
	"jsonplaceholder/core/logger"
	"jsonplaceholder/core/middleware/auth"
	"jsonplaceholder/core/middleware/rayid"
	"jsonplaceholder/core/refresh"
	"jsonplaceholder/feature/albums"
	"jsonplaceholder/feature/posts"
	"jsonplaceholder/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "jsonplaceholder/docs/swagger"
)

// @title JSONPlaceholder Cache API
// @version 1.0
// @description Offline-first cache of the posts, users and albums collections.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"start"},
	Short:   "Serve the cached collections over HTTP",
	Long: `Starts the HTTP API for posts, users and albums and, unless disabled,
the background refresh that keeps the cache current.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.Close()
		zap.ReplaceGlobals(a.Logger)

		repos, err := openRepositories(a)
		if err != nil {
			return err
		}

		server, err := newServer(a, repos)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		refreshDone := make(chan struct{})
		if a.Config.Refresh.Enabled {
			sched := refresh.NewScheduler(a.Config.Refresh, a.Settings, a.Logger.Named("refresh"), repos.syncers()...)
			go func() {
				defer close(refreshDone)
				_ = sched.Run(ctx)
			}()
		} else {
			close(refreshDone)
		}

		addr, err := a.Config.Server.Address()
		if err != nil {
			return err
		}

		listenErr := make(chan error, 1)
		go func() {
			a.Logger.Info("Starting server", zap.String("addr", addr))
			listenErr <- server.Listen(addr)
		}()

		select {
		case <-ctx.Done():
		case err := <-listenErr:
			stop()
			<-refreshDone
			return err
		}

		a.Logger.Info("Shutting down server...")
		if err := server.ShutdownWithTimeout(a.Config.Server.ShutdownTimeout()); err != nil {
			a.Logger.Warn("Server shutdown incomplete", zap.Error(err))
		}
		<-refreshDone
		return nil
	},
}

// newServer builds the fiber app with middleware and every feature mounted.
func newServer(a *app.App, repos *repositories) (*fiber.App, error) {
	server := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"status": "error", "message": err.Error()})
		},
	})

	mgr := loader.NewManager(a.Logger.Named("loader"))
	mgr.Register(posts.NewFeature(a, repos.Posts))
	mgr.Register(users.NewFeature(a, repos.Users))
	mgr.Register(albums.NewFeature(a, repos.Albums))

	// RayID must be first to trace everything.
	server.Use(rayid.New())

	server.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(a.Logger, c)
		start := time.Now()
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
		)
		return err
	})

	// Swagger stays public.
	if a.Config.Server.Swagger {
		server.Get("/swagger/*", swagger.HandlerDefault)
	}

	server.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	server.Use(auth.New(auth.Config{ApiKey: a.Config.Server.ApiKey}))

	if err := mgr.LoadAll(server); err != nil {
		return nil, err
	}
	return server, nil
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
