package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/config"
	"github.com/coachdesk/coachdesk/middleware/routeguard"
	"github.com/coachdesk/coachdesk/store"
	"github.com/coachdesk/coachdesk/web"
)

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("coachdesk"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	cfg, err := config.New()
	if err != nil {
		lgr.GetLogger("config").Error("configuration error", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		fmt.Println("============")
		fmt.Println(print.MaybeHighlightJSON(cfg))
		fmt.Println("============")
	}

	ctx := context.Background()

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		lgr.GetLogger("persistence").Error("database error", "error", err)
		os.Exit(1)
	}

	repo := store.NewManager(db)
	if err := repo.Validate(); err != nil {
		lgr.GetLogger("persistence").Error("repository error", "error", err)
		os.Exit(1)
	}

	provider := auth.NewUserProvider(repo.Users()).
		WithLogger(lgr.GetLogger("auth:prv"))

	authenticator := auth.NewAuthenticator(provider, cfg).
		WithLogger(lgr.GetLogger("auth:authz"))

	httpAuth, err := auth.NewHTTPAuthenticator(authenticator, cfg)
	if err != nil {
		lgr.GetLogger("auth:http").Error("http auth error", "error", err)
		os.Exit(1)
	}
	httpAuth.WithLogger(lgr.GetLogger("auth:http"))

	if err := seedAdmin(ctx, cfg, repo, lgr.GetLogger("seed")); err != nil {
		lgr.GetLogger("seed").Error("seed error", "error", err)
		os.Exit(1)
	}

	srv := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
		return router.DefaultFiberOptions(fiber.New(fiber.Config{
			UnescapePath:  true,
			StrictRouting: false,
		}))
	})

	srv.Router().WithLogger(lgr.GetLogger("router"))

	srv.Router().Use(web.SessionLoader(httpAuth))
	srv.Router().Use(routeguard.New(routeguard.Config{
		LoginPath:        cfg.GuardLoginPath,
		HomePath:         cfg.GuardHomePath,
		ExcludedPrefixes: cfg.GuardExclusions,
		SessionPresent: func(c router.Context) bool {
			return httpAuth.CurrentSession(c).Present()
		},
	}))

	web.Register(srv.Router(), web.Deps{
		Repo:   repo,
		Auther: httpAuth,
		Logger: lgr.GetLogger("web"),
		Debug:  cfg.Debug,
	})

	lgr.GetLogger("server").Info("listening", "addr", cfg.ServerAddr)
	srv.Serve(cfg.ServerAddr)

	WaitExitSignal()
}

func openDatabase(ctx context.Context, cfg *config.AppConfig) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := store.CreateSchema(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedAdmin guarantees one ADMIN principal exists so the instance is never
// locked out. Runs only when seed credentials are configured; an existing
// account with that email wins.
func seedAdmin(ctx context.Context, cfg *config.AppConfig, repo store.Manager, logger auth.Logger) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	if _, err := repo.Users().GetByEmail(ctx, cfg.SeedAdminEmail); err == nil {
		return nil
	}

	seedCtx := auth.WithSession(ctx, auth.SystemSession())

	handler := actions.NewCreateUserHandler(repo)
	result, err := handler.Execute(seedCtx, actions.CreateUserMessage{
		Name:      cfg.SeedAdminName,
		Email:     cfg.SeedAdminEmail,
		Password:  cfg.SeedAdminPassword,
		Role:      auth.RoleAdmin.String(),
		UseHashid: true,
	})
	if err != nil {
		return err
	}

	if !result.Success {
		logger.Warn("admin seed skipped", "message", result.Message)
		return nil
	}

	logger.Info("admin account seeded", "email", cfg.SeedAdminEmail)
	return nil
}

// WaitExitSignal blocks until the process receives a termination signal
func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	return <-ch
}
