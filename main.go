package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/mbolis/survei-haji/app"
	"github.com/mbolis/survei-haji/config"
	"github.com/mbolis/survei-haji/database"
	"github.com/mbolis/survei-haji/httpx"
	"github.com/mbolis/survei-haji/log"
	"github.com/mbolis/survei-haji/routes"
	"github.com/mbolis/survei-haji/survey"
)

func main() {
	config.LoadEnv()
	cfg, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := database.Open(ctx, cfg.DBUrl)
	cancel()
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer store.Close()

	bearerServer, err := httpx.NewBearerServer(store, cfg)
	if err != nil {
		log.Fatal("main.bearer_server:", err)
	}

	app := app.App{
		Store:        store,
		BearerServer: bearerServer,
		Config:       cfg,
		Validator:    survey.NewValidator(),
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
