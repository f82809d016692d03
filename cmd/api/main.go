package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/gymd/internal/auth"
	"github.com/MrJamesThe3rd/gymd/internal/billing"
	billingStore "github.com/MrJamesThe3rd/gymd/internal/billing/store"
	"github.com/MrJamesThe3rd/gymd/internal/checkin"
	checkinStore "github.com/MrJamesThe3rd/gymd/internal/checkin/store"
	"github.com/MrJamesThe3rd/gymd/internal/config"
	"github.com/MrJamesThe3rd/gymd/internal/database"
	gymdHttp "github.com/MrJamesThe3rd/gymd/internal/http"
	authnHandler "github.com/MrJamesThe3rd/gymd/internal/http/authn"
	billingHandler "github.com/MrJamesThe3rd/gymd/internal/http/billing"
	checkinHandler "github.com/MrJamesThe3rd/gymd/internal/http/checkin"
	importHandler "github.com/MrJamesThe3rd/gymd/internal/http/importcsv"
	membershipHandler "github.com/MrJamesThe3rd/gymd/internal/http/membership"
	"github.com/MrJamesThe3rd/gymd/internal/importer"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
	membershipStore "github.com/MrJamesThe3rd/gymd/internal/membership/store"
	"github.com/MrJamesThe3rd/gymd/internal/user"
	userStore "github.com/MrJamesThe3rd/gymd/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.App.Name)

	var (
		billingService    = billing.NewService(billingStore.New(db))
		membershipService = membership.NewService(membershipStore.New(db))
		checkinService    = checkin.NewService(checkinStore.New(db))
		userService       = user.NewService(userStore.New(db))
		importService     = importer.NewService()
	)

	var (
		authnH      = authnHandler.NewHandler(userService, tokens)
		membershipH = membershipHandler.NewHandler(membershipService, billingService)
		billingH    = billingHandler.NewHandler(billingService)
		checkinH    = checkinHandler.NewHandler(checkinService)
		importH     = importHandler.NewHandler(importService, userService, membershipService)
	)

	router := gymdHttp.New(tokens, authnH, membershipH, billingH, checkinH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
