package main

import (
	"context"
	"flag"
	"log"
	"time"

	httpadapter "emberhold/internal/adapter/http"
	metricsinmem "emberhold/internal/adapter/metrics/inmemory"
	gormrepo "emberhold/internal/adapter/repo/gorm"
	memoryrepo "emberhold/internal/adapter/repo/memory"
	"emberhold/internal/app/action"
	"emberhold/internal/app/auth"
	"emberhold/internal/app/ports"
	"emberhold/internal/app/status"
	"emberhold/internal/config"
	"emberhold/internal/domain/economy"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.BotToken == "" {
		log.Fatal("bot token is required (EMBERHOLD_BOT_TOKEN or bot_token in config)")
	}

	players, states, sessions, txManager := mustBuildRepos(cfg)
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		LoginUC: auth.LoginUseCase{
			Players:        players,
			States:         states,
			Sessions:       sessions,
			TxManager:      txManager,
			BotToken:       cfg.BotToken,
			InitDataMaxAge: time.Duration(cfg.InitDataMaxAgeHours) * time.Hour,
			Now:            time.Now,
		},
		VerifyUC: auth.VerifyUseCase{Sessions: sessions},
		ActionUC: action.UseCase{
			TxManager: txManager,
			StateRepo: states,
			Metrics:   kpiRecorder,
			Rules:     economy.Ruleset{},
			Now:       time.Now,
		},
		StatusUC: status.UseCase{StateRepo: states, Now: time.Now},
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("emberhold server listening on %s", cfg.Addr)
	s.Spin()
}

func mustBuildRepos(cfg config.Config) (ports.PlayerRepository, ports.PlayerStateRepository, ports.SessionTokenRepository, ports.TxManager) {
	if cfg.DatabaseDSN == "" {
		log.Println("no database DSN configured, using in-memory store (state is lost on restart)")
		store := memoryrepo.NewStore()
		return memoryrepo.NewPlayerRepo(store), memoryrepo.NewPlayerStateRepo(store), memoryrepo.NewSessionTokenRepo(store), memoryrepo.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	return gormrepo.NewPlayerRepo(db), gormrepo.NewPlayerStateRepo(db), gormrepo.NewSessionTokenRepo(db), gormrepo.NewTxManager(db)
}
