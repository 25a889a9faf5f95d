package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"trackmirror/config"
	gqlin "trackmirror/internal/adapter/in/graphql"
	busmem "trackmirror/internal/adapter/out/pubsub/inmemory"
	"trackmirror/internal/adapter/out/remote"
	memstore "trackmirror/internal/adapter/out/storage/inmemory"
	pgstore "trackmirror/internal/adapter/out/storage/postgres"
	"trackmirror/internal/service"
	"trackmirror/pkg/logger"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

type App struct {
	cfg     config.Config
	srv     *http.Server
	pool    *pgxpool.Pool
	cron    *cron.Cron
	syncSvc *service.SyncService
}

// nopTrManager satisfies service.TrManager when there is no database
// transaction to run in (in-memory storage).
type nopTrManager struct{}

func (nopTrManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	var (
		trackStorage service.TrackStorage
		trManager    service.TrManager
		pool         *pgxpool.Pool
	)

	switch cfg.StorageType {
	case "postgres":
		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		trackStorage = pgstore.NewTrackStorage(pool, trmpgx.DefaultCtxGetter)
		trManager = manager.Must(trmpgx.NewDefaultFactory(pool))

	default:
		trackStorage = memstore.NewTrackStorage()
		trManager = nopTrManager{}
	}

	catalog, err := remote.NewClient(remote.Config{
		Endpoint:       cfg.Remote.Endpoint,
		Token:          cfg.Remote.Token,
		RetryCount:     cfg.Remote.RetryCount,
		RetryWait:      500 * time.Millisecond,
		RetryMaxWait:   10 * time.Second,
		RequestTimeout: time.Duration(cfg.Remote.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog client: %w", err)
	}

	bus := busmem.New(64)

	trackSvc := service.NewTrackService(trackStorage)
	syncSvc := service.NewSyncService(
		catalog,
		trackStorage,
		bus,
		trManager,
		cfg.Remote.PageSize,
		cfg.Remote.MaxPages,
	)

	resolver := gqlin.NewResolver(trackSvc, syncSvc)
	es := gqlin.NewExecutableSchema(gqlin.Config{Resolvers: resolver})
	gqlSrv := handler.New(es)

	gqlSrv.AddTransport(transport.POST{})
	gqlSrv.AddTransport(&transport.Websocket{
		KeepAlivePingInterval: time.Duration(cfg.WS.KeepAliveSeconds) * time.Second,
	})
	gqlSrv.Use(extension.Introspection{})

	mux := http.NewServeMux()
	mux.Handle("/query", gqlSrv)
	mux.Handle("/", playground.Handler("GraphQL Playground", "/query"))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	c := cron.New()
	if _, err := c.AddFunc(cfg.Sync.Schedule, func() {
		jobCtx := logger.WithLogger(context.Background(), log)
		if _, err := syncSvc.Sync(jobCtx); err != nil {
			log.Error("scheduled sync failed", "error", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("sync schedule %q: %w", cfg.Sync.Schedule, err)
	}

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized",
		"addr", addr,
		"storage", cfg.StorageType,
		"catalog", cfg.Remote.Endpoint,
		"schedule", cfg.Sync.Schedule,
	)
	return &App{cfg: cfg, srv: srv, pool: pool, cron: c, syncSvc: syncSvc}, nil
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	// first mirror pass at startup; the server does not wait for it
	go func() {
		if _, err := a.syncSvc.Sync(ctx); err != nil {
			log.Error("initial sync failed", "error", err)
		}
	}()

	a.cron.Start()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		<-a.cron.Stop().Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = a.srv.Shutdown(shCtx)
		if a.pool != nil {
			a.pool.Close()
		}
		return nil

	case err := <-errCh:
		a.cron.Stop()
		if a.pool != nil {
			a.pool.Close()
		}
		return err
	}
}
