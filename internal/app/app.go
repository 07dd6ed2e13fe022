package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/hockey-stats/internal/config"
	"github.com/riskibarqy/hockey-stats/internal/domain/season"
	"github.com/riskibarqy/hockey-stats/internal/infrastructure/blobstore"
	"github.com/riskibarqy/hockey-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/hockey-stats/internal/observability"
	idgen "github.com/riskibarqy/hockey-stats/internal/platform/id"
	"github.com/riskibarqy/hockey-stats/internal/platform/logging"
	"github.com/riskibarqy/hockey-stats/internal/usecase"
)

// App is the assembled service: the public HTTP server plus everything that
// has to be released when it stops.
type App struct {
	Server  *http.Server
	Metrics *observability.Metrics
	stores  stores
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	screenshots, err := blobstore.NewLocalStore(cfg.UploadDir, cfg.UploadMaxBytes, idgen.NewRandomGenerator())
	if err != nil {
		_ = st.close()
		return nil, fmt.Errorf("open upload dir: %w", err)
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	router := newRouter(cfg, st, screenshots, metrics, logger)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Metrics: metrics,
		stores:  st,
	}, nil
}

func newRouter(
	cfg config.Config,
	st stores,
	screenshots *blobstore.LocalStore,
	metrics *observability.Metrics,
	logger *logging.Logger,
) http.Handler {
	teamSvc := usecase.NewTeamService(st.teams)
	playerSvc := usecase.NewPlayerService(st.teams, st.players)
	gameSvc := usecase.NewGameService(st.teams, st.games, st.stats, screenshots)
	statSvc := usecase.NewStatService(st.teams, st.players, st.games, st.stats, st.teamStats, st.statTx, cfg.IngestWorkers)

	var recorder usecase.SeasonQueryRecorder
	if metrics != nil {
		recorder = metrics
	}
	seasonSvc := usecase.NewSeasonService(st.teams, st.players, st.games, st.stats, st.teamStats, usecase.SeasonOptions{
		Awards:          season.AwardOptions{NorrisPlusMinusTiebreak: cfg.NorrisPlusMinusTiebreak},
		Standings:       season.StandingsOptions{ExcludeUnplayed: cfg.StandingsExcludeUnplayed},
		LeadersDefault:  cfg.LeadersDefaultLimit,
		LeadersMaxLimit: cfg.LeadersMaxLimit,
	}, recorder)

	handler := httpapi.NewHandler(httpapi.HandlerDeps{
		TeamService:    teamSvc,
		PlayerService:  playerSvc,
		GameService:    gameSvc,
		StatService:    statSvc,
		SeasonService:  seasonSvc,
		Screenshots:    screenshots,
		UploadMaxBytes: cfg.UploadMaxBytes,
	}, logger)

	opts := httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminKey:           cfg.AdminAPIKey,
	}
	if metrics != nil {
		opts.MetricsHandler = metrics.Handler()
		opts.Observer = metrics
	}

	return httpapi.NewRouter(handler, logger, opts)
}

// Shutdown drains the HTTP server and then releases the store.
func (a *App) Shutdown(ctx context.Context) error {
	return errors.Join(a.Server.Shutdown(ctx), a.stores.close())
}
