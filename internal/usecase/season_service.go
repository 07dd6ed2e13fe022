package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hockey-stats/internal/domain/game"
	"github.com/riskibarqy/hockey-stats/internal/domain/player"
	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-stats/internal/domain/season"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
	"github.com/sourcegraph/conc/pool"
)

// SeasonQueryRecorder counts season queries by kind (totals, leaders, ...).
type SeasonQueryRecorder interface {
	ObserveSeasonQuery(kind string)
}

type SeasonOptions struct {
	Awards          season.AwardOptions
	Standings       season.StandingsOptions
	LeadersDefault  int
	LeadersMaxLimit int
}

type SeasonService struct {
	teamRepo      team.Repository
	playerRepo    player.Repository
	gameRepo      game.Repository
	statsRepo     playerstats.Repository
	teamStatsRepo teamstats.Repository
	opts          SeasonOptions
	recorder      SeasonQueryRecorder
}

func NewSeasonService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	statsRepo playerstats.Repository,
	teamStatsRepo teamstats.Repository,
	opts SeasonOptions,
	recorder SeasonQueryRecorder,
) *SeasonService {
	if opts.LeadersDefault <= 0 {
		opts.LeadersDefault = season.DefaultLeadersLimit
	}
	return &SeasonService{
		teamRepo:      teamRepo,
		playerRepo:    playerRepo,
		gameRepo:      gameRepo,
		statsRepo:     statsRepo,
		teamStatsRepo: teamStatsRepo,
		opts:          opts,
		recorder:      recorder,
	}
}

func (s *SeasonService) PlayerTotals(ctx context.Context) ([]season.PlayerTotals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.PlayerTotals")
	defer span.End()
	s.observe("totals")

	return s.aggregate(ctx)
}

// PlayerSeason aggregates the rows of a single player.
func (s *SeasonService) PlayerSeason(ctx context.Context, playerID int64) (season.PlayerTotals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.PlayerSeason")
	defer span.End()
	s.observe("player")

	item, err := requirePlayer(ctx, s.playerRepo, playerID)
	if err != nil {
		return season.PlayerTotals{}, err
	}

	filter := playerstats.Filter{PlayerID: &item.ID}
	snapshot := season.Snapshot{Players: []player.Player{item}}
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.statsRepo.ListSkaterStats(ctx, filter)
		if err != nil {
			return fmt.Errorf("list skater stats: %w", err)
		}
		snapshot.SkaterStats = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.statsRepo.ListGoalieStats(ctx, filter)
		if err != nil {
			return fmt.Errorf("list goalie stats: %w", err)
		}
		snapshot.GoalieStats = rows
		return nil
	})
	if err := p.Wait(); err != nil {
		return season.PlayerTotals{}, err
	}

	totals := season.Aggregate(snapshot)
	return totals[0], nil
}

// Leaders ranks players by metric. A non-positive limit falls back to the
// configured default; limits above the configured maximum are clamped.
func (s *SeasonService) Leaders(ctx context.Context, metricName string, limit int) ([]season.Leader, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Leaders")
	defer span.End()
	s.observe("leaders")

	metric, err := season.ParseMetric(metricName)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.opts.LeadersDefault
	}
	if s.opts.LeadersMaxLimit > 0 && limit > s.opts.LeadersMaxLimit {
		limit = s.opts.LeadersMaxLimit
	}

	totals, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}
	return season.Leaders(totals, metric, limit)
}

func (s *SeasonService) Standings(ctx context.Context) ([]season.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Standings")
	defer span.End()
	s.observe("standings")

	var (
		teams []team.Team
		games []game.Game
		stats []teamstats.TeamStat
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.teamRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		teams = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.gameRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list games: %w", err)
		}
		games = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.teamStatsRepo.List(ctx, teamstats.Filter{})
		if err != nil {
			return fmt.Errorf("list team stats: %w", err)
		}
		stats = rows
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return season.Standings(teams, games, stats, s.opts.Standings), nil
}

func (s *SeasonService) AwardMVP(ctx context.Context) (season.PlayerTotals, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.AwardMVP")
	defer span.End()
	s.observe("award_mvp")

	totals, err := s.aggregate(ctx)
	if err != nil {
		return season.PlayerTotals{}, false, err
	}
	winner, ok := season.MVP(totals)
	return winner, ok, nil
}

func (s *SeasonService) AwardCalder(ctx context.Context) (season.PlayerTotals, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.AwardCalder")
	defer span.End()
	s.observe("award_calder")

	totals, err := s.aggregate(ctx)
	if err != nil {
		return season.PlayerTotals{}, false, err
	}
	winner, ok := season.Calder(totals)
	return winner, ok, nil
}

func (s *SeasonService) AwardNorris(ctx context.Context) (season.PlayerTotals, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.AwardNorris")
	defer span.End()
	s.observe("award_norris")

	totals, err := s.aggregate(ctx)
	if err != nil {
		return season.PlayerTotals{}, false, err
	}
	winner, ok := season.Norris(totals, s.opts.Awards)
	return winner, ok, nil
}

func (s *SeasonService) AwardVezina(ctx context.Context) (season.VezinaCandidate, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.AwardVezina")
	defer span.End()
	s.observe("award_vezina")

	totals, err := s.aggregate(ctx)
	if err != nil {
		return season.VezinaCandidate{}, false, err
	}
	winner, ok := season.Vezina(totals)
	return winner, ok, nil
}

func (s *SeasonService) aggregate(ctx context.Context) ([]season.PlayerTotals, error) {
	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return season.Aggregate(snapshot), nil
}

// loadSnapshot reads players and both stat tables concurrently. Any failure
// discards the whole snapshot.
func (s *SeasonService) loadSnapshot(ctx context.Context) (season.Snapshot, error) {
	var snapshot season.Snapshot
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.playerRepo.List(ctx, player.Filter{})
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		snapshot.Players = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.statsRepo.ListSkaterStats(ctx, playerstats.Filter{})
		if err != nil {
			return fmt.Errorf("list skater stats: %w", err)
		}
		snapshot.SkaterStats = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.statsRepo.ListGoalieStats(ctx, playerstats.Filter{})
		if err != nil {
			return fmt.Errorf("list goalie stats: %w", err)
		}
		snapshot.GoalieStats = rows
		return nil
	})
	if err := p.Wait(); err != nil {
		return season.Snapshot{}, crerr.Wrap(err, "load season snapshot")
	}
	return snapshot, nil
}

func (s *SeasonService) observe(kind string) {
	if s.recorder != nil {
		s.recorder.ObserveSeasonQuery(kind)
	}
}
