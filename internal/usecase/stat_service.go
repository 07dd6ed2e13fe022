package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/hockey-stats/internal/domain/boxscore"
	"github.com/riskibarqy/hockey-stats/internal/domain/game"
	"github.com/riskibarqy/hockey-stats/internal/domain/player"
	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
)

const defaultIngestWorkers = 4

// GoalieLine is a goalie stat line as submitted. GP defaults to 1 when omitted.
type GoalieLine struct {
	GP           *int
	Wins         int
	Losses       int
	OT           int
	ShotsAgainst int
	Saves        int
	GoalsAgainst int
	Shutout      int
	TOISeconds   int
}

func (l GoalieLine) toStat(gameID, playerID int64) playerstats.GoalieStat {
	gp := 1
	if l.GP != nil {
		gp = *l.GP
	}
	return playerstats.GoalieStat{
		GameID:       gameID,
		PlayerID:     playerID,
		GP:           gp,
		Wins:         l.Wins,
		Losses:       l.Losses,
		OT:           l.OT,
		ShotsAgainst: l.ShotsAgainst,
		Saves:        l.Saves,
		GoalsAgainst: l.GoalsAgainst,
		Shutout:      l.Shutout,
		TOISeconds:   l.TOISeconds,
	}
}

type BoxscoreSkater struct {
	PlayerID int64
	Line     playerstats.SkaterStat
}

type BoxscoreGoalie struct {
	PlayerID int64
	Line     GoalieLine
}

type BoxscoreTeam struct {
	TeamID int64
	Line   teamstats.TeamStat
}

type IngestBoxscoreInput struct {
	Skaters []BoxscoreSkater
	Goalies []BoxscoreGoalie
	Teams   []BoxscoreTeam
}

type IngestBoxscoreResult struct {
	Skaters []playerstats.SkaterStat
	Goalies []playerstats.GoalieStat
	Teams   []teamstats.TeamStat
}

type StatService struct {
	teamRepo      team.Repository
	playerRepo    player.Repository
	gameRepo      game.Repository
	statsRepo     playerstats.Repository
	teamStatsRepo teamstats.Repository
	txRunner      boxscore.TxRunner
	workers       int
}

func NewStatService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	statsRepo playerstats.Repository,
	teamStatsRepo teamstats.Repository,
	txRunner boxscore.TxRunner,
	workers int,
) *StatService {
	if workers <= 0 {
		workers = defaultIngestWorkers
	}
	return &StatService{
		teamRepo:      teamRepo,
		playerRepo:    playerRepo,
		gameRepo:      gameRepo,
		statsRepo:     statsRepo,
		teamStatsRepo: teamStatsRepo,
		txRunner:      txRunner,
		workers:       workers,
	}
}

func (s *StatService) EnterSkaterStat(ctx context.Context, gameID, playerID int64, line playerstats.SkaterStat) (playerstats.SkaterStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.EnterSkaterStat")
	defer span.End()

	if _, err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return playerstats.SkaterStat{}, err
	}
	if _, err := requirePlayer(ctx, s.playerRepo, playerID); err != nil {
		return playerstats.SkaterStat{}, err
	}

	line.ID = 0
	line.GameID = gameID
	line.PlayerID = playerID
	created, err := s.statsRepo.CreateSkaterStat(ctx, line)
	if err != nil {
		return playerstats.SkaterStat{}, fmt.Errorf("create skater stat: %w", err)
	}
	return created, nil
}

func (s *StatService) EnterGoalieStat(ctx context.Context, gameID, playerID int64, line GoalieLine) (playerstats.GoalieStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.EnterGoalieStat")
	defer span.End()

	if _, err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return playerstats.GoalieStat{}, err
	}
	if _, err := requirePlayer(ctx, s.playerRepo, playerID); err != nil {
		return playerstats.GoalieStat{}, err
	}

	created, err := s.statsRepo.CreateGoalieStat(ctx, line.toStat(gameID, playerID))
	if err != nil {
		return playerstats.GoalieStat{}, fmt.Errorf("create goalie stat: %w", err)
	}
	return created, nil
}

func (s *StatService) EnterTeamStat(ctx context.Context, gameID, teamID int64, line teamstats.TeamStat) (teamstats.TeamStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.EnterTeamStat")
	defer span.End()

	if _, err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return teamstats.TeamStat{}, err
	}
	if _, err := requireTeam(ctx, s.teamRepo, teamID); err != nil {
		return teamstats.TeamStat{}, err
	}

	line.ID = 0
	line.GameID = gameID
	line.TeamID = teamID
	created, err := s.teamStatsRepo.Create(ctx, line)
	if err != nil {
		return teamstats.TeamStat{}, fmt.Errorf("create team stat: %w", err)
	}
	return created, nil
}

// IngestBoxscore records a whole game sheet. Every referenced player and team
// is checked before the first row is written, and the rows are written in one
// transaction so a failed sheet leaves nothing behind.
func (s *StatService) IngestBoxscore(ctx context.Context, gameID int64, input IngestBoxscoreInput) (IngestBoxscoreResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.IngestBoxscore")
	defer span.End()

	if len(input.Skaters)+len(input.Goalies)+len(input.Teams) == 0 {
		return IngestBoxscoreResult{}, fmt.Errorf("%w: boxscore has no stat lines", ErrInvalidInput)
	}
	if _, err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return IngestBoxscoreResult{}, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return IngestBoxscoreResult{}, err
	}

	var result IngestBoxscoreResult
	err := s.txRunner.RunInTx(ctx, func(ctx context.Context, stats playerstats.Repository, teamStats teamstats.Repository) error {
		written, err := writeBoxscore(ctx, stats, teamStats, gameID, input)
		if err != nil {
			return err
		}
		result = written
		return nil
	})
	if err != nil {
		return IngestBoxscoreResult{}, err
	}

	return result, nil
}

func writeBoxscore(
	ctx context.Context,
	stats playerstats.Repository,
	teamStats teamstats.Repository,
	gameID int64,
	input IngestBoxscoreInput,
) (IngestBoxscoreResult, error) {
	result := IngestBoxscoreResult{
		Skaters: make([]playerstats.SkaterStat, 0, len(input.Skaters)),
		Goalies: make([]playerstats.GoalieStat, 0, len(input.Goalies)),
		Teams:   make([]teamstats.TeamStat, 0, len(input.Teams)),
	}
	for _, row := range input.Skaters {
		line := row.Line
		line.ID = 0
		line.GameID = gameID
		line.PlayerID = row.PlayerID
		created, err := stats.CreateSkaterStat(ctx, line)
		if err != nil {
			return IngestBoxscoreResult{}, fmt.Errorf("create skater stat player=%d: %w", row.PlayerID, err)
		}
		result.Skaters = append(result.Skaters, created)
	}
	for _, row := range input.Goalies {
		created, err := stats.CreateGoalieStat(ctx, row.Line.toStat(gameID, row.PlayerID))
		if err != nil {
			return IngestBoxscoreResult{}, fmt.Errorf("create goalie stat player=%d: %w", row.PlayerID, err)
		}
		result.Goalies = append(result.Goalies, created)
	}
	for _, row := range input.Teams {
		line := row.Line
		line.ID = 0
		line.GameID = gameID
		line.TeamID = row.TeamID
		created, err := teamStats.Create(ctx, line)
		if err != nil {
			return IngestBoxscoreResult{}, fmt.Errorf("create team stat team=%d: %w", row.TeamID, err)
		}
		result.Teams = append(result.Teams, created)
	}
	return result, nil
}

type referenceCheck struct {
	kind string
	id   int64
}

func (s *StatService) checkReferences(ctx context.Context, input IngestBoxscoreInput) error {
	seen := make(map[referenceCheck]struct{})
	checks := make([]referenceCheck, 0, len(input.Skaters)+len(input.Goalies)+len(input.Teams))
	add := func(c referenceCheck) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		checks = append(checks, c)
	}
	for _, row := range input.Skaters {
		add(referenceCheck{kind: "player", id: row.PlayerID})
	}
	for _, row := range input.Goalies {
		add(referenceCheck{kind: "player", id: row.PlayerID})
	}
	for _, row := range input.Teams {
		add(referenceCheck{kind: "team", id: row.TeamID})
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		failures []error
		workers  sync.WaitGroup
	)
	for _, check := range checks {
		check := check
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			var err error
			switch check.kind {
			case "team":
				_, err = requireTeam(ctx, s.teamRepo, check.id)
			default:
				_, err = requirePlayer(ctx, s.playerRepo, check.id)
			}
			if err != nil {
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
			}
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit reference check to worker pool: %w", err)
		}
	}
	workers.Wait()

	return joinReferenceFailures(failures)
}

// joinReferenceFailures reports store failures first; otherwise it folds all
// missing references into one ErrNotFound / ErrInvalidInput.
func joinReferenceFailures(failures []error) error {
	if len(failures) == 0 {
		return nil
	}

	var (
		missing []string
		invalid []string
	)
	for _, err := range failures {
		switch {
		case isNotFound(err):
			missing = append(missing, strings.TrimPrefix(err.Error(), ErrNotFound.Error()+": "))
		case isInvalidInput(err):
			invalid = append(invalid, strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": "))
		default:
			return err
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(invalid, ", "))
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
}
