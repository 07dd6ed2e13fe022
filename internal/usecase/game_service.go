package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/riskibarqy/hockey-stats/internal/domain/game"
	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
)

// ScreenshotStore persists an uploaded boxscore image and returns its file name.
type ScreenshotStore interface {
	Save(ctx context.Context, gameID int64, ext string, content io.Reader) (string, error)
}

const screenshotURLPrefix = "/uploads/"

type CreateGameInput struct {
	Date       time.Time
	HomeTeamID int64
	AwayTeamID int64
	Round      string
}

type Boxscore struct {
	Game    game.Game
	Skaters []playerstats.SkaterStat
	Goalies []playerstats.GoalieStat
}

type GameService struct {
	teamRepo  team.Repository
	gameRepo  game.Repository
	statsRepo playerstats.Repository
	store     ScreenshotStore
}

func NewGameService(
	teamRepo team.Repository,
	gameRepo game.Repository,
	statsRepo playerstats.Repository,
	store ScreenshotStore,
) *GameService {
	return &GameService{
		teamRepo:  teamRepo,
		gameRepo:  gameRepo,
		statsRepo: statsRepo,
		store:     store,
	}
}

func (s *GameService) CreateGame(ctx context.Context, input CreateGameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.CreateGame")
	defer span.End()

	item := game.Game{
		Date:       input.Date,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Round:      strings.TrimSpace(input.Round),
		Status:     game.StatusScheduled,
	}
	if err := item.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if _, err := requireTeam(ctx, s.teamRepo, item.HomeTeamID); err != nil {
		return game.Game{}, err
	}
	if _, err := requireTeam(ctx, s.teamRepo, item.AwayTeamID); err != nil {
		return game.Game{}, err
	}

	created, err := s.gameRepo.Create(ctx, item)
	if err != nil {
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}
	return created, nil
}

func (s *GameService) ListGames(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames")
	defer span.End()

	items, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return items, nil
}

func (s *GameService) GetBoxscore(ctx context.Context, gameID int64) (Boxscore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetBoxscore")
	defer span.End()

	item, err := requireGame(ctx, s.gameRepo, gameID)
	if err != nil {
		return Boxscore{}, err
	}

	filter := playerstats.Filter{GameID: &item.ID}
	skaters, err := s.statsRepo.ListSkaterStats(ctx, filter)
	if err != nil {
		return Boxscore{}, fmt.Errorf("list skater stats: %w", err)
	}
	goalies, err := s.statsRepo.ListGoalieStats(ctx, filter)
	if err != nil {
		return Boxscore{}, fmt.Errorf("list goalie stats: %w", err)
	}

	return Boxscore{Game: item, Skaters: skaters, Goalies: goalies}, nil
}

// RecordScore stores the final score and marks the game as played.
func (s *GameService) RecordScore(ctx context.Context, gameID int64, homeScore, awayScore int) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.RecordScore")
	defer span.End()

	if homeScore < 0 || awayScore < 0 {
		return game.Game{}, fmt.Errorf("%w: scores must be >= 0", ErrInvalidInput)
	}
	if _, err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return game.Game{}, err
	}

	updated, err := s.gameRepo.RecordScore(ctx, gameID, homeScore, awayScore)
	if err != nil {
		return game.Game{}, fmt.Errorf("record score: %w", err)
	}
	return updated, nil
}

func (s *GameService) UploadScreenshot(ctx context.Context, gameID int64, filename string, content io.Reader) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.UploadScreenshot")
	defer span.End()

	if content == nil {
		return game.Game{}, fmt.Errorf("%w: screenshot file is required", ErrInvalidInput)
	}
	if s.store == nil {
		return game.Game{}, fmt.Errorf("%w: screenshot store is not configured", ErrDependencyUnavailable)
	}
	if _, err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return game.Game{}, err
	}

	name, err := s.store.Save(ctx, gameID, filepath.Ext(filename), content)
	if err != nil {
		return game.Game{}, fmt.Errorf("save screenshot: %w", err)
	}

	updated, err := s.gameRepo.SetScreenshot(ctx, gameID, screenshotURLPrefix+name)
	if err != nil {
		return game.Game{}, fmt.Errorf("set screenshot path: %w", err)
	}
	return updated, nil
}

func requireGame(ctx context.Context, repo game.Repository, gameID int64) (game.Game, error) {
	if gameID <= 0 {
		return game.Game{}, fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}
	return item, nil
}
