package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/hockey-stats/internal/domain/player"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
)

type CreatePlayerInput struct {
	Handle   string
	Position string
	Number   *int
	TeamID   *int64
}

type PlayerService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewPlayerService(teamRepo team.Repository, playerRepo player.Repository) *PlayerService {
	return &PlayerService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	item := player.Player{
		Handle:   strings.TrimSpace(input.Handle),
		Position: player.Position(strings.ToUpper(strings.TrimSpace(input.Position))),
		Number:   input.Number,
		TeamID:   input.TeamID,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if item.TeamID != nil {
		if _, err := requireTeam(ctx, s.teamRepo, *item.TeamID); err != nil {
			return player.Player{}, err
		}
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

// ListPlayers returns every player, or only the roster of teamID when set.
func (s *PlayerService) ListPlayers(ctx context.Context, teamID *int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	items, err := s.playerRepo.List(ctx, player.Filter{TeamID: teamID})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func requirePlayer(ctx context.Context, repo player.Repository, playerID int64) (player.Player, error) {
	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return item, nil
}
