package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/hockey-stats/internal/domain/game"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
	gamemock "github.com/riskibarqy/hockey-stats/internal/mocks/domain/game"
	playermock "github.com/riskibarqy/hockey-stats/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/hockey-stats/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_GetTeam_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo)

	teamRepo.
		On("GetByID", mock.Anything, int64(42)).
		Return(team.Team{}, false, nil).
		Once()

	_, err := service.GetTeam(ctx, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_CreateTeam_TrimsInputUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo)

	teamRepo.
		On("Create", mock.Anything, team.Team{Name: "Ice Hogs", Short: "IH"}).
		Return(team.Team{ID: 1, Name: "Ice Hogs", Short: "IH"}, nil).
		Once()

	got, err := service.CreateTeam(ctx, CreateTeamInput{Name: "  Ice Hogs ", Short: " IH"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("unexpected team id: got=%d want=1", got.ID)
	}
}

func TestTeamService_CreateTeam_RejectsBlankName(t *testing.T) {
	t.Parallel()

	service := NewTeamService(teammock.NewRepository(t))

	_, err := service.CreateTeam(context.Background(), CreateTeamInput{Name: " ", Short: "X"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_ListTeams_PropagatesStoreError(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo)
	storeErr := errors.New("connection refused")

	teamRepo.On("List", mock.Anything).Return(nil, storeErr).Once()

	_, err := service.ListTeams(context.Background())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestPlayerService_CreatePlayer_UnknownTeamUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(teamRepo, playerRepo)
	teamID := int64(9)

	teamRepo.On("GetByID", mock.Anything, teamID).Return(team.Team{}, false, nil).Once()

	_, err := service.CreatePlayer(context.Background(), CreatePlayerInput{Handle: "jj", Position: "c", TeamID: &teamID})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	playerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGameService_RecordScore_UsingMockery(t *testing.T) {
	t.Parallel()

	gameRepo := gamemock.NewRepository(t)
	service := NewGameService(teammock.NewRepository(t), gameRepo, nil, nil)

	gameRepo.On("GetByID", mock.Anything, int64(3)).Return(game.Game{ID: 3}, true, nil).Once()
	gameRepo.
		On("RecordScore", mock.Anything, int64(3), 4, 1).
		Return(game.Game{ID: 3, HomeScore: 4, AwayScore: 1, Status: game.StatusFinal}, nil).
		Once()

	got, err := service.RecordScore(context.Background(), 3, 4, 1)
	if err != nil {
		t.Fatalf("record score: %v", err)
	}
	if !got.IsFinal() {
		t.Fatalf("expected final game, got status %q", got.Status)
	}
}

func TestGameService_RecordScore_RejectsNegativeScore(t *testing.T) {
	t.Parallel()

	service := NewGameService(teammock.NewRepository(t), gamemock.NewRepository(t), nil, nil)

	_, err := service.RecordScore(context.Background(), 3, -1, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
