package usecase

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	gameID  int64
	ext     string
	content string
}

func (s *recordingStore) Save(_ context.Context, gameID int64, ext string, content io.Reader) (string, error) {
	raw, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.gameID = gameID
	s.ext = ext
	s.content = string(raw)
	return "game_1_abc" + ext, nil
}

func TestGameService_CreateGame(t *testing.T) {
	f := newLeagueFixture(t)
	service := NewGameService(f.teams, f.games, f.stats, nil)
	ctx := context.Background()
	date := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	created, err := service.CreateGame(ctx, CreateGameInput{Date: date, HomeTeamID: 2, AwayTeamID: 1, Round: " R2 "})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	assert.Equal(t, "R2", created.Round)
	assert.False(t, created.IsFinal())

	_, err = service.CreateGame(ctx, CreateGameInput{Date: date, HomeTeamID: 1, AwayTeamID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.CreateGame(ctx, CreateGameInput{Date: date, HomeTeamID: 1, AwayTeamID: 7})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.CreateGame(ctx, CreateGameInput{HomeTeamID: 1, AwayTeamID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGameService_GetBoxscore(t *testing.T) {
	f := newLeagueFixture(t)
	service := NewGameService(f.teams, f.games, f.stats, nil)
	ctx := context.Background()

	_, err := f.stats.CreateSkaterStat(ctx, playerstats.SkaterStat{GameID: 1, PlayerID: 1, Goals: 2})
	require.NoError(t, err)
	_, err = f.stats.CreateSkaterStat(ctx, playerstats.SkaterStat{GameID: 9, PlayerID: 2, Goals: 1})
	require.NoError(t, err)
	_, err = f.stats.CreateGoalieStat(ctx, playerstats.GoalieStat{GameID: 1, PlayerID: 3, GP: 1})
	require.NoError(t, err)

	box, err := service.GetBoxscore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), box.Game.ID)
	require.Len(t, box.Skaters, 1)
	assert.Equal(t, 2, box.Skaters[0].Goals)
	assert.Len(t, box.Goalies, 1)

	_, err = service.GetBoxscore(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGameService_UploadScreenshot(t *testing.T) {
	f := newLeagueFixture(t)
	store := &recordingStore{}
	service := NewGameService(f.teams, f.games, f.stats, store)
	ctx := context.Background()

	updated, err := service.UploadScreenshot(ctx, 1, "sheet.png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/game_1_abc.png", updated.ScreenshotPath)
	assert.Equal(t, int64(1), store.gameID)
	assert.Equal(t, ".png", store.ext)
	assert.Equal(t, "img", store.content)

	_, err = service.UploadScreenshot(ctx, 5, "sheet.png", strings.NewReader("img"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGameService_UploadScreenshotWithoutStore(t *testing.T) {
	f := newLeagueFixture(t)
	service := NewGameService(f.teams, f.games, f.stats, nil)

	_, err := service.UploadScreenshot(context.Background(), 1, "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrDependencyUnavailable)
}
