package httpapi

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
	"github.com/riskibarqy/hockey-stats/internal/infrastructure/blobstore"
	"github.com/riskibarqy/hockey-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hockey-stats/internal/platform/id"
	"github.com/riskibarqy/hockey-stats/internal/platform/logging"
	"github.com/riskibarqy/hockey-stats/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminKey = "test-admin-key"

type envelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       any            `json:"data"`
	Error      map[string]any `json:"error"`
}

type routeObservation struct {
	method string
	route  string
	status int
}

type observerStub struct {
	seen []routeObservation
}

func (o *observerStub) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	o.seen = append(o.seen, routeObservation{method: method, route: route, status: status})
}

type testServer struct {
	router    http.Handler
	uploadDir string
	observer  *observerStub
}

func newTestServer(t *testing.T, teams []team.Team) testServer {
	t.Helper()

	teamRepo := memory.NewTeamRepository(teams)
	playerRepo := memory.NewPlayerRepository(nil)
	gameRepo := memory.NewGameRepository(nil)
	statsRepo := memory.NewPlayerStatsRepository()
	teamStatsRepo := memory.NewTeamStatsRepository()

	uploadDir := t.TempDir()
	store, err := blobstore.NewLocalStore(uploadDir, 1<<20, &id.SequenceGenerator{Prefix: "shot"})
	require.NoError(t, err)

	handler := NewHandler(HandlerDeps{
		TeamService:    usecase.NewTeamService(teamRepo),
		PlayerService:  usecase.NewPlayerService(teamRepo, playerRepo),
		GameService:    usecase.NewGameService(teamRepo, gameRepo, statsRepo, store),
		StatService:    usecase.NewStatService(teamRepo, playerRepo, gameRepo, statsRepo, teamStatsRepo, memory.NewStatTxRunner(statsRepo, teamStatsRepo), 2),
		SeasonService:  usecase.NewSeasonService(teamRepo, playerRepo, gameRepo, statsRepo, teamStatsRepo, usecase.SeasonOptions{LeadersMaxLimit: 100}, nil),
		Screenshots:    store,
		UploadMaxBytes: 1 << 20,
	}, logging.NewNop())

	observer := &observerStub{}
	router := NewRouter(handler, logging.NewNop(), RouterOptions{
		AdminKey: testAdminKey,
		Observer: observer,
	})
	return testServer{router: router, uploadDir: uploadDir, observer: observer}
}

func (s testServer) do(t *testing.T, method, target, body string, admin bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set(adminKeyHeader, testAdminKey)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var out envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func errorReason(t *testing.T, env envelope) string {
	t.Helper()

	require.NotNil(t, env.Error)
	items, ok := env.Error["errors"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, items)
	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	reason, _ := first["reason"].(string)
	return reason
}

func twoTeams() []team.Team {
	return []team.Team{
		{Name: "Ice Wolves", Short: "IWV"},
		{Name: "Harbor Seals", Short: "HBS"},
	}
}

func TestRouter_Healthz(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, env := srv.do(t, http.MethodGet, "/healthz", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2.0", env.APIVersion)
	assert.Equal(t, map[string]any{"status": "ok"}, env.Data)
}

func TestRouter_AdminRoutesRequireKey(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, env := srv.do(t, http.MethodPost, "/v1/teams", `{"name":"Ice Wolves","short":"IWV"}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", errorReason(t, env))

	req := httptest.NewRequest(http.MethodPost, "/v1/teams", strings.NewReader(`{"name":"Ice Wolves","short":"IWV"}`))
	req.Header.Set(adminKeyHeader, "wrong")
	wrong := httptest.NewRecorder()
	srv.router.ServeHTTP(wrong, req)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)

	rec, env = srv.do(t, http.MethodPost, "/v1/teams", `{"name":"Ice Wolves","short":"IWV"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "IWV", data["short"])
}

func TestRouter_RejectsInvalidPayloads(t *testing.T) {
	srv := newTestServer(t, twoTeams())

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "unknown field", method: http.MethodPost, target: "/v1/teams", body: `{"name":"A","short":"B","city":"x"}`},
		{name: "missing short", method: http.MethodPost, target: "/v1/teams", body: `{"name":"A"}`},
		{name: "bad date", method: http.MethodPost, target: "/v1/games", body: `{"date":"03/01/2025","home_team_id":1,"away_team_id":2}`},
		{name: "same teams", method: http.MethodPost, target: "/v1/games", body: `{"date":"2025-03-01","home_team_id":1,"away_team_id":1}`},
		{name: "missing away score", method: http.MethodPut, target: "/v1/games/1/score", body: `{"home_score":3}`},
		{name: "bad game id", method: http.MethodGet, target: "/v1/games/abc/boxscore"},
		{name: "bad team filter", method: http.MethodGet, target: "/v1/players?team_id=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := srv.do(t, tt.method, tt.target, tt.body, true)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "invalidInput", errorReason(t, env))
		})
	}
}

func TestRouter_LeadersErrors(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, env := srv.do(t, http.MethodGet, "/v1/leaders/hits", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknownMetric", errorReason(t, env))
	assert.Equal(t, "INVALID_ARGUMENT", env.Error["status"])

	rec, env = srv.do(t, http.MethodGet, "/v1/leaders/GOALS", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknownMetric", errorReason(t, env))

	rec, env = srv.do(t, http.MethodGet, "/v1/leaders/goals?limit=0", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalidInput", errorReason(t, env))
}

func TestRouter_CreateGameKeepsTimeOfDay(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "local datetime", date: "2025-08-31T20:00:00", want: "2025-08-31T20:00:00"},
		{name: "local datetime without seconds", date: "2025-08-31T20:00", want: "2025-08-31T20:00:00"},
		{name: "rfc3339 with offset", date: "2025-08-31T22:00:00+02:00", want: "2025-08-31T20:00:00"},
		{name: "date only", date: "2025-08-31", want: "2025-08-31T00:00:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, twoTeams())

			rec, env := srv.do(t, http.MethodPost, "/v1/games", `{"date":"`+tc.date+`","home_team_id":1,"away_team_id":2}`, true)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.Equal(t, tc.want, env.Data.(map[string]any)["date"])

			rec, env = srv.do(t, http.MethodGet, "/v1/games", "", false)
			require.Equal(t, http.StatusOK, rec.Code)
			games := env.Data.([]any)
			require.Len(t, games, 1)
			assert.Equal(t, tc.want, games[0].(map[string]any)["date"])
		})
	}
}

func TestRouter_EmptyLeagueReadsAreNotErrors(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, target := range []string{"/v1/leaders/points", "/v1/standings"} {
		rec, env := srv.do(t, http.MethodGet, target, "", false)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, []any{}, env.Data, target)
	}

	rec, env := srv.do(t, http.MethodGet, "/v1/stats/players", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{}, env.Data)

	for _, award := range []string{"mvp", "vezina", "norris", "calder"} {
		rec, env := srv.do(t, http.MethodGet, "/v1/awards/"+award, "", false)
		require.Equal(t, http.StatusOK, rec.Code, award)
		assert.Equal(t, map[string]any{}, env.Data, award)
	}
}

func TestRouter_SeasonFlow(t *testing.T) {
	srv := newTestServer(t, twoTeams())

	mustStatus := func(want int, method, target, body string) envelope {
		t.Helper()
		rec, env := srv.do(t, method, target, body, true)
		require.Equal(t, want, rec.Code, "%s %s: %s", method, target, rec.Body.String())
		return env
	}

	mustStatus(http.StatusCreated, http.MethodPost, "/v1/players", `{"handle":"sniper","position":"c","team_id":1}`)
	mustStatus(http.StatusCreated, http.MethodPost, "/v1/players", `{"handle":"wall","position":"G","team_id":2,"number":31}`)
	mustStatus(http.StatusCreated, http.MethodPost, "/v1/games", `{"date":"2025-03-01","home_team_id":1,"away_team_id":2,"round":"R1"}`)
	mustStatus(http.StatusOK, http.MethodPut, "/v1/games/1/score", `{"home_score":3,"away_score":1}`)
	mustStatus(http.StatusCreated, http.MethodPost, "/v1/games/1/players/1/skater", `{"goals":2,"assists":1,"shots":5}`)
	goalie := mustStatus(http.StatusCreated, http.MethodPost, "/v1/games/1/players/2/goalie", `{"shots_against":30,"saves":27,"goals_against":3}`)
	assert.Equal(t, float64(1), goalie.Data.(map[string]any)["gp"])
	mustStatus(http.StatusCreated, http.MethodPost, "/v1/games/1/teamstats?team_id=1", `{"goals":3,"shots_against":20}`)

	env := mustStatus(http.StatusOK, http.MethodGet, "/v1/players?team_id=1", "")
	players := env.Data.([]any)
	require.Len(t, players, 1)
	assert.Equal(t, "C", players[0].(map[string]any)["position"])

	env = mustStatus(http.StatusOK, http.MethodGet, "/v1/stats/players", "")
	byID := env.Data.(map[string]any)
	require.Contains(t, byID, "1")
	assert.Equal(t, float64(3), byID["1"].(map[string]any)["points"])

	env = mustStatus(http.StatusOK, http.MethodGet, "/v1/leaders/savepct", "")
	leaders := env.Data.([]any)
	require.Len(t, leaders, 1)
	assert.InDelta(t, 0.9, leaders[0].(map[string]any)["savepct"], 1e-9)

	env = mustStatus(http.StatusOK, http.MethodGet, "/v1/standings", "")
	rows := env.Data.([]any)
	require.Len(t, rows, 2)
	first := rows[0].(map[string]any)
	assert.Equal(t, "Ice Wolves", first["team"])
	assert.Equal(t, float64(1), first["wins"])
	assert.Equal(t, float64(20), first["ga"])

	env = mustStatus(http.StatusOK, http.MethodGet, "/v1/awards/mvp", "")
	assert.Equal(t, "sniper", env.Data.(map[string]any)["player"])

	env = mustStatus(http.StatusOK, http.MethodGet, "/v1/awards/vezina", "")
	assert.Equal(t, "wall", env.Data.(map[string]any)["player"])

	env = mustStatus(http.StatusOK, http.MethodGet, "/v1/players/1/season", "")
	assert.Equal(t, float64(2), env.Data.(map[string]any)["goals"])

	env = mustStatus(http.StatusOK, http.MethodGet, "/v1/games/1/boxscore", "")
	box := env.Data.(map[string]any)
	assert.Equal(t, "FINAL", box["game"].(map[string]any)["status"])
	assert.Len(t, box["skaters"], 1)
	assert.Len(t, box["goalies"], 1)
}

func TestRouter_IngestBoxscore(t *testing.T) {
	srv := newTestServer(t, twoTeams())

	_, _ = srv.do(t, http.MethodPost, "/v1/players", `{"handle":"sniper","position":"C","team_id":1}`, true)
	_, _ = srv.do(t, http.MethodPost, "/v1/games", `{"date":"2025-03-01","home_team_id":1,"away_team_id":2}`, true)

	rec, env := srv.do(t, http.MethodPost, "/v1/games/1/boxscore",
		`{"skaters":[{"player_id":1,"goals":1},{"player_id":40,"goals":1}],"teams":[{"team_id":9,"goals":1}]}`, true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "notFound", errorReason(t, env))

	rec, env = srv.do(t, http.MethodGet, "/v1/games/1/boxscore", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.Data.(map[string]any)["skaters"])

	rec, env = srv.do(t, http.MethodPost, "/v1/games/1/boxscore",
		`{"skaters":[{"player_id":1,"goals":1,"assists":2}],"teams":[{"team_id":1,"goals":1},{"team_id":2,"shots_against":14}]}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	out := env.Data.(map[string]any)
	assert.Len(t, out["skaters"], 1)
	assert.Len(t, out["teams"], 2)
}

func TestRouter_UploadAndServeScreenshot(t *testing.T) {
	srv := newTestServer(t, twoTeams())
	_, _ = srv.do(t, http.MethodPost, "/v1/games", `{"date":"2025-03-01","home_team_id":1,"away_team_id":2}`, true)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(screenshotFormField, "final.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/games/1/screenshot", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(adminKeyHeader, testAdminKey)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env envelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env))
	path, _ := env.Data.(map[string]any)["path"].(string)
	require.True(t, strings.HasPrefix(path, "/uploads/game_1_"), path)
	assert.True(t, strings.HasSuffix(path, ".png"), path)

	stored, err := os.ReadFile(filepath.Join(srv.uploadDir, strings.TrimPrefix(path, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))

	get := httptest.NewRecorder()
	srv.router.ServeHTTP(get, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, "png-bytes", get.Body.String())

	missing, env := srv.do(t, http.MethodGet, "/uploads/nope.png", "", false)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "notFound", errorReason(t, env))
}

func TestRouter_UploadRequiresFile(t *testing.T) {
	srv := newTestServer(t, twoTeams())
	_, _ = srv.do(t, http.MethodPost, "/v1/games", `{"date":"2025-03-01","home_team_id":1,"away_team_id":2}`, true)

	rec, env := srv.do(t, http.MethodPost, "/v1/games/1/screenshot", `{}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalidInput", errorReason(t, env))
}

func TestRouter_ObservesMatchedRoute(t *testing.T) {
	srv := newTestServer(t, twoTeams())

	_, _ = srv.do(t, http.MethodGet, "/v1/teams/2", "", false)
	_, _ = srv.do(t, http.MethodGet, "/v1/nowhere", "", false)

	require.Len(t, srv.observer.seen, 2)
	assert.Equal(t, routeObservation{method: http.MethodGet, route: "GET /v1/teams/{teamID}", status: http.StatusOK}, srv.observer.seen[0])
	assert.Equal(t, "", srv.observer.seen[1].route)
	assert.Equal(t, http.StatusNotFound, srv.observer.seen[1].status)
}

func TestRecoverPanic_RendersInternalError(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var env envelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "INTERNAL", env.Error["status"])
	assert.Equal(t, "internal server error", env.Error["message"])
}
