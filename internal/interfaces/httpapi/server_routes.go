package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /uploads/{name}", handler.ServeScreenshot)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}/season", handler.GetPlayerSeason)
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/games/{gameID}/boxscore", handler.GetBoxscore)

	mux.HandleFunc("GET /v1/stats/players", handler.ListPlayerTotals)
	mux.HandleFunc("GET /v1/leaders/{metric}", handler.ListLeaders)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/awards/mvp", handler.GetAwardMVP)
	mux.HandleFunc("GET /v1/awards/vezina", handler.GetAwardVezina)
	mux.HandleFunc("GET /v1/awards/norris", handler.GetAwardNorris)
	mux.HandleFunc("GET /v1/awards/calder", handler.GetAwardCalder)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminKey string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminKey(adminKey, h)
	}

	mux.Handle("POST /v1/teams", admin(handler.CreateTeam))
	mux.Handle("POST /v1/players", admin(handler.CreatePlayer))
	mux.Handle("POST /v1/games", admin(handler.CreateGame))
	mux.Handle("PUT /v1/games/{gameID}/score", admin(handler.RecordScore))
	mux.Handle("POST /v1/games/{gameID}/screenshot", admin(handler.UploadScreenshot))
	mux.Handle("POST /v1/games/{gameID}/players/{playerID}/skater", admin(handler.EnterSkaterStat))
	mux.Handle("POST /v1/games/{gameID}/players/{playerID}/goalie", admin(handler.EnterGoalieStat))
	mux.Handle("POST /v1/games/{gameID}/teamstats", admin(handler.EnterTeamStat))
	mux.Handle("POST /v1/games/{gameID}/boxscore", admin(handler.IngestBoxscore))
}
