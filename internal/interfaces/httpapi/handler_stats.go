package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/hockey-stats/internal/usecase"
)

func (h *Handler) EnterSkaterStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EnterSkaterStat")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req skaterStatRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.statService.EnterSkaterStat(ctx, gameID, playerID, req.toStat())
	if err != nil {
		h.logFailure(ctx, "enter skater stat failed", err, "game_id", gameID, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, skaterStatToDTO(item))
}

func (h *Handler) EnterGoalieStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EnterGoalieStat")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req goalieStatRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.statService.EnterGoalieStat(ctx, gameID, playerID, req.toLine())
	if err != nil {
		h.logFailure(ctx, "enter goalie stat failed", err, "game_id", gameID, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, goalieStatToDTO(item))
}

func (h *Handler) EnterTeamStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EnterTeamStat")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := queryID(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if teamID == nil {
		writeError(ctx, w, fmt.Errorf("%w: team_id query parameter is required", usecase.ErrInvalidInput))
		return
	}
	var req teamStatRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.statService.EnterTeamStat(ctx, gameID, *teamID, req.toStat())
	if err != nil {
		h.logFailure(ctx, "enter team stat failed", err, "game_id", gameID, "team_id", *teamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamStatToDTO(item))
}

func (h *Handler) IngestBoxscore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestBoxscore")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req ingestBoxscoreRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statService.IngestBoxscore(ctx, gameID, req.toInput())
	if err != nil {
		h.logFailure(ctx, "ingest boxscore failed", err, "game_id", gameID)
		writeError(ctx, w, err)
		return
	}

	out := ingestBoxscoreDTO{
		Skaters: make([]skaterStatDTO, 0, len(result.Skaters)),
		Goalies: make([]goalieStatDTO, 0, len(result.Goalies)),
		Teams:   make([]teamStatDTO, 0, len(result.Teams)),
	}
	for _, s := range result.Skaters {
		out.Skaters = append(out.Skaters, skaterStatToDTO(s))
	}
	for _, g := range result.Goalies {
		out.Goalies = append(out.Goalies, goalieStatToDTO(g))
	}
	for _, t := range result.Teams {
		out.Teams = append(out.Teams, teamStatToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusCreated, out)
}
