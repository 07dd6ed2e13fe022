package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/hockey-stats/internal/domain/season"
	"github.com/riskibarqy/hockey-stats/internal/usecase"
)

func (h *Handler) ListPlayerTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerTotals")
	defer span.End()

	totals, err := h.seasonService.PlayerTotals(ctx)
	if err != nil {
		h.logFailure(ctx, "aggregate player totals failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerTotalsByID(totals))
}

func (h *Handler) GetPlayerSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSeason")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.PlayerSeason(ctx, playerID)
	if err != nil {
		h.logFailure(ctx, "get player season failed", err, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerTotalsToDTO(item))
}

func (h *Handler) ListLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaders")
	defer span.End()

	metric := r.PathValue("metric")
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be positive integer", usecase.ErrInvalidInput))
			return
		}
		limit = v
	}

	leaders, err := h.seasonService.Leaders(ctx, metric, limit)
	if err != nil {
		h.logFailure(ctx, "list leaders failed", err, "metric", metric, "limit", limit)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderDTO, 0, len(leaders))
	for _, l := range leaders {
		items = append(items, leaderToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	rows, err := h.seasonService.Standings(ctx)
	if err != nil {
		h.logFailure(ctx, "list standings failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAwardMVP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAwardMVP")
	defer span.End()

	h.writePlayerAward(ctx, w, "mvp", h.seasonService.AwardMVP)
}

func (h *Handler) GetAwardCalder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAwardCalder")
	defer span.End()

	h.writePlayerAward(ctx, w, "calder", h.seasonService.AwardCalder)
}

func (h *Handler) GetAwardNorris(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAwardNorris")
	defer span.End()

	h.writePlayerAward(ctx, w, "norris", h.seasonService.AwardNorris)
}

func (h *Handler) GetAwardVezina(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAwardVezina")
	defer span.End()

	winner, ok, err := h.seasonService.AwardVezina(ctx)
	if err != nil {
		h.logFailure(ctx, "award failed", err, "award", "vezina")
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeSuccess(ctx, w, http.StatusOK, emptyAward{})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, vezinaToDTO(winner))
}

func (h *Handler) writePlayerAward(
	ctx context.Context,
	w http.ResponseWriter,
	award string,
	pick func(context.Context) (season.PlayerTotals, bool, error),
) {
	winner, ok, err := pick(ctx)
	if err != nil {
		h.logFailure(ctx, "award failed", err, "award", award)
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeSuccess(ctx, w, http.StatusOK, emptyAward{})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerTotalsToDTO(winner))
}
