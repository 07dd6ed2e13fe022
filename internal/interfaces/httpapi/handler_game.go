package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/hockey-stats/internal/usecase"
)

const screenshotFormField = "file"

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var req createGameRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseGameDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.CreateGame(ctx, usecase.CreateGameInput{
		Date:       date,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Round:      req.Round,
	})
	if err != nil {
		h.logFailure(ctx, "create game failed", err, "home_team_id", req.HomeTeamID, "away_team_id", req.AwayTeamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(ctx, item))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	games, err := h.gameService.ListGames(ctx)
	if err != nil {
		h.logFailure(ctx, "list games failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(ctx, g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetBoxscore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoxscore")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	box, err := h.gameService.GetBoxscore(ctx, gameID)
	if err != nil {
		h.logFailure(ctx, "get boxscore failed", err, "game_id", gameID)
		writeError(ctx, w, err)
		return
	}

	out := boxscoreDTO{
		Game:    gameToDTO(ctx, box.Game),
		Skaters: make([]skaterStatDTO, 0, len(box.Skaters)),
		Goalies: make([]goalieStatDTO, 0, len(box.Goalies)),
	}
	for _, s := range box.Skaters {
		out.Skaters = append(out.Skaters, skaterStatToDTO(s))
	}
	for _, g := range box.Goalies {
		out.Goalies = append(out.Goalies, goalieStatToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RecordScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordScore")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req recordScoreRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.RecordScore(ctx, gameID, *req.HomeScore, *req.AwayScore)
	if err != nil {
		h.logFailure(ctx, "record score failed", err, "game_id", gameID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(ctx, item))
}

func (h *Handler) UploadScreenshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadScreenshot")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if h.uploadMax > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.uploadMax)
	}
	file, header, err := r.FormFile(screenshotFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(ctx, w, fmt.Errorf("%w: screenshot exceeds %d bytes", usecase.ErrInvalidInput, tooLarge.Limit))
			return
		}
		writeError(ctx, w, fmt.Errorf("%w: multipart field %q is required", usecase.ErrInvalidInput, screenshotFormField))
		return
	}
	defer file.Close()

	item, err := h.gameService.UploadScreenshot(ctx, gameID, header.Filename, file)
	if err != nil {
		h.logFailure(ctx, "upload screenshot failed", err, "game_id", gameID, "filename", header.Filename)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, screenshotDTO{
		Path: item.ScreenshotPath,
		Game: gameToDTO(ctx, item),
	})
}
