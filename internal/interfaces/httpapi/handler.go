package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/hockey-stats/internal/platform/logging"
	"github.com/riskibarqy/hockey-stats/internal/usecase"
)

// ScreenshotFiles resolves stored screenshot names to files on disk.
type ScreenshotFiles interface {
	Path(name string) (string, error)
}

type Handler struct {
	teamService   *usecase.TeamService
	playerService *usecase.PlayerService
	gameService   *usecase.GameService
	statService   *usecase.StatService
	seasonService *usecase.SeasonService
	screenshots   ScreenshotFiles
	uploadMax     int64
	logger        *logging.Logger
	validator     *validator.Validate
}

type HandlerDeps struct {
	TeamService    *usecase.TeamService
	PlayerService  *usecase.PlayerService
	GameService    *usecase.GameService
	StatService    *usecase.StatService
	SeasonService  *usecase.SeasonService
	Screenshots    ScreenshotFiles
	UploadMaxBytes int64
}

func NewHandler(deps HandlerDeps, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:   deps.TeamService,
		playerService: deps.PlayerService,
		gameService:   deps.GameService,
		statService:   deps.StatService,
		seasonService: deps.SeasonService,
		screenshots:   deps.Screenshots,
		uploadMax:     deps.UploadMaxBytes,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ServeScreenshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ServeScreenshot")
	defer span.End()

	name := r.PathValue("name")
	if h.screenshots == nil {
		writeError(ctx, w, fmt.Errorf("%w: screenshot store is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	path, err := h.screenshots.Path(name)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: screenshot=%s", usecase.ErrNotFound, name))
		return
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writeError(ctx, w, fmt.Errorf("%w: screenshot=%s", usecase.ErrNotFound, name))
		return
	}

	http.ServeFile(w, r.WithContext(ctx), path)
}

func (h *Handler) decodeRequest(ctx context.Context, body io.Reader, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// queryID reads an optional positive id from the query string.
func queryID(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return &id, nil
}

// logFailure logs server-side failures at error level and client mistakes at
// warn level.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}
