package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"emberhold/internal/app/action"
	"emberhold/internal/app/auth"
	"emberhold/internal/app/ports"
	"emberhold/internal/app/status"
	"emberhold/internal/domain/economy"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

type Handler struct {
	LoginUC  auth.LoginUseCase
	VerifyUC auth.VerifyUseCase
	ActionUC action.UseCase
	StatusUC status.UseCase
	KPI      kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	game := s.Group("/game")
	game.POST("/auth", h.login)
	game.POST("/player-state", h.playerState)
	game.POST("/altar/activate", h.actionHandler(economy.ActionActivateAltar))
	game.POST("/campfire/start", h.actionHandler(economy.ActionStartCampfire))
	game.POST("/gather/food", h.actionHandler(economy.ActionGatherFood))
	game.POST("/gather/wood", h.actionHandler(economy.ActionGatherWood))
	game.POST("/waterfall/activate", h.actionHandler(economy.ActionActivateWaterfall))
	game.POST("/waterfall/boost", h.boostWaterfall)
	game.POST("/enhance", h.actionHandler(economy.ActionEnhance))

	s.GET("/ops/kpi", h.kpi)
}

type loginRequest struct {
	InitData string `json:"initData"`
}

type boostRequest struct {
	ResourceType string `json:"resource_type"`
}

// actionResponse is the transport shape of every game action outcome. Rule
// rejections are HTTP 200 with success=false, matching the original surface.
type actionResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	CooldownSeconds int    `json:"cooldown_seconds"`
}

func (h Handler) login(c context.Context, ctx *app.RequestContext) {
	var body loginRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.LoginUC.Execute(c, auth.LoginRequest{InitData: body.InitData})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) playerState(c context.Context, ctx *app.RequestContext) {
	playerID, err := h.requireAuthenticatedPlayer(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	snap, err := h.StatusUC.Execute(c, status.Request{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, snap)
}

func (h Handler) actionHandler(kind economy.ActionKind) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		h.runAction(c, ctx, kind, "")
	}
}

func (h Handler) boostWaterfall(c context.Context, ctx *app.RequestContext) {
	var body boostRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.runAction(c, ctx, economy.ActionBoostWaterfall, economy.Resource(body.ResourceType))
}

func (h Handler) runAction(c context.Context, ctx *app.RequestContext, kind economy.ActionKind, resource economy.Resource) {
	playerID, err := h.requireAuthenticatedPlayer(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.ActionUC.Execute(c, action.Request{
		PlayerID: playerID,
		Action:   kind,
		Resource: resource,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, actionResponse{
		Success:         resp.Result.Success,
		Message:         resp.Result.Message,
		CooldownSeconds: resp.Result.CooldownSeconds,
	})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingBearerToken = errors.New("missing bearer token")

func (h Handler) requireAuthenticatedPlayer(c context.Context, ctx *app.RequestContext) (string, error) {
	header := strings.TrimSpace(string(ctx.GetHeader(authorizationHeader)))
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMissingBearerToken
	}
	return h.VerifyUC.Execute(c, strings.TrimPrefix(header, bearerPrefix))
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingBearerToken):
		writeErrorBody(ctx, consts.StatusUnauthorized, "missing_bearer_token", err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_session_token", err.Error())
	case errors.Is(err, auth.ErrInvalidInitData):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_init_data", err.Error())
	case errors.Is(err, auth.ErrExpiredInitData):
		writeErrorBody(ctx, consts.StatusUnauthorized, "expired_init_data", err.Error())
	case errors.Is(err, auth.ErrInvalidRequest),
		errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"success": false,
		"code":    code,
		"message": message,
	})
}
