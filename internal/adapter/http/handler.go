package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"autodrill/internal/app/colony"
	"autodrill/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const maxTicksPerRequest = 60000

var ErrInvalidJSON = errors.New("invalid json")

type Handler struct {
	Colony *colony.Colony
	KPI    kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	drills := s.Group("/api/drills")
	drills.GET("", h.listDrills)
	drills.POST("", h.placeDrill)
	drills.GET("/:id", h.inspectDrill)
	drills.DELETE("/:id", h.removeDrill)
	drills.POST("/:id/power", h.setPower)
	drills.POST("/:id/switch", h.setSwitch)
	drills.POST("/:id/force", h.forceSpawn)

	s.GET("/api/items", h.items)
	s.GET("/api/kinds", h.kinds)

	sim := s.Group("/api/sim")
	sim.POST("/tick", h.tick)
	sim.POST("/save", h.save)
	sim.POST("/load", h.load)

	s.GET("/ops/kpi", h.kpi)
}

type placeRequest struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type toggleRequest struct {
	On *bool `json:"on"`
}

type tickRequest struct {
	Ticks int `json:"ticks"`
}

func (h Handler) listDrills(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{
		"tick":   h.Colony.Tick(),
		"drills": h.Colony.List(c),
	})
}

func (h Handler) placeDrill(c context.Context, ctx *app.RequestContext) {
	var body placeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeError(ctx, ErrInvalidJSON)
		return
	}
	view, err := h.Colony.PlaceDrill(c, colony.PlaceRequest{
		DrillID: body.ID,
		Kind:    body.Kind,
		X:       body.X,
		Y:       body.Y,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, view)
}

func (h Handler) inspectDrill(c context.Context, ctx *app.RequestContext) {
	resp, err := h.Colony.Inspect(c, drillID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) removeDrill(c context.Context, ctx *app.RequestContext) {
	if err := h.Colony.RemoveDrill(c, drillID(ctx)); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.SetStatusCode(consts.StatusNoContent)
}

func (h Handler) setPower(c context.Context, ctx *app.RequestContext) {
	on, err := decodeToggle(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.Colony.SetPower(c, drillID(ctx), on); err != nil {
		writeError(ctx, err)
		return
	}
	h.inspectDrill(c, ctx)
}

func (h Handler) setSwitch(c context.Context, ctx *app.RequestContext) {
	on, err := decodeToggle(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.Colony.SetActive(c, drillID(ctx), on); err != nil {
		writeError(ctx, err)
		return
	}
	h.inspectDrill(c, ctx)
}

func (h Handler) forceSpawn(c context.Context, ctx *app.RequestContext) {
	res, err := h.Colony.ForceSpawn(c, drillID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, res)
}

func (h Handler) items(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"items": h.Colony.Items(c)})
}

func (h Handler) kinds(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"kinds": h.Colony.Kinds()})
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	var body tickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeError(ctx, ErrInvalidJSON)
		return
	}
	if body.Ticks == 0 {
		body.Ticks = 1
	}
	if body.Ticks < 0 || body.Ticks > maxTicksPerRequest {
		writeError(ctx, colony.ErrInvalidRequest)
		return
	}
	report, err := h.Colony.AdvanceTicks(c, body.Ticks)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, report)
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	if err := h.Colony.Save(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"saved": true, "tick": h.Colony.Tick()})
}

func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	if err := h.Colony.Load(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"drills": h.Colony.List(c)})
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

func drillID(ctx *app.RequestContext) string {
	return strings.TrimSpace(ctx.Param("id"))
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func decodeToggle(ctx *app.RequestContext) (bool, error) {
	var body toggleRequest
	if err := decodeJSON(ctx, &body); err != nil {
		return false, ErrInvalidJSON
	}
	if body.On == nil {
		return false, colony.ErrInvalidRequest
	}
	return *body.On, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrInvalidJSON):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", err.Error())
	case errors.Is(err, colony.ErrUnknownKind):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_kind", err.Error())
	case errors.Is(err, colony.ErrOutOfBounds):
		writeErrorBody(ctx, consts.StatusBadRequest, "out_of_bounds", err.Error())
	case errors.Is(err, colony.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, colony.ErrDevModeRequired):
		writeErrorBody(ctx, consts.StatusForbidden, "dev_mode_required", err.Error())
	case errors.Is(err, colony.ErrCellOccupied):
		writeErrorBody(ctx, consts.StatusConflict, "cell_occupied", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "canceled", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
