package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/retrosynth/internal/bootstrap"
	"github.com/turtacn/retrosynth/internal/config"
	"github.com/turtacn/retrosynth/internal/infrastructure/eventbus"
	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/internal/retro"
	"github.com/turtacn/retrosynth/pkg/errors"
)

// statusFor maps a domain error to its HTTP status via the AppError code
// when present, falling back to a given default for plain errors.
func statusFor(err error, fallback int) int {
	if errors.GetCode(err) == errors.CodeUnknown {
		return fallback
	}
	return errors.GetCode(err).HTTPStatus()
}

// RouteRequest is the POST /api/v1/routes request body: a target molecule
// and the rendering format for the enumerated paths.
type RouteRequest struct {
	Target string `json:"target" binding:"required"`
	Format string `json:"format"`
}

// RouteResponse is the POST /api/v1/routes response: the resulting graph
// shape plus every complete buyable route found.
type RouteResponse struct {
	Target    string        `json:"target"`
	Chemicals int           `json:"chemicals"`
	Reactions int           `json:"reactions"`
	Done      bool          `json:"done"`
	Paths     []interface{} `json:"paths"`
}

// RoutesHandler serves POST /api/v1/routes: it builds a fresh search graph
// for the requested target and streams back every buyable route found, in
// one request/response cycle.
type RoutesHandler struct {
	cfg    *config.Config
	logger logging.Logger
}

// NewRoutesHandler constructs a RoutesHandler bound to the given
// application configuration, used to assemble a retro.Engine per request
// via internal/bootstrap.
func NewRoutesHandler(cfg *config.Config, logger logging.Logger) *RoutesHandler {
	return &RoutesHandler{cfg: cfg, logger: logger}
}

// PostRoutes handles POST /api/v1/routes.
func (h *RoutesHandler) PostRoutes(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Format == "" {
		req.Format = retro.FormatJSON
	}

	ctx := c.Request.Context()

	res, err := bootstrap.BuildEngine(ctx, h.cfg, h.logger, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer res.Close()

	start := time.Now()
	if err := res.Engine.BuildTree(ctx, req.Target); err != nil {
		c.JSON(statusFor(err, http.StatusUnprocessableEntity), gin.H{"error": err.Error()})
		return
	}
	h.logger.Info("build_tree complete",
		logging.String("target", req.Target),
		logging.Duration("elapsed", time.Since(start)),
	)

	ch, err := res.Engine.GetBuyablePaths(ctx, req.Format)
	if err != nil {
		c.JSON(statusFor(err, http.StatusUnprocessableEntity), gin.H{"error": err.Error()})
		return
	}

	paths := make([]interface{}, 0)
	for r := range ch {
		if r.Err != nil {
			c.JSON(statusFor(r.Err, http.StatusInternalServerError), gin.H{"error": r.Err.Error()})
			return
		}
		paths = append(paths, renderPath(r.Tree, req.Format))
	}

	h.publishRouteCompleted(ctx, res, req.Target, len(paths), time.Since(start))
	h.exportGraph(ctx, res, req.Target)

	c.JSON(http.StatusOK, RouteResponse{
		Target:    req.Target,
		Chemicals: res.Engine.Graph().ChemicalCount(),
		Reactions: res.Engine.Graph().ReactionCount(),
		Done:      res.Engine.IsDone(),
		Paths:     paths,
	})
}

// publishRouteCompleted reports the outcome of one build_tree run to
// eventbus, when D4's Kafka producer is configured. Publishing is always
// best-effort: a failure is logged and never surfaces to the HTTP caller.
func (h *RoutesHandler) publishRouteCompleted(ctx context.Context, res *bootstrap.Resources, target string, pathCount int, elapsed time.Duration) {
	if res.EventBus == nil {
		return
	}
	evt := eventbus.RouteCompletedEvent{
		TargetSMILES: target,
		RolloutCount: res.Engine.RolloutCount(),
		PathCount:    pathCount,
		Elapsed:      elapsed,
		Done:         res.Engine.IsDone(),
	}
	if err := res.EventBus.PublishRouteCompleted(ctx, evt); err != nil {
		h.logger.Warn("route completed event not published", logging.String("target", target), logging.Err(err))
	}
}

// exportGraph mirrors the completed DAG into Neo4j, when D5's exporter is
// configured. Also best-effort: a failure never surfaces to the HTTP caller.
func (h *RoutesHandler) exportGraph(ctx context.Context, res *bootstrap.Resources, target string) {
	if res.GraphExport == nil {
		return
	}
	chemicals, reactions, edges := bootstrap.ExportSnapshot(res.Engine.Graph())
	if err := res.GraphExport.ExportDAG(ctx, chemicals, reactions, edges); err != nil {
		h.logger.Warn("dag export to neo4j failed", logging.String("target", target), logging.Err(err))
	}
}

func renderPath(tree *retro.PathNode, format string) interface{} {
	if format == retro.FormatGraph {
		return tree.ToGraph()
	}
	return tree.ToJSON()
}

// HealthHandler serves the liveness/readiness endpoints. It carries no
// dependencies today: the engine is stateless and assembled per-request, so
// "ready" is equivalent to "alive".
type HealthHandler struct{}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness handles GET /healthz.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

//Personal.AI order the ending
