package http

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/retrosynth/internal/bootstrap"
	"github.com/turtacn/retrosynth/internal/config"
	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/pkg/types/common"
)

// templateView is the JSON shape of one D3 template corpus entry. The
// fingerprint itself is omitted: it is an opaque binary blob of no use to an
// API consumer browsing the corpus.
type templateView struct {
	Index          int     `json:"index"`
	ReactionSMARTS string  `json:"reaction_smarts"`
	RelevancePrior float64 `json:"relevance_prior"`
}

// TemplatesHandler serves GET /api/v1/templates: a paginated listing of the
// reference adapter's template corpus, sourced from D3 (or the built-in
// fallback corpus when no catalog is reachable).
type TemplatesHandler struct {
	cfg    *config.Config
	logger logging.Logger
}

// NewTemplatesHandler constructs a TemplatesHandler bound to the given
// application configuration, used to assemble the template corpus per
// request via internal/bootstrap, mirroring RoutesHandler.
func NewTemplatesHandler(cfg *config.Config, logger logging.Logger) *TemplatesHandler {
	return &TemplatesHandler{cfg: cfg, logger: logger}
}

// GetTemplates handles GET /api/v1/templates?page=&page_size=&sort_by=&sort_order=.
// sort_by accepts "index" (default) or "relevance_prior".
func (h *TemplatesHandler) GetTemplates(c *gin.Context) {
	req := common.PageRequest{
		Page:      1,
		PageSize:  20,
		SortBy:    c.DefaultQuery("sort_by", "index"),
		SortOrder: c.DefaultQuery("sort_order", "asc"),
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.PageSize = n
		}
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := bootstrap.BuildEngine(c.Request.Context(), h.cfg, h.logger, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer res.Close()

	views := make([]templateView, len(res.Templates))
	for i, t := range res.Templates {
		views[i] = templateView{Index: t.Index, ReactionSMARTS: t.ReactionSMARTS, RelevancePrior: t.RelevancePrior}
	}
	sortTemplateViews(views, req.SortBy, req.SortOrder)

	total := int64(len(views))
	start := req.Offset()
	if start > len(views) {
		start = len(views)
	}
	end := start + req.PageSize
	if end > len(views) {
		end = len(views)
	}

	c.JSON(http.StatusOK, common.NewPageResponse(views[start:end], total, req))
}

func sortTemplateViews(views []templateView, sortBy, sortOrder string) {
	less := func(i, j int) bool {
		switch sortBy {
		case "relevance_prior":
			return views[i].RelevancePrior < views[j].RelevancePrior
		default:
			return views[i].Index < views[j].Index
		}
	}
	if sortOrder == "desc" {
		base := less
		less = func(i, j int) bool { return base(j, i) }
	}
	sort.Slice(views, less)
}

//Personal.AI order the ending
