package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/pkg/types/common"
)

func TestNewTemplatesHandler_StoresDependencies(t *testing.T) {
	cfg := testConfig(t)
	h := NewTemplatesHandler(cfg, logging.NewNopLogger())
	require.NotNil(t, h)
	assert.Same(t, cfg, h.cfg)
}

func TestGetTemplates_PageSizeLimitsResultCount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewTemplatesHandler(testConfig(t), logging.NewNopLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/templates?page=1&page_size=2", nil)

	h.GetTemplates(c)

	require.Equal(t, 200, w.Code)
	assert.LessOrEqual(t, countItems(t, w.Body.Bytes()), 2)
}

func TestGetTemplates_InvalidSortOrder_BadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewTemplatesHandler(testConfig(t), logging.NewNopLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/templates?sort_order=sideways", nil)

	h.GetTemplates(c)

	assert.Equal(t, 400, w.Code)
}

func TestSortTemplateViews_ByRelevancePriorDescending(t *testing.T) {
	views := []templateView{
		{Index: 0, RelevancePrior: 0.2},
		{Index: 1, RelevancePrior: 0.9},
		{Index: 2, RelevancePrior: 0.5},
	}

	sortTemplateViews(views, "relevance_prior", "desc")

	assert.Equal(t, []int{1, 2, 0}, []int{views[0].Index, views[1].Index, views[2].Index})
}

func countItems(t *testing.T, body []byte) int {
	t.Helper()
	var resp common.PageResponse[templateView]
	require.NoError(t, json.Unmarshal(body, &resp))
	return len(resp.Items)
}

//Personal.AI order the ending
