package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/pageinsights/internal/domain"
	"github.com/jonesrussell/pageinsights/internal/logger"
	"github.com/jonesrussell/pageinsights/internal/service"
)

// Per-endpoint pagination bounds.
var (
	pagesBounds     = pageParams{defaultSize: 10, maxSize: 100}
	postsBounds     = pageParams{defaultSize: 15, maxSize: 50}
	employeesBounds = pageParams{defaultSize: 20, maxSize: 100}
)

// PagesHandler handles page-related HTTP requests.
type PagesHandler struct {
	svc InsightsService
	log logger.Interface
}

// NewPagesHandler creates a new pages handler.
func NewPagesHandler(svc InsightsService, log logger.Interface) *PagesHandler {
	return &PagesHandler{
		svc: svc,
		log: log.WithComponent("api"),
	}
}

// GetPage handles GET /api/pages/:page_id. A stored page is served from
// the cache; an unknown key triggers a live fetch.
func (h *PagesHandler) GetPage(c *gin.Context) {
	pageID := c.Param("page_id")
	if pageID == "" {
		respondBadRequest(c, "Invalid page ID")
		return
	}

	page, err := h.svc.GetPage(c.Request.Context(), pageID)
	if err != nil {
		h.log.Error("Get page failed", "page_id", pageID, "error", err)
		respondInternalError(c, "Error scraping page: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, page)
}

// ListPages handles GET /api/pages with optional name, industry and
// follower count filters.
func (h *PagesHandler) ListPages(c *gin.Context) {
	page, pageSize := parsePagination(c, pagesBounds)

	filter := domain.PageFilter{
		Name:     c.Query("name"),
		Industry: c.Query("industry"),
	}

	if minVal, ok, err := parseOptionalInt(c, "follower_count_min"); err != nil {
		respondBadRequest(c, err.Error())
		return
	} else if ok {
		filter.FollowerCountMin = &minVal
	}

	if maxVal, ok, err := parseOptionalInt(c, "follower_count_max"); err != nil {
		respondBadRequest(c, err.Error())
		return
	} else if ok {
		filter.FollowerCountMax = &maxVal
	}

	result, err := h.svc.ListPages(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		h.log.Error("List pages failed", "error", err)
		respondInternalError(c, "Failed to list pages")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListPosts handles GET /api/pages/:page_id/posts.
func (h *PagesHandler) ListPosts(c *gin.Context) {
	pageID := c.Param("page_id")
	page, pageSize := parsePagination(c, postsBounds)

	result, err := h.svc.ListPosts(c.Request.Context(), pageID, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondNotFound(c, "Page")
			return
		}
		h.log.Error("List posts failed", "page_id", pageID, "error", err)
		respondInternalError(c, "Failed to list posts")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListEmployees handles GET /api/pages/:page_id/employees.
func (h *PagesHandler) ListEmployees(c *gin.Context) {
	pageID := c.Param("page_id")
	page, pageSize := parsePagination(c, employeesBounds)

	result, err := h.svc.ListEmployees(c.Request.Context(), pageID, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondNotFound(c, "Page")
			return
		}
		h.log.Error("List employees failed", "page_id", pageID, "error", err)
		respondInternalError(c, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFollowers handles GET /api/pages/:page_id/followers.
func (h *PagesHandler) GetFollowers(c *gin.Context) {
	pageID := c.Param("page_id")

	summary, err := h.svc.FollowerSummary(c.Request.Context(), pageID)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondNotFound(c, "Page")
			return
		}
		h.log.Error("Follower summary failed", "page_id", pageID, "error", err)
		respondInternalError(c, "Failed to get follower summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CreateDemoPage handles POST /api/pages/demo/:page_id.
func (h *PagesHandler) CreateDemoPage(c *gin.Context) {
	pageID := c.Param("page_id")
	if pageID == "" {
		respondBadRequest(c, "Invalid page ID")
		return
	}

	created, err := h.svc.CreateDemoPage(c.Request.Context(), pageID)
	if err != nil {
		h.log.Error("Demo page creation failed", "page_id", pageID, "error", err)
		respondInternalError(c, "Failed to create demo page")
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{
			"message": "Page already exists",
			"page_id": pageID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Demo page created successfully",
		"page_id": pageID,
		"note":    "This is mock data for demonstration purposes",
	})
}
