package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/p0rkchop/ward-sub000/internal/audit"
	"github.com/p0rkchop/ward-sub000/internal/cache"
	"github.com/p0rkchop/ward-sub000/internal/httperr"
	"github.com/p0rkchop/ward-sub000/internal/httpresp"
	"github.com/p0rkchop/ward-sub000/internal/middleware"
	"github.com/p0rkchop/ward-sub000/internal/models"
)

type ResourceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewResourceHandler(
	db *gorm.DB,
	auditor *audit.Dispatcher,
	availabilityCache *cache.Availability,
) *ResourceHandler {
	return &ResourceHandler{
		db:    db,
		audit: auditor,
		cache: availabilityCache,
	}
}

// --------- Requests ---------

type CreateResourceRequest struct {
	Name                 string `json:"name" binding:"required"`
	Quantity             int    `json:"quantity"`
	ProfessionalsPerUnit int    `json:"professionals_per_unit"`
}

type UpdateResourceRequest struct {
	Name                 *string `json:"name,omitempty"`
	Active               *bool   `json:"active,omitempty"`
	Quantity             *int    `json:"quantity,omitempty"`
	ProfessionalsPerUnit *int    `json:"professionals_per_unit,omitempty"`
}

// --------- Handlers ---------

func (h *ResourceHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Where("deleted_at IS NULL")
	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var resources []models.Resource
	if err := q.Order("name ASC").Find(&resources).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list resources.")
		return
	}

	httpresp.List(c, resources)
}

func (h *ResourceHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "name is required.")
		return
	}

	res := models.Resource{
		Name:                 strings.TrimSpace(req.Name),
		Active:               true,
		Quantity:             max(req.Quantity, 1),
		ProfessionalsPerUnit: max(req.ProfessionalsPerUnit, 1),
	}

	if err := h.db.Create(&res).Error; err != nil {
		httperr.Internal(c, "create_failed", "Could not create resource.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "resource_created",
		Entity:   "resource",
		EntityID: &res.ID,
	})

	httpresp.Created(c, res)
}

func (h *ResourceHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Resource id must be numeric.")
		return
	}

	var res models.Resource
	if err := h.db.Where("id = ? AND deleted_at IS NULL", id).First(&res).Error; err != nil {
		httperr.NotFound(c, "resource_not_found", "Resource not found.")
		return
	}

	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update payload.")
		return
	}

	if req.Name != nil {
		res.Name = strings.TrimSpace(*req.Name)
	}
	if req.Active != nil {
		res.Active = *req.Active
	}
	if req.Quantity != nil && *req.Quantity > 0 {
		res.Quantity = *req.Quantity
	}
	if req.ProfessionalsPerUnit != nil && *req.ProfessionalsPerUnit > 0 {
		res.ProfessionalsPerUnit = *req.ProfessionalsPerUnit
	}

	if err := h.db.Save(&res).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update resource.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "resource_updated",
		Entity:   "resource",
		EntityID: &res.ID,
	})

	h.cache.Invalidate(c.Request.Context())
	httpresp.OK(c, res)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Resource id must be numeric.")
		return
	}

	var res models.Resource
	if err := h.db.Where("id = ? AND deleted_at IS NULL", id).First(&res).Error; err != nil {
		httperr.NotFound(c, "resource_not_found", "Resource not found.")
		return
	}

	now := time.Now().UTC()
	res.DeletedAt = &now

	if err := h.db.Save(&res).Error; err != nil {
		httperr.Internal(c, "delete_failed", "Could not delete resource.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "resource_deleted",
		Entity:   "resource",
		EntityID: &res.ID,
	})

	h.cache.Invalidate(c.Request.Context())
	httpresp.OK(c, res)
}
