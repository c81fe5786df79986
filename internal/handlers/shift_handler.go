package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/p0rkchop/ward-sub000/internal/cache"
	"github.com/p0rkchop/ward-sub000/internal/dto"
	"github.com/p0rkchop/ward-sub000/internal/httperr"
	"github.com/p0rkchop/ward-sub000/internal/httpresp"
	"github.com/p0rkchop/ward-sub000/internal/middleware"
	ucSchedule "github.com/p0rkchop/ward-sub000/internal/usecase/schedule"
)

type ShiftHandler struct {
	create *ucSchedule.CreateShift
	cancel *ucSchedule.CancelShift
	list   *ucSchedule.ListShifts
	cache  *cache.Availability
}

func NewShiftHandler(
	create *ucSchedule.CreateShift,
	cancel *ucSchedule.CancelShift,
	list *ucSchedule.ListShifts,
	availabilityCache *cache.Availability,
) *ShiftHandler {
	return &ShiftHandler{
		create: create,
		cancel: cancel,
		list:   list,
		cache:  availabilityCache,
	}
}

// --------- Requests ---------

type CreateShiftRequest struct {
	ResourceID uint   `json:"resource_id" binding:"required"`
	Start      string `json:"start" binding:"required"`
	End        string `json:"end" binding:"required"`
}

// --------- Handlers ---------

func (h *ShiftHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "resource_id, start and end are required.")
		return
	}

	start, end, err := parseWindow(req.Start, req.End)
	if err != nil {
		httperr.BadRequest(c, "invalid_window", "start and end must be RFC3339 timestamps.")
		return
	}

	shift, err := h.create.Execute(c.Request.Context(), professionalID, req.ResourceID, start, end)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.Created(c, dto.FromShift(shift))
}

func (h *ShiftHandler) Cancel(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	shiftID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Shift id must be numeric.")
		return
	}

	shift, err := h.cancel.Execute(c.Request.Context(), uint(shiftID), requesterID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.OK(c, dto.FromShift(shift))
}

func (h *ShiftHandler) List(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	shifts, err := h.list.Execute(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.ShiftDTO, 0, len(shifts))
	for i := range shifts {
		out = append(out, dto.FromShift(&shifts[i]))
	}

	httpresp.List(c, out)
}
