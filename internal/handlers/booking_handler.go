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

type BookingHandler struct {
	autoBook *ucSchedule.AutoBook
	cancel   *ucSchedule.CancelBooking
	list     *ucSchedule.ListBookings
	cache    *cache.Availability
}

func NewBookingHandler(
	autoBook *ucSchedule.AutoBook,
	cancel *ucSchedule.CancelBooking,
	list *ucSchedule.ListBookings,
	availabilityCache *cache.Availability,
) *BookingHandler {
	return &BookingHandler{
		autoBook: autoBook,
		cancel:   cancel,
		list:     list,
		cache:    availabilityCache,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "start and end are required.")
		return
	}

	start, end, err := parseWindow(req.Start, req.End)
	if err != nil {
		httperr.BadRequest(c, "invalid_window", "start and end must be RFC3339 timestamps.")
		return
	}

	booking, err := h.autoBook.Execute(c.Request.Context(), clientID, start, end)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.Created(c, dto.FromBooking(booking))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	booking, err := h.cancel.Execute(c.Request.Context(), uint(bookingID), requesterID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.OK(c, dto.FromBooking(booking))
}

func (h *BookingHandler) List(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.list.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.FromBooking(&bookings[i]))
	}

	httpresp.List(c, out)
}
