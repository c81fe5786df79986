package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/p0rkchop/ward-sub000/internal/cache"
	"github.com/p0rkchop/ward-sub000/internal/httperr"
	"github.com/p0rkchop/ward-sub000/internal/httpresp"
	ucSchedule "github.com/p0rkchop/ward-sub000/internal/usecase/schedule"
)

type AvailabilityHandler struct {
	compute *ucSchedule.ComputeAvailability
	cache   *cache.Availability
}

func NewAvailabilityHandler(
	compute *ucSchedule.ComputeAvailability,
	availabilityCache *cache.Availability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		compute: compute,
		cache:   availabilityCache,
	}
}

// Get computes per-slot capacity for ?start=&end= (RFC3339).
func (h *AvailabilityHandler) Get(c *gin.Context) {
	start, end, err := parseWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		httperr.BadRequest(c, "invalid_window", "start and end must be RFC3339 timestamps.")
		return
	}

	if av, ok := h.cache.Get(c.Request.Context(), start, end); ok {
		httpresp.OK(c, av)
		return
	}

	av, err := h.compute.Execute(c.Request.Context(), start, end)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cache.Set(c.Request.Context(), start, end, av)
	httpresp.OK(c, av)
}
