package api

import (
	"net/http"

	"showroom-scheduler/internal/domain/availability"
	reqdto "showroom-scheduler/internal/handler/dto/request"
	resdto "showroom-scheduler/internal/handler/dto/response"
	"showroom-scheduler/internal/handler/httperr"
	"showroom-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q        queries.AvailabilityQueries
	calendar availability.Calendar
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, calendar availability.Calendar) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, calendar: calendar}
}

// @Summary Available dates
// @Description Upcoming business days open for booking. With type, days without a free slot of that type's default length are omitted.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param type query string false "Appointment type" Enums(viewing, test_drive, consultation)
// @Success 200 {object} resdto.AvailableDatesResponse
// @Failure 422 {object} httperr.Response
// @Router /api/appointments/available-dates [get]
func (h *AvailabilityHandler) AvailableDates(c *gin.Context) {
	var query reqdto.AvailableDatesQuery
	if !bindQuery(c, &query) {
		return
	}

	var apptType *string
	if query.Type != "" {
		apptType = &query.Type
	}

	dates, err := h.q.AvailableDates(c.Request.Context(), apptType)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDates(dates))
}

// @Summary Available slots
// @Description Free start times on a date for the given duration.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration query int true "Duration in minutes (30-180)"
// @Success 200 {object} resdto.AvailableSlotsResponse
// @Failure 422 {object} httperr.Response
// @Router /api/appointments/available-slots [get]
func (h *AvailabilityHandler) AvailableSlots(c *gin.Context) {
	var query reqdto.AvailableSlotsQuery
	if !bindQuery(c, &query) {
		return
	}

	date, err := availability.ParseDate(query.Date, h.calendar.Location)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed",
			[]httperr.FieldDetail{{Field: "date", Message: err.Error()}})
		return
	}

	slots, err := h.q.AvailableSlots(c.Request.Context(), date, query.Duration)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlots(date, query.Duration, slots))
}
