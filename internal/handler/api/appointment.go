package api

import (
	"net/http"

	reqdto "showroom-scheduler/internal/handler/dto/request"
	resdto "showroom-scheduler/internal/handler/dto/response"
	"showroom-scheduler/internal/handler/httperr"
	"showroom-scheduler/internal/usecase/commands"
	"showroom-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Create appointment
// @Description Book a slot. Fails with 409 slot_taken when the interval overlaps an active booking.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Create appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appt, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointment(appt))
}

// @Summary Get appointment
// @Description Customers may read their own appointments, staff any.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description List the caller's appointments, newest first. Staff may pass customer_id.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Customer ID (staff only)"
// @Param status query string false "Status filter"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var query reqdto.ListAppointmentsQuery
	if !bindQuery(c, &query) {
		return
	}

	customerID := actor.UserID
	if query.CustomerID != "" {
		// Validated by the uuid binding tag.
		customerID = uuid.MustParse(query.CustomerID)
	}

	filters := queries.AppointmentFilters{}
	if query.Status != "" {
		filters.Status = &query.Status
	}
	var cursor *queries.Cursor
	if query.Cursor != "" {
		cursor = &queries.Cursor{After: query.Cursor}
	}

	views, next, err := h.q.ListByCustomer(c.Request.Context(), customerID, actor, filters, cursor, query.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views, next))
}

// @Summary Cancel appointment
// @Description Cancel a requested or confirmed appointment that has not started.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.CancelAppointmentRequest false "Cancel request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CancelAppointmentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	appt, err := h.cmds.Cancel(c.Request.Context(), id, req.ToCommand(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

// @Summary Reschedule appointment
// @Description Move an appointment to a new start, keeping its duration. Status returns to requested.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RescheduleAppointmentRequest true "Reschedule request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/appointments/{id}/reschedule [post]
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RescheduleAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appt, err := h.cmds.Reschedule(c.Request.Context(), id, req.ToCommand(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

// @Summary Confirm appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.ConfirmAppointmentRequest false "Confirm request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/confirm [post]
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ConfirmAppointmentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	appt, err := h.cmds.Confirm(c.Request.Context(), id, req.ToCommand(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

// @Summary Complete appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.CompleteAppointmentRequest false "Complete request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CompleteAppointmentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	appt, err := h.cmds.Complete(c.Request.Context(), id, req.ToCommand(), actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

// @Summary Mark appointment as no-show
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/no-show [post]
func (h *AppointmentHandler) MarkNoShow(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	appt, err := h.cmds.MarkNoShow(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

