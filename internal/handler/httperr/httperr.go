package httperr

import (
	"errors"
	"net/http"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldDetail names the input that failed validation.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, "", msg, detail)
}

func abort(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

const (
	CodeValidation        = "validation_failed"
	CodeSlotTaken         = "slot_taken"
	CodeInvalidTransition = "invalid_transition"
	CodeNotFound          = "not_found"
	CodeForbidden         = "forbidden"
)

// AbortWithDomainError maps a use case error to its HTTP outcome.
func AbortWithDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		abort(c, http.StatusUnprocessableEntity, err, CodeValidation, "Validation failed", validationDetail(err))
	case errs.Is(err, errs.ErrSlotTaken):
		abort(c, http.StatusConflict, err, CodeSlotTaken, "The requested slot is no longer available", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		abort(c, http.StatusConflict, err, CodeInvalidTransition, transitionMessage(err), nil)
	case errs.Is(err, errs.ErrAppointmentNotFound):
		abort(c, http.StatusNotFound, err, CodeNotFound, "Appointment not found", nil)
	case errs.Is(err, errs.ErrCustomerNotFound):
		abort(c, http.StatusNotFound, err, CodeNotFound, "Customer not found", nil)
	case errs.Is(err, errs.ErrCarNotFound):
		abort(c, http.StatusNotFound, err, CodeNotFound, "Car not found", nil)
	case errs.Is(err, errs.ErrAgentNotFound):
		abort(c, http.StatusNotFound, err, CodeNotFound, "Agent not found", nil)
	case errs.Is(err, errs.ErrReferenceNotFound):
		abort(c, http.StatusNotFound, err, CodeNotFound, "Referenced record not found", nil)
	case errs.Is(err, errs.ErrAccessDenied):
		abort(c, http.StatusForbidden, err, CodeForbidden, "Access denied", nil)
	default:
		abort(c, http.StatusInternalServerError, err, "", "Internal server error", nil)
	}
}

func validationDetail(err error) any {
	var ve *appointment.ValidationError
	if errors.As(err, &ve) {
		return []FieldDetail{{Field: ve.Field, Message: ve.Err.Error()}}
	}
	return nil
}

func transitionMessage(err error) string {
	var te *appointment.InvalidTransitionError
	if errors.As(err, &te) {
		return te.Error()
	}
	return "Transition not allowed"
}
