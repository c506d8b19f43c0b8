package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/handler/httperr"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register adds the appointment tags to gin's validator. It is safe to call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	v.RegisterTagNameFunc(jsonTagName)

	validators := map[string]validator.Func{
		"appt_type":     validateType,
		"appt_location": validateLocation,
		"appt_status":   validateStatus,
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validator: %w", tag, err)
		}
	}
	return nil
}

func jsonTagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func validateType(fl validator.FieldLevel) bool {
	return appointment.Type(fl.Field().String()).IsValid()
}

func validateLocation(fl validator.FieldLevel) bool {
	return appointment.Location(fl.Field().String()).IsValid()
}

func validateStatus(fl validator.FieldLevel) bool {
	return appointment.Status(fl.Field().String()).IsValid()
}

// Details turns binding errors into per-field messages. Other errors yield nil.
func Details(err error) []httperr.FieldDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]httperr.FieldDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, httperr.FieldDetail{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return details
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "appt_type":
		return "must be one of viewing, test_drive, consultation"
	case "appt_location":
		return "must be one of showroom, customer_address, other"
	case "appt_status":
		return "must be one of requested, confirmed, completed, cancelled, no_show"
	case "datetime":
		return "must match layout " + fe.Param()
	default:
		return "is invalid"
	}
}
