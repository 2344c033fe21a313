package api

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/finestevents/backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation errors are keyed by the json field name the client sent, not the
// Go struct field.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// bindError maps a ShouldBindJSON failure to a 400 payload, with per-field
// messages when the validator rejected the body.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Fields: fields})
		return
	}
	c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "datetime":
		return "must be formatted " + fe.Param()
	default:
		return "is invalid"
	}
}

// serviceError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized from a create/validate path is treated as a bad request by the
// callers that pass fallback=400.
func serviceError(c *gin.Context, err error, fallback int) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrDateBlocked):
		c.JSON(http.StatusConflict, errorResponse{Error: "date is already booked"})
	case errors.Is(err, domain.ErrUpstream):
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "upstream provider failure"})
	default:
		c.JSON(fallback, errorResponse{Error: err.Error()})
	}
}
