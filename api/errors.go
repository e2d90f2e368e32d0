package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type fieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(wireName)
	}
}

// wireName reports validation failures under the JSON or query name the
// client actually sent.
func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// badRequest answers 400 with field-level details when err comes from the
// validator, and with the raw decode error otherwise.
func badRequest(c *gin.Context, message string, err error) {
	resp := errorResponse{Message: message}

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			resp.Errors = append(resp.Errors, fieldError{
				Field:   fieldPath(fe),
				Message: describe(fe),
			})
		}
	case err != nil:
		resp.Errors = []fieldError{{Message: err.Error()}}
	}
	c.JSON(http.StatusBadRequest, resp)
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, errorResponse{Message: message})
}

// respondError maps service errors onto status codes. Anything unexpected is
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error, invalidMessage, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		badRequest(c, invalidMessage, err)
	case errors.Is(err, domain.ErrNotFound):
		notFound(c, notFoundMessage)
	default:
		_ = c.Error(err)
		logging.FromContext(c.Request.Context()).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}

// fieldPath drops the top-level struct name, so passengerDetails[0].firstName
// rather than createBookingRequest.passengerDetails[0].firstName.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
