package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"project_materials/internal/infrastructure/export"
	"project_materials/internal/usecase"
	"project_materials/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errNoBestQuote    = pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "No quote matches the given material and service", http.StatusNotFound)
)

func mapProjectManagerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REFERENCE", "Referenced entity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amounts must be finite numbers", http.StatusBadRequest)
	case errors.Is(err, export.ErrUnsupportedFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Unsupported export format", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapProjectManagerError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalid(c *gin.Context, err error) {
	body := errInvalidRequest.ToHTTPError()
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			body.Message += ": " + describeValidation(verrs)
		}
	}
	c.JSON(errInvalidRequest.HTTPStatus, body)
}

// describeValidation lists each failing field with the rule it broke,
// e.g. "Name failed required".
func describeValidation(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" failed "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}

// pathID reads an integer path parameter, answering 400 when it is not one.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondInvalid(c, err)
		return 0, false
	}
	return id, true
}

// bindQueryOrJSON reads the payload from the query string, or from a JSON
// body when the query string is empty and a body was sent.
func bindQueryOrJSON(c *gin.Context, obj any) error {
	if c.Request.URL.RawQuery == "" && c.Request.Body != nil && c.Request.ContentLength != 0 {
		return c.ShouldBindJSON(obj)
	}
	return c.ShouldBindQuery(obj)
}
