package handler

import (
	"errors"

	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/trungle-dev/content-planner/internal/api/response"
	"github.com/trungle-dev/content-planner/internal/domain"
)

var validate = validator.New()

// serviceError maps the service error taxonomy onto HTTP statuses
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, domain.ErrPreconditionMissing), errors.Is(err, domain.ErrInvalidInput):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrUpstream):
		response.BadGateway(w, err.Error())
	default:
		response.InternalError(w, err.Error())
	}
}
