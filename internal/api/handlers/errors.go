package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/whauf/sportscard-tracker/internal/services"
)

// backendErrorStatus maps a backend failure onto the status the view returns:
// rejections pass their status through, everything else is a bad gateway
func backendErrorStatus(err error) int {
	var rejErr *services.RejectionError
	if errors.As(err, &rejErr) && rejErr.StatusCode >= 400 && rejErr.StatusCode < 500 {
		return rejErr.StatusCode
	}
	return http.StatusBadGateway
}

func isValidationError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}
