package cli

import (
	"errors"

	"github.com/akazakov/jobtrack/internal/client/client"
	"github.com/akazakov/jobtrack/internal/client/models"
	"github.com/akazakov/jobtrack/internal/common"
)

// userMessage maps a service error to the single line shown to the user.
func userMessage(err error) string {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ve.Msg
	}

	switch {
	case errors.Is(err, common.ErrAuthRequired):
		return "Please log in first."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, common.ErrAccountExists):
		return "An account with this email already exists. Please log in."
	case errors.Is(err, common.ErrOwnershipDenied):
		return "This record belongs to another user."
	case errors.Is(err, common.ErrNotFound):
		return "Record not found."
	}

	var te *client.TransportError
	if errors.As(err, &te) {
		return "Unable to reach the server. Please try again."
	}
	return err.Error()
}
