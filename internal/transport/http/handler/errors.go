package handler

import (
	"errors"

	"github.com/ErlanBelekov/rideboard/internal/domain"
)

const (
	errInternalServer = "Internal server error"
	errInvalidToken   = "Invalid token"
	errEntryNotFound  = "Entry not found"
	errInvalidEntryID = "Invalid entry id"
	errInvalidBody    = "Invalid request body"

	errAdvertising   = "Entry rejected: advertising/selling content"
	errInvalidType   = "typ must be 'Angebot' or 'Anfrage'"
	errNoSeats       = "Typ 'Angebot' requires sitzplaetze > 0"
	errEmptyTitle    = "titel must not be empty"
	errEmptyMessage  = "nachricht must not be empty"
	errEntryRejected = "Entry rejected"
)

// rejectionMessage names the validation rule that fired, using the field
// names clients send.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAdvertisingContent):
		return errAdvertising
	case errors.Is(err, domain.ErrInvalidEntryType):
		return errInvalidType
	case errors.Is(err, domain.ErrNoSeatsOffered):
		return errNoSeats
	case errors.Is(err, domain.ErrEmptyTitle):
		return errEmptyTitle
	case errors.Is(err, domain.ErrEmptyMessage):
		return errEmptyMessage
	default:
		return errEntryRejected
	}
}
