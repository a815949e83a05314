package domain

import (
	"errors"
	"fmt"
	"strings"
)

type EntryType string

const (
	EntryTypeOffer   EntryType = "Angebot"
	EntryTypeRequest EntryType = "Anfrage"
)

var ErrEntryNotFound = errors.New("entry not found")

// ErrEntryRejected is the parent of every validation failure.
var ErrEntryRejected = errors.New("entry rejected")

var (
	ErrAdvertisingContent = fmt.Errorf("%w: advertising/selling content", ErrEntryRejected)
	ErrInvalidEntryType   = fmt.Errorf("%w: type must be %q or %q", ErrEntryRejected, EntryTypeOffer, EntryTypeRequest)
	ErrNoSeatsOffered     = fmt.Errorf("%w: type %q requires seats > 0", ErrEntryRejected, EntryTypeOffer)
	ErrEmptyTitle         = fmt.Errorf("%w: title must not be empty", ErrEntryRejected)
	ErrEmptyMessage       = fmt.Errorf("%w: message must not be empty", ErrEntryRejected)
)

// bannedWords are matched against the lower-cased message.
var bannedWords = []string{"werbung", "verkauf"}

type Entry struct {
	ID      int64
	Title   string
	Message string
	Type    EntryType
	Seats   int
}

// EntryDraft is a submitted entry before it has been accepted and stored.
type EntryDraft struct {
	Title   string
	Message string
	Type    EntryType
	Seats   int
}

type EntryContact struct {
	Email string
}

// ValidateEntryDraft runs the admission rules in a fixed order and returns
// the first violation. The order decides which error a caller sees when
// several rules fail, so it must not be rearranged.
func ValidateEntryDraft(d EntryDraft) error {
	msg := strings.ToLower(d.Message)
	for _, w := range bannedWords {
		if strings.Contains(msg, w) {
			return ErrAdvertisingContent
		}
	}

	switch d.Type {
	case EntryTypeOffer:
		if d.Seats <= 0 {
			return ErrNoSeatsOffered
		}
	case EntryTypeRequest:
	default:
		return ErrInvalidEntryType
	}

	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(d.Message) == "" {
		return ErrEmptyMessage
	}

	return nil
}
