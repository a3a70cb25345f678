package domain

import (
	"strings"
	"time"
)

// BuildContactRequest validates and packages a buyer inquiry for one listing.
// All four fields are required after trimming. Email format is deliberately
// not checked here; that belongs to the transport boundary.
func BuildContactRequest(listingID, senderName, senderEmail, message string) (*ContactRequest, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return nil, missingField("listing_id")
	}
	senderName = strings.TrimSpace(senderName)
	if senderName == "" {
		return nil, missingField("name")
	}
	senderEmail = strings.TrimSpace(senderEmail)
	if senderEmail == "" {
		return nil, missingField("email")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, missingField("message")
	}

	return &ContactRequest{
		ListingID:   listingID,
		SenderName:  senderName,
		SenderEmail: senderEmail,
		Message:     message,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
