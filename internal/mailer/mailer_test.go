package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armazena/listing-service/internal/listing/domain"
)

func TestNewSMTPMailer(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 587, "noreply@example.com", "secret")
	require.NotNil(t, m)
	assert.Equal(t, "smtp.example.com", m.host)
	assert.Equal(t, 587, m.port)
}

// The interface the usecase layer depends on, satisfied here by a recorder
// so delivery can be asserted without a live SMTP server.
type recordingMailer struct {
	to []string
}

func (m *recordingMailer) SendContactRequest(ownerEmail string, _ *domain.Listing, _ *domain.ContactRequest) error {
	m.to = append(m.to, ownerEmail)
	return nil
}

func TestContactMailIsAddressedToOwner(t *testing.T) {
	rec := &recordingMailer{}
	listing := &domain.Listing{Title: "Galpão A", CreatedBy: "owner@example.com"}
	request := &domain.ContactRequest{SenderName: "Maria", SenderEmail: "maria@example.com", Message: "Olá"}

	err := rec.SendContactRequest(listing.CreatedBy, listing, request)
	require.NoError(t, err)
	assert.Equal(t, []string{"owner@example.com"}, rec.to)
}
