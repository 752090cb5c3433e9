package services

import (
	"fmt"

	"morefix/internal/domain"
	"morefix/internal/relay"
)

type ContactService struct {
	Relay *relay.Client
}

func NewContactService(c *relay.Client) *ContactService { return &ContactService{Relay: c} }

// Prefill builds the default message for a contact opened from a
// product card.
func (s *ContactService) Prefill(p domain.Product) string {
	return fmt.Sprintf("Bonjour, je suis intéressé(e) par le produit \"%s\" à %.2f €. Pouvez-vous me donner plus d'informations ?", p.Title, p.Price)
}

// Send submits the message once. On failure the message is discarded;
// the caller asks the user to resubmit.
func (s *ContactService) Send(m relay.Message) error {
	return s.Relay.Submit(m)
}
