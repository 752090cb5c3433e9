// Package relay submits contact messages to an external form relay
// endpoint. Messages are sent once; a rejected message is discarded and
// the user has to resubmit.
package relay

import (
	"errors"
	"fmt"

	"github.com/guonaihong/gout"
)

var ErrRejected = errors.New("relay rejected the message")

type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`

	// Optional product context when the contact was opened from a
	// product card.
	ProductID   string `json:"productId,omitempty"`
	ProductName string `json:"productName,omitempty"`
}

type Client struct {
	Endpoint string
}

func NewClient(endpoint string) *Client { return &Client{Endpoint: endpoint} }

// Submit POSTs the message as JSON. Any non-2xx answer counts as a
// rejection.
func (c *Client) Submit(m Message) error {
	code := 0
	err := gout.POST(c.Endpoint).
		SetHeader(gout.H{"Content-Type": "application/json"}).
		SetJSON(m).
		Code(&code).
		Do()
	if err != nil {
		return err
	}
	if code < 200 || code > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, code)
	}
	return nil
}
