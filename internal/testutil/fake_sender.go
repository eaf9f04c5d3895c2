package testutil

import (
	"context"
	"sync"

	"github.com/vendrahq/vendra/internal/domain/campaign"
	ierr "github.com/vendrahq/vendra/internal/errors"
)

var _ campaign.Sender = (*FakeSender)(nil)

// FakeSender records dispatched messages. Phones listed in FailPhones
// always fail; FailFirst makes the first N attempts of every message fail,
// exercising the retry path.
type FakeSender struct {
	mu sync.Mutex

	FailPhones map[string]bool
	FailFirst  int

	attempts map[string]int
	Sent     []*campaign.Message
}

// NewFakeSender creates a fake message sender
func NewFakeSender() *FakeSender {
	return &FakeSender{
		FailPhones: make(map[string]bool),
		attempts:   make(map[string]int),
	}
}

func (s *FakeSender) Send(ctx context.Context, msg *campaign.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts[msg.ID]++
	if s.FailPhones[msg.Phone] {
		return ierr.NewError("delivery failed").
			WithHint("The messaging provider rejected the message").
			Mark(ierr.ErrIntegration)
	}
	if s.attempts[msg.ID] <= s.FailFirst {
		return ierr.NewError("transient delivery failure").
			WithHint("The messaging provider is unavailable").
			Mark(ierr.ErrIntegration)
	}

	s.Sent = append(s.Sent, msg)
	return nil
}

// SentCount returns how many messages were delivered
func (s *FakeSender) SentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Sent)
}

// Attempts returns how many times delivery of the given message was tried
func (s *FakeSender) Attempts(messageID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts[messageID]
}

// Clear resets recorded state
func (s *FakeSender) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailPhones = make(map[string]bool)
	s.FailFirst = 0
	s.attempts = make(map[string]int)
	s.Sent = nil
}
