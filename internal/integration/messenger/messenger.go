package messenger

import (
	"context"

	"github.com/vendrahq/vendra/internal/domain/campaign"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
)

// LogSender delivers campaign messages to the application log. It stands in
// for a real messaging provider in local and test deployments; the campaign
// dispatcher only depends on the campaign.Sender interface.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(logger *logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg *campaign.Message) error {
	if msg.Phone == "" {
		return ierr.NewError("message has no destination phone").
			WithHint("The recipient has no phone number on file").
			Mark(ierr.ErrValidation)
	}

	s.logger.Infow("dispatching campaign message",
		"message_id", msg.ID,
		"campaign_id", msg.CampaignID,
		"phone", msg.Phone)
	return nil
}
