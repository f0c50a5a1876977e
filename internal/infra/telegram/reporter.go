package telegram

import (
	"fmt"

	"gym_attendance_notifier/internal/domain/pipeline"

	"gopkg.in/telebot.v3"
)

// Reporter sends a summary of each scheduled batch run to an admin chat.
// It is the only Telegram surface; there is no inbound command handling.
type Reporter struct {
	bot    *telebot.Bot
	chatID int64
}

func NewReporter(token string, chatID int64) (*Reporter, error) {
	bot, err := telebot.NewBot(telebot.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	return &Reporter{bot: bot, chatID: chatID}, nil
}

// ReportBatch posts the run summary. Failures are returned to the caller and
// logged there; a missed report never affects the batch itself.
func (r *Reporter) ReportBatch(batch *pipeline.BatchResult) error {
	text := fmt.Sprintf(
		"Attendance batch finished: %d members processed, %d notifications sent, %d failed.",
		batch.Total, batch.Sent, batch.Failed,
	)
	_, err := r.bot.Send(&telebot.User{ID: r.chatID}, text, &telebot.SendOptions{})
	return err
}
