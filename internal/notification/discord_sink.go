package notification

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordSink posts admin-facing notifications to the ops channel.
// Notifications for customers and vendors are ignored.
type DiscordSink struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordSink(botToken, channelID string) (*DiscordSink, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &DiscordSink{
		session:   session,
		channelID: channelID,
	}, nil
}

func formatDiscordMessage(notification *Notification) string {
	return fmt.Sprintf("**%s**\n%s\n`%s` | ref: %s", notification.Title, notification.Message,
		notification.Type, notification.ReferenceID)
}

func (s *DiscordSink) Notify(ctx context.Context, notification *Notification) error {
	if notification.Audience != AudienceAdmin {
		return nil
	}

	_, err := s.session.ChannelMessageSend(s.channelID, formatDiscordMessage(notification), discordgo.WithContext(ctx))
	return err
}
