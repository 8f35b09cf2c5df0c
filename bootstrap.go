package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/katatrina/fixfly-BE/internal/util"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"resty.dev/v3"
)

const (
	channelFirestore = "firestore"
	channelFCM       = "fcm"
	channelOneSignal = "onesignal"
	channelEmail     = "email"
	channelDiscord   = "discord"
)

// bootstrapAdmin tạo tài khoản admin từ ADMIN_EMAIL/ADMIN_PASSWORD nếu chưa tồn tại.
func bootstrapAdmin(ctx context.Context, store db.Store, config util.Config) error {
	if config.AdminEmail == "" || config.AdminPassword == "" {
		return nil
	}

	_, err := store.GetUserByEmail(ctx, config.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	hashedPassword, err := util.HashPassword(config.AdminPassword)
	if err != nil {
		return err
	}

	_, err = store.CreateUser(ctx, db.CreateUserParams{
		FullName:       "Administrator",
		Email:          config.AdminEmail,
		HashedPassword: &hashedPassword,
		Role:           db.UserRoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Info().Str("email", config.AdminEmail).Msg("admin account created ✅")
	return nil
}

// buildNotificationSink dựng sink giao thông báo theo NOTIFICATION_CHANNELS.
// Push channels fall back to email when SMTP credentials are configured,
// and Discord always receives admin notifications on its own.
func buildNotificationSink(ctx context.Context, config util.Config) (notification.Sink, error) {
	var (
		pushSinks notification.MultiSink
		adminSink notification.Sink
		app       *firebase.App
	)

	firebaseApp := func() (*firebase.App, error) {
		if app != nil {
			return app, nil
		}

		var err error
		app, err = firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.FirebaseCredentialsFile))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
		}
		return app, nil
	}

	var emailSink *notification.EmailSink
	if config.SMTPUsername != "" {
		sink, err := notification.NewEmailSink(config.SMTPHost, config.SMTPPort, config.SMTPUsername,
			config.SMTPPassword, config.MailFromAddress)
		if err != nil {
			return nil, err
		}
		emailSink = sink
	}

	for _, channel := range config.NotificationChannels {
		switch strings.ToLower(strings.TrimSpace(channel)) {
		case channelFirestore:
			a, err := firebaseApp()
			if err != nil {
				return nil, err
			}
			client, err := a.Firestore(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to create firestore client: %w", err)
			}
			pushSinks = append(pushSinks, notification.NewFirestoreSink(client))

		case channelFCM:
			a, err := firebaseApp()
			if err != nil {
				return nil, err
			}
			client, err := a.Messaging(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to create messaging client: %w", err)
			}
			pushSinks = append(pushSinks, notification.NewFCMSink(client))

		case channelOneSignal:
			pushSinks = append(pushSinks, notification.NewOneSignalSink(resty.New(), config.OneSignalAppID, config.OneSignalAPIKey))

		case channelEmail:
			if emailSink == nil {
				return nil, fmt.Errorf("email channel requires SMTP_USERNAME")
			}
			pushSinks = append(pushSinks, emailSink)
			// Email đã là kênh chính, không cần fallback nữa
			emailSink = nil

		case channelDiscord:
			sink, err := notification.NewDiscordSink(config.DiscordBotToken, config.DiscordChannelID)
			if err != nil {
				return nil, err
			}
			adminSink = sink

		default:
			return nil, fmt.Errorf("unknown notification channel %q", channel)
		}

		log.Info().Str("channel", channel).Msg("notification channel enabled ✅")
	}

	var sink notification.Sink = pushSinks
	switch {
	case emailSink != nil && len(pushSinks) == 0:
		sink = emailSink
	case emailSink != nil:
		sink = notification.FallbackSink{
			Primary:  sink,
			Fallback: emailSink,
		}
	}

	if adminSink != nil {
		sink = notification.MultiSink{sink, adminSink}
	}

	return sink, nil
}
