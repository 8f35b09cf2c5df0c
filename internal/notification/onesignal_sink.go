package notification

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"resty.dev/v3"
)

const oneSignalNotificationsURL = "https://api.onesignal.com/notifications"

// OneSignalSink gửi push qua OneSignal REST API, người nhận được định danh bằng external_id.
type OneSignalSink struct {
	client *resty.Client
	appID  string
	apiKey string
}

func NewOneSignalSink(client *resty.Client, appID, apiKey string) *OneSignalSink {
	return &OneSignalSink{
		client: client,
		appID:  appID,
		apiKey: apiKey,
	}
}

type oneSignalRequest struct {
	AppID            string              `json:"app_id"`
	TargetChannel    string              `json:"target_channel"`
	IncludeAliases   map[string][]string `json:"include_aliases,omitempty"`
	IncludedSegments []string            `json:"included_segments,omitempty"`
	Headings         map[string]string   `json:"headings"`
	Contents         map[string]string   `json:"contents"`
	Data             map[string]string   `json:"data,omitempty"`
}

type oneSignalResponse struct {
	ID     string      `json:"id"`
	Errors interface{} `json:"errors"`
}

func (s *OneSignalSink) buildRequest(notification *Notification) oneSignalRequest {
	req := oneSignalRequest{
		AppID:         s.appID,
		TargetChannel: "push",
		Headings:      map[string]string{"en": notification.Title},
		Contents:      map[string]string{"en": notification.Message},
		Data: map[string]string{
			"type":        notification.Type,
			"referenceID": notification.ReferenceID,
		},
	}

	if notification.Audience == AudienceAdmin {
		req.IncludedSegments = []string{"Admins"}
	} else {
		req.IncludeAliases = map[string][]string{
			"external_id": {notification.RecipientID},
		}
	}

	return req
}

func (s *OneSignalSink) Notify(ctx context.Context, notification *Notification) error {
	if notification.Audience != AudienceAdmin && notification.RecipientID == "" {
		return nil
	}

	var result oneSignalResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Key "+s.apiKey).
		SetBody(s.buildRequest(notification)).
		SetResult(&result).
		Post(oneSignalNotificationsURL)
	if err != nil {
		return fmt.Errorf("failed to call onesignal: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("onesignal returned status %d: %s", resp.StatusCode(), resp.String())
	}

	log.Debug().Str("onesignal_id", result.ID).Str("type", notification.Type).Msg("push sent")
	return nil
}
