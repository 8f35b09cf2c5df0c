package util

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

const (
	alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// GenerateRandomSlug builds a URL slug from name with a short random suffix.
func GenerateRandomSlug(name string) string {
	baseSlug := slug.Make(name)
	shortID := shortuuid.New()[:8] // Lấy 8 ký tự đầu

	return fmt.Sprintf("%s-%s", baseSlug, shortID)
}

// GenerateSubscriptionID generates a unique subscription ID in the format "AMC-XXXXXXXXXX".
func GenerateSubscriptionID() string {
	return fmt.Sprintf("AMC-%s", shortuuid.NewWithAlphabet(alphabet)[:10])
}

// GenerateBookingCode generates a unique booking code in the format "BK-XXXXXXXXXX".
func GenerateBookingCode() string {
	return fmt.Sprintf("BK-%s", shortuuid.NewWithAlphabet(alphabet)[:10])
}
