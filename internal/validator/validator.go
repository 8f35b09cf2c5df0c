package validator

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"
)

const DateLayout = "2006-01-02"

var (
	digitRegexp       = regexp.MustCompile(`[0-9]`)
	letterRegexp      = regexp.MustCompile(`[A-Za-z]`)
	indianPhoneRegexp = regexp.MustCompile(`^(\+91)?[6-9][0-9]{9}$`)
	timeSlotRegexp    = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]( ?- ?([01][0-9]|2[0-3]):[0-5][0-9])?$`)
)

func ValidateString(value string, minLength int, maxLength int) error {
	n := len(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}

	return nil
}

func ValidatePassword(value string) (err error) {
	err = errors.New("value must be between 8 and 64 characters long and contain at least one letter and one digit")

	if len(value) < 8 || len(value) > 64 {
		return
	}

	if !digitRegexp.MatchString(value) {
		return
	}

	if !letterRegexp.MatchString(value) {
		return
	}

	return nil
}

func ValidateEmail(value string) error {
	if err := ValidateString(value, 6, 200); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("is not a valid email address")
	}

	return nil
}

func ValidateFullName(value string) error {
	if err := ValidateString(strings.TrimSpace(value), 2, 100); err != nil {
		return err
	}

	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '.' {
			return fmt.Errorf("must contain only letters or spaces")
		}
	}

	return nil
}

// ValidatePhoneNumber accepts a 10-digit Indian mobile number with an optional +91 prefix.
func ValidatePhoneNumber(value string) error {
	normalized := strings.ReplaceAll(value, " ", "")
	if !indianPhoneRegexp.MatchString(normalized) {
		return fmt.Errorf("is not a valid mobile number")
	}

	return nil
}

// ValidateDate checks a YYYY-MM-DD date.
func ValidateDate(value string) error {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("must be a date in YYYY-MM-DD format")
	}

	return nil
}

// ValidateTimeSlot checks "HH:MM" or a "HH:MM-HH:MM" range.
func ValidateTimeSlot(value string) error {
	if !timeSlotRegexp.MatchString(strings.TrimSpace(value)) {
		return fmt.Errorf("must be a time like 10:00 or a range like 10:00-12:00")
	}

	return nil
}

// ValidateVisitDate checks the date format and that the day is not before today.
func ValidateVisitDate(value string, now time.Time) error {
	date, err := time.ParseInLocation(DateLayout, value, now.Location())
	if err != nil {
		return fmt.Errorf("must be a date in YYYY-MM-DD format")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return fmt.Errorf("cannot be in the past")
	}

	return nil
}
