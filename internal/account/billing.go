package account

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Card validation errors, worded for direct display.
var (
	ErrCardNumber  = errors.New("Card number must be 16 digits.")
	ErrCardExpiry  = errors.New("Invalid date format. Use MM/YY.")
	ErrCardExpired = errors.New("Card has expired. Please check the date.")
	ErrCardCVV     = errors.New("Invalid CVV code. Must be 3 digits.")
	ErrOTP         = errors.New("Please enter a valid OTP.")
)

// CardDetails holds raw payment form input. Number may contain the
// display grouping spaces; Expiry is MM/YY.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
}

// ValidateCard checks the card fields against now. Expiry is compared
// at month granularity: a card expiring this month is still valid.
func ValidateCard(c CardDetails, now time.Time) error {
	raw := strings.ReplaceAll(c.Number, " ", "")
	if len(raw) != 16 {
		return ErrCardNumber
	}

	mm, yy, ok := parseExpiry(c.Expiry)
	if !ok || mm < 1 || mm > 12 {
		return ErrCardExpiry
	}

	// Two-digit years pivot at 50: 49 is 2049, 50 is 1950.
	fullYear := 1900 + yy
	if yy < 50 {
		fullYear = 2000 + yy
	}
	expiry := time.Date(fullYear, time.Month(mm), 1, 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if expiry.Before(monthStart) {
		return ErrCardExpired
	}

	if len(c.CVV) < 3 {
		return ErrCardCVV
	}
	return nil
}

// ValidateOTP checks a one-time code entered during payment confirmation.
func ValidateOTP(otp string) error {
	if len(otp) < 4 {
		return ErrOTP
	}
	return nil
}

func parseExpiry(s string) (mm, yy int, ok bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	mm, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	yy, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return mm, yy, true
}

// FormatCardNumber normalizes card input to digit groups of four,
// capped at 16 digits.
func FormatCardNumber(input string) string {
	digits := keepDigits(input, 16)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry normalizes expiry input to MM/YY as the user types.
func FormatExpiry(input string) string {
	digits := keepDigits(input, 4)
	if len(digits) >= 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// FormatCVV normalizes CVV input to at most three digits.
func FormatCVV(input string) string {
	return keepDigits(input, 3)
}

func keepDigits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() == max {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
