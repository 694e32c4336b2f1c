package account

import (
	"errors"
	"testing"
	"time"
)

func TestValidateCard(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		card CardDetails
		want error
	}{
		{"valid", CardDetails{"4111 1111 1111 1111", "12/27", "123"}, nil},
		{"valid without spaces", CardDetails{"4111111111111111", "01/30", "999"}, nil},
		{"fifteen digits", CardDetails{"4111 1111 1111 111", "12/27", "123"}, ErrCardNumber},
		{"seventeen digits", CardDetails{"41111111111111112", "12/27", "123"}, ErrCardNumber},
		{"bad expiry format", CardDetails{"4111111111111111", "1227", "123"}, ErrCardExpiry},
		{"month thirteen", CardDetails{"4111111111111111", "13/27", "123"}, ErrCardExpiry},
		{"month zero", CardDetails{"4111111111111111", "00/27", "123"}, ErrCardExpiry},
		{"expired last month", CardDetails{"4111111111111111", "07/26", "123"}, ErrCardExpired},
		{"expires this month", CardDetails{"4111111111111111", "08/26", "123"}, nil},
		{"short cvv", CardDetails{"4111111111111111", "12/27", "12"}, ErrCardCVV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateCard(tt.card, now); !errors.Is(err, tt.want) {
				t.Errorf("ValidateCard = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCenturyPivot(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	// 49 reads as 2049 and is valid; 50 reads as 1950 and is long expired.
	if err := ValidateCard(CardDetails{"4111111111111111", "12/49", "123"}, now); err != nil {
		t.Errorf("12/49 should be valid: %v", err)
	}
	if err := ValidateCard(CardDetails{"4111111111111111", "12/50", "123"}, now); !errors.Is(err, ErrCardExpired) {
		t.Errorf("12/50 should be expired, got %v", err)
	}
}

func TestValidateOTP(t *testing.T) {
	if err := ValidateOTP("482"); !errors.Is(err, ErrOTP) {
		t.Errorf("three digits should fail, got %v", err)
	}
	if err := ValidateOTP("4826"); err != nil {
		t.Errorf("four digits should pass: %v", err)
	}
}

func TestFormatCardNumber(t *testing.T) {
	tests := []struct{ in, want string }{
		{"4111111111111111", "4111 1111 1111 1111"},
		{"4111-1111", "4111 1111"},
		{"41111111111111119999", "4111 1111 1111 1111"},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := FormatCardNumber(tt.in); got != tt.want {
			t.Errorf("FormatCardNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1", "1"},
		{"12", "12/"},
		{"1227", "12/27"},
		{"12/27", "12/27"},
		{"122734", "12/27"},
	}
	for _, tt := range tests {
		if got := FormatExpiry(tt.in); got != tt.want {
			t.Errorf("FormatExpiry(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
