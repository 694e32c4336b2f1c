package account

import "strings"

// PasswordRequirement is one rule of the password policy with its
// display label and whether the candidate satisfies it.
type PasswordRequirement struct {
	Label string
	Met   bool
}

const passwordSpecials = "!@#$%^&*_-+=?"

// CheckPassword evaluates a candidate against every policy rule,
// in display order.
func CheckPassword(pw string) []PasswordRequirement {
	var hasUpper, hasLower, hasDigit, hasSpecial, hasSpace bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		case r == ' ' || r == '\t' || r == '\n':
			hasSpace = true
		}
	}
	return []PasswordRequirement{
		{Label: "8+ characters", Met: len(pw) >= 8},
		{Label: "Uppercase", Met: hasUpper},
		{Label: "Lowercase", Met: hasLower},
		{Label: "Number", Met: hasDigit},
		{Label: "Special char", Met: hasSpecial},
		{Label: "No spaces", Met: len(pw) > 0 && !hasSpace},
	}
}

// PasswordStrong reports whether the candidate meets the full policy.
func PasswordStrong(pw string) bool {
	for _, req := range CheckPassword(pw) {
		if !req.Met {
			return false
		}
	}
	return true
}
