package account

import "testing"

func TestPasswordStrong(t *testing.T) {
	tests := []struct {
		name string
		pw   string
		want bool
	}{
		{"meets all rules", "Str0ng!pass", true},
		{"too short", "Ab1!xyz", false},
		{"no uppercase", "str0ng!pass", false},
		{"no lowercase", "STR0NG!PASS", false},
		{"no digit", "Strong!pass", false},
		{"no special", "Str0ngpass", false},
		{"contains space", "Str0ng! pass", false},
		{"empty", "", false},
		{"underscore counts as special", "Str0ng_pass", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PasswordStrong(tt.pw); got != tt.want {
				t.Errorf("PasswordStrong(%q) = %v, want %v", tt.pw, got, tt.want)
			}
		})
	}
}

func TestCheckPasswordLabels(t *testing.T) {
	reqs := CheckPassword("")
	want := []string{"8+ characters", "Uppercase", "Lowercase", "Number", "Special char", "No spaces"}
	if len(reqs) != len(want) {
		t.Fatalf("got %d requirements, want %d", len(reqs), len(want))
	}
	for i, r := range reqs {
		if r.Label != want[i] {
			t.Errorf("requirement %d = %q, want %q", i, r.Label, want[i])
		}
		if r.Met {
			t.Errorf("empty password should not meet %q", r.Label)
		}
	}
}
