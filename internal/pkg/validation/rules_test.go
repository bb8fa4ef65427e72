package validation

import "testing"

func TestCompiledPatterns(t *testing.T) {
	tests := []struct {
		name  string
		match func(string) bool
		input string
		want  bool
	}{
		{"claim number standard", CompiledPatterns.ClaimNumber.MatchString, "CLM-2025-00017", true},
		{"claim number lowercase rejected", CompiledPatterns.ClaimNumber.MatchString, "clm-2025-00017", false},
		{"claim number too short", CompiledPatterns.ClaimNumber.MatchString, "CL", false},
		{"claim number leading dash rejected", CompiledPatterns.ClaimNumber.MatchString, "-CLM-2025", false},
		{"ssid ten digits", CompiledPatterns.SSID.MatchString, "1234567890", true},
		{"ssid nine digits rejected", CompiledPatterns.SSID.MatchString, "123456789", false},
		{"ssid letters rejected", CompiledPatterns.SSID.MatchString, "12345678AB", false},
		{"npi ten digits", CompiledPatterns.NPI.MatchString, "1528067891", true},
		{"email valid", CompiledPatterns.Email.MatchString, "billing@fruitvale.k12.us", true},
		{"email missing domain", CompiledPatterns.Email.MatchString, "billing@", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.match(tt.input); got != tt.want {
				t.Errorf("match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringValidation(t *testing.T) {
	t.Run("required empty fails", func(t *testing.T) {
		if NewStringValidation("").Validate() {
			t.Error("empty required value should fail")
		}
	})

	t.Run("optional empty passes pattern", func(t *testing.T) {
		v := NewStringValidation("").WithRequired(false).WithPattern(CompiledPatterns.SSID)
		if !v.Validate() {
			t.Error("empty optional value should skip pattern check")
		}
	})

	t.Run("length bounds", func(t *testing.T) {
		v := NewStringValidation("Maya").WithMinLength(2).WithMaxLength(100)
		if !v.Validate() {
			t.Error("value within bounds should pass")
		}
		if NewStringValidation("M").WithMinLength(2).Validate() {
			t.Error("value below min length should fail")
		}
	})

	t.Run("pattern mismatch fails", func(t *testing.T) {
		v := NewStringValidation("12345").WithPattern(CompiledPatterns.SSID)
		if v.Validate() {
			t.Error("short ssid should fail pattern")
		}
	})
}
