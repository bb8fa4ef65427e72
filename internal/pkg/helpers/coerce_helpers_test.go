package helpers

import (
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *float64
		wantErr bool
	}{
		{name: "empty is null", input: "", want: nil},
		{name: "whitespace is null", input: "   ", want: nil},
		{name: "plain number", input: "125.50", want: amount(125.50)},
		{name: "currency symbol stripped", input: "$1,250.50", want: amount(1250.50)},
		{name: "integer", input: "48", want: amount(48)},
		{name: "negative", input: "-12.25", want: amount(-12.25)},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "trailing text", input: "125.50 USD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, *got, *tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("empty is null", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil || got != nil {
			t.Fatalf("ParseDate(\"\") = %v, %v; want nil, nil", got, err)
		}
	})

	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-03-14")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Errorf("ParseDate(\"2025-03-14\") = %v, want %v", got, want)
		}
	})

	t.Run("wrong layout", func(t *testing.T) {
		if _, err := ParseDate("03/14/2025"); err == nil {
			t.Error("expected error for slash-separated date")
		}
	})
}

func TestNullableString(t *testing.T) {
	if got := NullableString(""); got != nil {
		t.Errorf("NullableString(\"\") = %v, want nil", got)
	}
	if got := NullableString("Fruitvale"); got == nil || *got != "Fruitvale" {
		t.Errorf("NullableString(\"Fruitvale\") = %v, want pointer to input", got)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2h", time.Hour); got != 2*time.Hour {
		t.Errorf("ParseDuration(\"2h\") = %v, want 2h", got)
	}
	if got := ParseDuration("not-a-duration", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration fallback = %v, want 1h", got)
	}
}

func amount(v float64) *float64 { return &v }
