package services

import (
	"errors"
	"testing"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full day", raw: "1.00", want: "1.00"},
		{name: "minimum", raw: "0.01", want: "0.01"},
		{name: "half day", raw: "0.5", want: "0.50"},
		{name: "padded input", raw: " 0.75 ", want: "0.75"},
		{name: "zero rejected", raw: "0", wantErr: true},
		{name: "below minimum rejected", raw: "0.009", wantErr: true},
		{name: "above full day rejected", raw: "1.01", wantErr: true},
		{name: "negative rejected", raw: "-0.25", wantErr: true},
		{name: "not a number", raw: "half", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDuration(testCase.raw)
			if testCase.wantErr {
				if !errors.Is(err, ErrInvalidDuration) {
					t.Fatalf("expected ErrInvalidDuration for %q, got %v", testCase.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDuration(%q) returned error: %v", testCase.raw, err)
			}
			if got.StringFixed(2) != testCase.want {
				t.Fatalf("ParseDuration(%q) = %s, want %s", testCase.raw, got.StringFixed(2), testCase.want)
			}
		})
	}
}
