package domain

import (
	"errors"
	"testing"
)

func TestParseExpiry(t *testing.T) {
	cases := []struct {
		in      string
		want    Expiry
		wantErr bool
	}{
		{in: "12/25", want: Expiry{Month: 12, Year: 25}},
		{in: "1/21", want: Expiry{Month: 1, Year: 21}},
		{in: "01/99", want: Expiry{Month: 1, Year: 99}},
		{in: "0/25", wantErr: true},
		{in: "13/25", wantErr: true},
		{in: "12/20", wantErr: true},
		{in: "12/2025", want: Expiry{Month: 12, Year: 2025}},
		{in: "12", wantErr: true},
		{in: "12/25/01", wantErr: true},
		{in: "ab/25", wantErr: true},
		{in: "12/cd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseExpiry(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseExpiry(%q): expected error, got %+v", tc.in, got)
				continue
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("ParseExpiry(%q): expected ValidationError, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseExpiry(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseExpiry(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestExpiryString(t *testing.T) {
	e := Expiry{Month: 3, Year: 27}
	if e.String() != "3/27" {
		t.Fatalf("String() = %q", e.String())
	}
	if _, err := ParseExpiry(e.String()); err != nil {
		t.Fatalf("round trip: %v", err)
	}
}
