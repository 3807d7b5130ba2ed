package util

import "testing"

func TestNormalizeCompanyNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"AlreadyNormalized", "01234567", "01234567"},
		{"PadsShortNumeric", "1234567", "01234567"},
		{"PadsVeryShort", "42", "00000042"},
		{"UpperCasesPrefix", "sc123456", "SC123456"},
		{"TrimsWhitespace", "  ni000123 ", "NI000123"},
		{"LeavesLongAlone", "123456789", "123456789"},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeCompanyNumber(tc.in)
			if got != tc.want {
				t.Fatalf("NormalizeCompanyNumber(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsCompanyNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"Numeric", "01234567", true},
		{"ScottishPrefix", "SC123456", true},
		{"NorthernIrelandPrefix", "NI000123", true},
		{"LlpPrefix", "OC345678", true},
		{"TooShort", "1234567", false},
		{"TooLong", "012345678", false},
		{"LowerPrefix", "sc123456", false},
		{"LettersInBody", "SC12A456", false},
		{"Empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := IsCompanyNumber(tc.in)
			if got != tc.want {
				t.Fatalf("IsCompanyNumber(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
