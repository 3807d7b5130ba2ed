package network

import "testing"

func TestOwnershipPercent(t *testing.T) {
	tests := []struct {
		name    string
		natures []string
		want    int
	}{
		{"ExplicitToken", []string{"ownership-of-shares-75-to-100-percent (75%)"}, 75},
		{"ExplicitWinsOverBand", []string{"ownership-of-shares-25-to-50-percent (33%)"}, 33},
		{"BandedPhrase", []string{"more than 50% of shares"}, 50},
		{"ChCode75Band", []string{"ownership-of-shares-75-to-100-percent"}, 75},
		{"ChCode50Band", []string{"ownership-of-shares-50-to-75-percent"}, 50},
		{"ChCode25Band", []string{"ownership-of-shares-25-to-50-percent"}, 25},
		{"MoreThan75Phrase", []string{"holds more than 75 percent of voting rights"}, 75},
		{"NonNumeric", []string{"some non-numeric description"}, DefaultOwnershipPercent},
		{"Empty", nil, DefaultOwnershipPercent},
		{"SecondEntryMatches", []string{"right-to-appoint-directors", "voting-rights-25-to-50-percent"}, 25},
		{"ZeroPercentIgnored", []string{"holds 0% somehow"}, DefaultOwnershipPercent},
		{"OverHundredIgnored", []string{"claims 250% control"}, DefaultOwnershipPercent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ownershipPercent(tc.natures)
			if got != tc.want {
				t.Fatalf("ownershipPercent(%v) = %d, want %d", tc.natures, got, tc.want)
			}
		})
	}
}
