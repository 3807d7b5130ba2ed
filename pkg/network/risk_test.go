package network

import (
	"testing"
	"time"

	"github.com/corposcope/backend/pkg/common"
)

func TestCompanyRiskLevel(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	office := &common.Address{AddressLine1: "1 High Street", Locality: "London"}

	tests := []struct {
		name string
		rec  common.CompanyRecord
		want RiskLevel
	}{
		{
			// 30+20+15+25 = 90
			name: "DissolvedShellScoresCritical",
			rec: common.CompanyRecord{
				CompanyStatus:  "dissolved",
				DateOfCreation: "2026-04-01",
			},
			want: RiskCritical,
		},
		{
			// 0
			name: "EstablishedActiveScoresLow",
			rec: common.CompanyRecord{
				CompanyStatus:           "active",
				DateOfCreation:          "2016-06-01",
				RegisteredOfficeAddress: office,
				SicCodes:                []string{"62020"},
			},
			want: RiskLow,
		},
		{
			// 30+25 = 55
			name: "YoungDissolvedScoresHigh",
			rec: common.CompanyRecord{
				CompanyStatus:           "dissolved",
				DateOfCreation:          "2026-01-15",
				RegisteredOfficeAddress: office,
				SicCodes:                []string{"62020"},
			},
			want: RiskHigh,
		},
		{
			// 20+15 = 35
			name: "NoOfficeNoSicScoresMedium",
			rec: common.CompanyRecord{
				CompanyStatus:  "active",
				DateOfCreation: "2010-01-01",
			},
			want: RiskMedium,
		},
		{
			// 25 only
			name: "FreshButCompleteScoresLow",
			rec: common.CompanyRecord{
				CompanyStatus:           "active",
				DateOfCreation:          "2026-05-20",
				RegisteredOfficeAddress: office,
				SicCodes:                []string{"62020"},
			},
			want: RiskLow,
		},
		{
			// Unparseable date scores no age points: 30 only.
			name: "BadDateIgnored",
			rec: common.CompanyRecord{
				CompanyStatus:           "liquidation",
				DateOfCreation:          "not-a-date",
				RegisteredOfficeAddress: office,
				SicCodes:                []string{"62020"},
			},
			want: RiskMedium,
		},
		{
			// Exactly 12 months back is not "less than 12 months old".
			name: "TwelveMonthBoundary",
			rec: common.CompanyRecord{
				CompanyStatus:           "active",
				DateOfCreation:          "2025-06-01",
				RegisteredOfficeAddress: office,
			},
			want: RiskLow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := companyRiskLevelAt(tc.rec, now)
			if got != tc.want {
				t.Fatalf("companyRiskLevelAt(%+v) = %q, want %q", tc.rec, got, tc.want)
			}
		})
	}
}
