package network

import (
	"time"

	"github.com/corposcope/backend/pkg/common"
)

// Risk scoring points and thresholds. The score is a coarse proxy for
// structural red flags, not a validated risk model; callers must not
// present it as authoritative.
const (
	riskPointsInactiveStatus = 30
	riskPointsNoOffice       = 20
	riskPointsNoSicCodes     = 15
	riskPointsYoungCompany   = 25

	riskScoreCritical = 70
	riskScoreHigh     = 50
	riskScoreMedium   = 30

	youngCompanyAgeMonths = 12
)

// CompanyRiskLevel scores a company record against the risk
// heuristics and maps the score to a risk band.
func CompanyRiskLevel(rec common.CompanyRecord) RiskLevel {
	return companyRiskLevelAt(rec, time.Now())
}

func companyRiskLevelAt(rec common.CompanyRecord, now time.Time) RiskLevel {
	score := 0
	if rec.CompanyStatus != "active" {
		score += riskPointsInactiveStatus
	}
	if rec.RegisteredOfficeAddress == nil {
		score += riskPointsNoOffice
	}
	if len(rec.SicCodes) == 0 {
		score += riskPointsNoSicCodes
	}
	if incorporatedWithin(rec.DateOfCreation, now, youngCompanyAgeMonths) {
		score += riskPointsYoungCompany
	}

	switch {
	case score >= riskScoreCritical:
		return RiskCritical
	case score >= riskScoreHigh:
		return RiskHigh
	case score >= riskScoreMedium:
		return RiskMedium
	default:
		return RiskLow
	}
}

// incorporatedWithin reports whether the ISO incorporation date falls
// inside the last `months` months. Missing or unparseable dates score
// no points.
func incorporatedWithin(isoDate string, now time.Time, months int) bool {
	if isoDate == "" {
		return false
	}
	created, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return false
	}
	return created.After(now.AddDate(0, -months, 0))
}
