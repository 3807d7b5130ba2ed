package network

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultOwnershipPercent is assumed when no percentage can be
// recovered from the natures-of-control text. Ownership percentages
// are a best-effort heuristic parse, not authoritative data.
const DefaultOwnershipPercent = 25

var explicitPercentRe = regexp.MustCompile(`(\d{1,3})%`)

// ownershipPercent extracts an ownership percentage from
// natures-of-control strings. An explicit "{n}%" token wins; failing
// that, known banded phrases map to their lower bound; failing that,
// the default applies. Never errors.
func ownershipPercent(natures []string) int {
	for _, n := range natures {
		if m := explicitPercentRe.FindStringSubmatch(n); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil && v > 0 && v <= 100 {
				return v
			}
		}
	}

	for _, n := range natures {
		l := strings.ToLower(n)
		switch {
		case strings.Contains(l, "75-to-100") || strings.Contains(l, "more than 75"):
			return 75
		case strings.Contains(l, "50-to-75") || strings.Contains(l, "more than 50"):
			return 50
		case strings.Contains(l, "25-to-50") || strings.Contains(l, "more than 25"):
			return 25
		}
	}

	return DefaultOwnershipPercent
}
