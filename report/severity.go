// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package report

import (
	"strings"

	"github.com/l3montree-dev/pentestpro/dtos"
)

// severityOrder is the render order of a report: most severe first.
var severityOrder = map[dtos.Severity]int{
	dtos.SeverityCritical: 0,
	dtos.SeverityHigh:     1,
	dtos.SeverityMedium:   2,
	dtos.SeverityLow:      3,
	dtos.SeverityInfo:     4,
	dtos.SeverityNone:     5,
}

// Rank returns the sort key of a severity label, case-insensitive.
// Unrecognized labels sort last. No error is ever raised.
func Rank(label dtos.Severity) int {
	if rank, ok := severityOrder[dtos.Severity(strings.ToLower(string(label)))]; ok {
		return rank
	}
	return len(severityOrder)
}

// SeverityFlags are one-hot booleans used for conditional template sections.
// An unrecognized label yields all-false flags.
type SeverityFlags struct {
	IsCritical bool
	IsHigh     bool
	IsMedium   bool
	IsLow      bool
	IsInfo     bool
	IsNone     bool
}

func Flags(label dtos.Severity) SeverityFlags {
	switch dtos.Severity(strings.ToLower(string(label))) {
	case dtos.SeverityCritical:
		return SeverityFlags{IsCritical: true}
	case dtos.SeverityHigh:
		return SeverityFlags{IsHigh: true}
	case dtos.SeverityMedium:
		return SeverityFlags{IsMedium: true}
	case dtos.SeverityLow:
		return SeverityFlags{IsLow: true}
	case dtos.SeverityInfo:
		return SeverityFlags{IsInfo: true}
	case dtos.SeverityNone:
		return SeverityFlags{IsNone: true}
	default:
		return SeverityFlags{}
	}
}

// CSSClass returns the color class marker a finding renders with.
// Unrecognized labels render with no color class.
func CSSClass(label dtos.Severity) string {
	switch dtos.Severity(strings.ToLower(string(label))) {
	case dtos.SeverityCritical:
		return "Critical"
	case dtos.SeverityHigh:
		return "High"
	case dtos.SeverityMedium:
		return "Medium"
	case dtos.SeverityLow:
		return "Low"
	case dtos.SeverityInfo:
		return "Informational"
	case dtos.SeverityNone:
		return "None"
	default:
		return ""
	}
}

// FromScore maps a CVSS base score to the suggested severity tier using the
// standard v3.1 thresholds. The stored severity of a finding may still be
// overridden independently.
func FromScore(score float64) dtos.Severity {
	switch {
	case score >= 9.0:
		return dtos.SeverityCritical
	case score >= 7.0:
		return dtos.SeverityHigh
	case score >= 4.0:
		return dtos.SeverityMedium
	case score >= 0.1:
		return dtos.SeverityLow
	default:
		return dtos.SeverityInfo
	}
}
