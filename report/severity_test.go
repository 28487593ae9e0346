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
	"sort"
	"testing"

	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	t.Run("orders critical before high before medium before low before informational before none", func(t *testing.T) {
		labels := []dtos.Severity{
			dtos.SeverityNone,
			dtos.SeverityLow,
			dtos.SeverityCritical,
			dtos.SeverityInfo,
			dtos.SeverityHigh,
			dtos.SeverityMedium,
		}

		sort.SliceStable(labels, func(i, j int) bool {
			return Rank(labels[i]) < Rank(labels[j])
		})

		assert.Equal(t, []dtos.Severity{
			dtos.SeverityCritical,
			dtos.SeverityHigh,
			dtos.SeverityMedium,
			dtos.SeverityLow,
			dtos.SeverityInfo,
			dtos.SeverityNone,
		}, labels)
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		assert.Equal(t, Rank(dtos.SeverityCritical), Rank(dtos.Severity("CRITICAL")))
		assert.Equal(t, Rank(dtos.SeverityHigh), Rank(dtos.Severity("High")))
	})

	t.Run("sorts unknown labels last", func(t *testing.T) {
		assert.Greater(t, Rank(dtos.Severity("bogus")), Rank(dtos.SeverityNone))
	})

	t.Run("keeps ties stable", func(t *testing.T) {
		type labeled struct {
			name     string
			severity dtos.Severity
		}
		findings := []labeled{
			{"a", dtos.SeverityHigh},
			{"b", dtos.SeverityHigh},
			{"c", dtos.SeverityCritical},
			{"d", dtos.SeverityHigh},
		}

		sort.SliceStable(findings, func(i, j int) bool {
			return Rank(findings[i].severity) < Rank(findings[j].severity)
		})

		assert.Equal(t, "c", findings[0].name)
		assert.Equal(t, "a", findings[1].name)
		assert.Equal(t, "b", findings[2].name)
		assert.Equal(t, "d", findings[3].name)
	})
}

func TestCSSClass(t *testing.T) {
	assert.Equal(t, "Critical", CSSClass(dtos.SeverityCritical))
	assert.Equal(t, "High", CSSClass(dtos.SeverityHigh))
	assert.Equal(t, "Medium", CSSClass(dtos.SeverityMedium))
	assert.Equal(t, "Low", CSSClass(dtos.SeverityLow))
	assert.Equal(t, "Informational", CSSClass(dtos.SeverityInfo))
	assert.Equal(t, "None", CSSClass(dtos.SeverityNone))
	assert.Equal(t, "", CSSClass(dtos.Severity("bogus")))
}

func TestFromScore(t *testing.T) {
	t.Run("maps the standard thresholds", func(t *testing.T) {
		assert.Equal(t, dtos.SeverityCritical, FromScore(10.0))
		assert.Equal(t, dtos.SeverityCritical, FromScore(9.0))
		assert.Equal(t, dtos.SeverityHigh, FromScore(8.9))
		assert.Equal(t, dtos.SeverityHigh, FromScore(7.0))
		assert.Equal(t, dtos.SeverityMedium, FromScore(6.9))
		assert.Equal(t, dtos.SeverityMedium, FromScore(4.0))
		assert.Equal(t, dtos.SeverityLow, FromScore(3.9))
		assert.Equal(t, dtos.SeverityLow, FromScore(0.1))
		assert.Equal(t, dtos.SeverityInfo, FromScore(0.0))
	})
}

func TestFlags(t *testing.T) {
	t.Run("is one-hot per label", func(t *testing.T) {
		assert.Equal(t, SeverityFlags{IsCritical: true}, Flags(dtos.SeverityCritical))
		assert.Equal(t, SeverityFlags{IsLow: true}, Flags(dtos.Severity("LOW")))
		assert.Equal(t, SeverityFlags{}, Flags(dtos.Severity("bogus")))
	})
}
