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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseScore(t *testing.T) {
	t.Run("scores a full-impact network vector as 9.8", func(t *testing.T) {
		score, err := BaseScore("AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
		assert.NoError(t, err)
		assert.InDelta(t, 9.8, score, 0.001)
	})

	t.Run("scores an all-none impact vector as 0.0", func(t *testing.T) {
		score, err := BaseScore("AV:N/AC:L/PR:N/UI:N/S:U/C:N/I:N/A:N")
		assert.NoError(t, err)
		assert.InDelta(t, 0.0, score, 0.001)
	})

	t.Run("accepts a prefixed vector", func(t *testing.T) {
		score, err := BaseScore("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
		assert.NoError(t, err)
		assert.InDelta(t, 9.8, score, 0.001)
	})

	t.Run("returns zero for an empty vector", func(t *testing.T) {
		score, err := BaseScore("")
		assert.NoError(t, err)
		assert.Zero(t, score)
	})

	t.Run("rejects a malformed vector", func(t *testing.T) {
		_, err := BaseScore("AV:X/nonsense")
		assert.Error(t, err)
	})
}
