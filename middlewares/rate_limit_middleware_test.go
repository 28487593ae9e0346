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

package middlewares

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestKeyedRateLimiter(t *testing.T) {
	t.Run("denies a key once the burst is exhausted", func(t *testing.T) {
		limiter := NewKeyedRateLimiter(rate.Every(time.Hour), 2)

		assert.True(t, limiter.Check("10.0.0.1"))
		assert.True(t, limiter.Check("10.0.0.1"))
		assert.False(t, limiter.Check("10.0.0.1"))
	})

	t.Run("tracks keys independently", func(t *testing.T) {
		limiter := NewKeyedRateLimiter(rate.Every(time.Hour), 1)

		assert.True(t, limiter.Check("10.0.0.1"))
		assert.False(t, limiter.Check("10.0.0.1"))
		assert.True(t, limiter.Check("10.0.0.2"))
	})

	t.Run("reset clears the window for a key", func(t *testing.T) {
		limiter := NewKeyedRateLimiter(rate.Every(time.Hour), 1)

		assert.True(t, limiter.Check("10.0.0.1"))
		assert.False(t, limiter.Check("10.0.0.1"))

		limiter.Reset("10.0.0.1")
		assert.True(t, limiter.Check("10.0.0.1"))
	})

	t.Run("reset of an unknown key is a no-op", func(t *testing.T) {
		limiter := NewKeyedRateLimiter(rate.Every(time.Hour), 1)
		limiter.Reset("never-seen")
		assert.True(t, limiter.Check("never-seen"))
	})
}
