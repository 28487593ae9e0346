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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDereference(t *testing.T) {
	assert.Equal(t, "", SafeDereference(nil))
	assert.Equal(t, "x", SafeDereference(Ptr("x")))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 42, OrDefault[int](nil, 42))
	assert.Equal(t, 7, OrDefault(Ptr(7), 42))
}

func TestWhitespaceSeparatedStringList(t *testing.T) {
	t.Run("appends a missing item", func(t *testing.T) {
		assert.Equal(t, "read manage", AddToWhitespaceSeparatedStringList("read", "manage"))
	})

	t.Run("does not duplicate an existing item", func(t *testing.T) {
		assert.Equal(t, "read manage", AddToWhitespaceSeparatedStringList("read manage", "manage"))
	})

	t.Run("contains check", func(t *testing.T) {
		assert.True(t, ContainsInWhitespaceSeparatedStringList("read manage", "manage"))
		assert.False(t, ContainsInWhitespaceSeparatedStringList("read", "manage"))
	})
}

func TestSliceHelpers(t *testing.T) {
	t.Run("Map", func(t *testing.T) {
		assert.Equal(t, []int{2, 4, 6}, Map([]int{1, 2, 3}, func(i int) int { return i * 2 }))
	})

	t.Run("Filter", func(t *testing.T) {
		assert.Equal(t, []int{2}, Filter([]int{1, 2, 3}, func(i int) bool { return i%2 == 0 }))
	})

	t.Run("ContainsAll", func(t *testing.T) {
		assert.True(t, ContainsAll([]string{"read", "manage"}, []string{"manage"}))
		assert.False(t, ContainsAll([]string{"read"}, []string{"manage"}))
	})
}
