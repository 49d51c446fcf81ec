/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package keyword_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltak/tritcipher/keyword"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		key         string
		permutation bool
		additive    bool
	}{
		{"", false, false},
		{"aabb", false, true},
		{"a1b", false, false},
		{"KEY", true, true},
		{"Key", true, true},
		{"kEyK", false, true},
		{"zebras", true, true},
		{"hello world", false, false},
		{"0", false, false},
		{"café", false, false},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.permutation, keyword.Validate(tc.key, keyword.Permutation), "permutation")
			assert.Equal(t, tc.additive, keyword.Validate(tc.key, keyword.Additive), "additive")
		})
	}
}

func TestCheck_Reasons(t *testing.T) {
	err := keyword.Check("", keyword.Additive)
	require.ErrorIs(t, err, keyword.ErrInvalidKey)
	assert.Contains(t, err.Error(), "empty")

	err = keyword.Check("ab3", keyword.Additive)
	require.ErrorIs(t, err, keyword.ErrInvalidKey)
	assert.Contains(t, err.Error(), "position 2")

	err = keyword.Check("abA", keyword.Permutation)
	require.ErrorIs(t, err, keyword.ErrInvalidKey)
	assert.Contains(t, err.Error(), "letter A repeats")

	err = keyword.Check("abc", keyword.Mode(9))
	assert.ErrorIs(t, err, keyword.ErrInvalidKey)
}

func TestParseMode(t *testing.T) {
	m, err := keyword.ParseMode("Permutation")
	require.NoError(t, err)
	assert.Equal(t, keyword.Permutation, m)

	m, err = keyword.ParseMode(" additive ")
	require.NoError(t, err)
	assert.Equal(t, keyword.Additive, m)
	assert.Equal(t, "additive", m.String())

	_, err = keyword.ParseMode("static")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"KEY", "KEYABCDFGHIJLMNOPQRSTUVWXZ"},
		{"key", "KEYABCDFGHIJLMNOPQRSTUVWXZ"},
		{"zebra", "ZEBRACDFGHIJKLMNOPQSTUVWXY"},
		{"aabb", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"hello", "HELOABCDFGIJKMNPQRSTUVWXYZ"},
		{"ZYXWVUTSRQPONMLKJIHGFEDCBA", "ZYXWVUTSRQPONMLKJIHGFEDCBA"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.want, keyword.Build(tc.key).String())
		})
	}
}

// TestBuild_Permutation checks that every ordering is a permutation of A-Z
// that starts with the keyword letters in order.
func TestBuild_Permutation(t *testing.T) {
	keys := []string{"a", "KEY", "Cipher", "trinary", "quickbrownfx", "abcdefghijklmnopqrstuvwxyz", "Mississippi"}
	for _, key := range keys {
		ord := keyword.Build(key)
		s := ord.String()
		require.Len(t, s, 26, key)

		letters := make(map[rune]bool)
		for _, r := range s {
			require.True(t, r >= 'A' && r <= 'Z', "%q in ordering for %q", r, key)
			letters[r] = true
		}
		require.Len(t, letters, 26, key)

		if keyword.Validate(key, keyword.Permutation) {
			assert.True(t, strings.HasPrefix(s, strings.ToUpper(key)), "%s should start with %s", s, key)
		}
	}
}

func TestOrdering_Position(t *testing.T) {
	ord := keyword.Build("KEY")
	assert.Equal(t, 0, ord.Position(10)) // K
	assert.Equal(t, 3, ord.Position(0))  // A
	assert.Equal(t, 'Y', ord.Letter(2))
	assert.Equal(t, keyword.Build(""), keyword.PlainOrdering)
}
