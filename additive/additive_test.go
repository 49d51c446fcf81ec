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

package additive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltak/tritcipher/keyword"
	"github.com/deltak/tritcipher/trit"
)

type testVector struct {
	key        string
	plaintext  string
	ciphertext string
}

var testVectors = []testVector{
	{"KEY", "", ""},
	{"BC", "AAAA", "▲▲▲▲▼▼▲▲▲▲▼▼"},
	{"key", "HI THERE", "▼◆▼▼▼◆/▼◆▲▼◆▼▲◆▼▼◆▼▼▼▼"},
	{"KEY", "HELLO WORLD", "▼◆▼▲◆▼▲▲▼◆▼◆▼▲◆/▼▲▲◆◆◆◆▼◆▲▲▼▼▼▲"},
	{"AB", "a1 b", "▲▲◆1/▲▲▼"},
}

func TestEncrypt(t *testing.T) {
	for idx, testVector := range testVectors {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			c, err := NewCipher(testVector.key, Options{})
			require.NoError(t, err)

			ciphertext, err := c.Encrypt(testVector.plaintext)
			require.NoError(t, err)
			assert.Equal(t, testVector.ciphertext, ciphertext)
		})
	}
}

// TestEncrypt_KeyCycling encrypts a run of identical letters so that any
// difference between runs comes from the key alone.
func TestEncrypt_KeyCycling(t *testing.T) {
	c, err := NewCipher("BC", Options{})
	require.NoError(t, err)

	out, err := c.Encrypt("AAAA")
	require.NoError(t, err)

	runs := []rune(out)
	require.Len(t, runs, 4*trit.Width)
	run := func(i int) string { return string(runs[i*trit.Width : (i+1)*trit.Width]) }

	assert.Equal(t, run(0), run(2))
	assert.Equal(t, run(1), run(3))
	assert.NotEqual(t, run(0), run(1))
}

func TestEncrypt_NonLettersKeepKeyPosition(t *testing.T) {
	c, err := NewCipher("BC", Options{})
	require.NoError(t, err)

	plain, err := c.Encrypt("AA")
	require.NoError(t, err)
	spaced, err := c.Encrypt("A, 1 A")
	require.NoError(t, err)

	runs := []rune(plain)
	want := string(runs[:3]) + ",/1/" + string(runs[3:])
	assert.Equal(t, want, spaced)
}

func TestEncrypt_InvalidUTF8(t *testing.T) {
	c, err := NewCipher("BC", Options{})
	require.NoError(t, err)

	out, err := c.Encrypt("A\xffA")
	require.NoError(t, err)
	assert.Equal(t, "▲▲▲\xff▲▼▼", out, "invalid bytes are copied and do not advance the key")
}

func TestNewCipher_InvalidKey(t *testing.T) {
	for _, key := range []string{"", "a1b", "two words", "0"} {
		_, err := NewCipher(key, Options{})
		assert.ErrorIs(t, err, keyword.ErrInvalidKey, "key %q", key)
	}

	_, err := NewCipher("aabb", Options{})
	assert.NoError(t, err)
}

func TestEncrypt_Strict(t *testing.T) {
	c, err := NewCipher("KEY", Options{Strict: true})
	require.NoError(t, err)

	_, err = c.Encrypt("◆")
	assert.ErrorIs(t, err, trit.ErrReservedGlyph)
}
