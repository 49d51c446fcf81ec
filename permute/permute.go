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

// Package permute implements the keyed-permutation trinary cipher: the glyph
// runs of the code table are reassigned to letters following the keyword
// alphabet ordering, giving a monoalphabetic substitution.
//
// There is no decoder for this mode.
package permute

import (
	"errors"
	"fmt"

	"github.com/deltak/tritcipher/keyword"
	"github.com/deltak/tritcipher/trit"
)

// ErrInvalidOrdering is returned when an ordering is not a permutation of A-Z.
var ErrInvalidOrdering = errors.New("ordering is not a permutation of A-Z")

// A Cipher is an instance of the keyed-permutation cipher for one key.
type Cipher struct {
	ordering keyword.Ordering
	table    [trit.AlphabetLength]trit.Triple
	glyphs   trit.GlyphSet
	strict   bool
}

// Options configures a permutation Cipher. The zero Glyphs value selects
// trit.DefaultGlyphSet. Strict rejects plaintext containing reserved runes.
type Options struct {
	Glyphs trit.GlyphSet
	Strict bool
}

// NewCipher initializes a new permutation Cipher. The key must hold
// letters only, none repeated; otherwise the error wraps keyword.ErrInvalidKey.
func NewCipher(key string, opts Options) (Cipher, error) {
	var newCipher Cipher

	if err := keyword.Check(key, keyword.Permutation); err != nil {
		return newCipher, err
	}

	ordering := keyword.Build(key)
	table, err := KeyedTable(ordering)
	if err != nil {
		return newCipher, err
	}
	newCipher.ordering = ordering
	newCipher.table = table
	newCipher.glyphs = opts.Glyphs.OrDefault()
	newCipher.strict = opts.Strict

	return newCipher, nil
}

// KeyedTable assigns the code of the i-th plain letter to the i-th letter of
// the ordering. The result is indexed by plain letter. It fails with
// ErrInvalidOrdering unless ord is a permutation of A-Z.
func KeyedTable(ord keyword.Ordering) ([trit.AlphabetLength]trit.Triple, error) {
	var (
		table [trit.AlphabetLength]trit.Triple
		used  [trit.AlphabetLength]bool
	)
	for i := range ord {
		idx, ok := trit.LetterIndex(ord.Letter(i))
		if !ok || used[idx] {
			return table, fmt.Errorf("%w: %q", ErrInvalidOrdering, ord.String())
		}
		used[idx] = true
		table[idx] = trit.CodeOf(i)
	}
	return table, nil
}

// Ordering returns the keyword alphabet ordering of the cipher.
func (c Cipher) Ordering() keyword.Ordering {
	return c.ordering
}

// CodeOf returns the keyed triple of the letter with alphabet index idx.
func (c Cipher) CodeOf(idx int) trit.Triple {
	return c.table[idx]
}

// Encrypt substitutes every letter of X with its keyed glyph run and every
// space with the separator. Other bytes are copied unchanged.
func (c Cipher) Encrypt(X string) (string, error) {
	if c.strict {
		if err := c.glyphs.CheckPlaintext(X); err != nil {
			return "", err
		}
	}
	return c.glyphs.Transcribe(X, c.CodeOf), nil
}
