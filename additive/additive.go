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

// Package additive implements the keyed-additive trinary cipher, a
// polyalphabetic substitution: the code of the k-th plaintext letter is added
// trit by trit, modulo 3, to the code of key letter k mod len(key).
//
// The same letter encrypts differently depending on its position, so
// ciphertext cannot be read back through the code table. There is no
// decoder for this mode.
package additive

import (
	"github.com/deltak/tritcipher/keyword"
	"github.com/deltak/tritcipher/trit"
)

// A Cipher is an instance of the keyed-additive cipher for one key.
type Cipher struct {
	key    []trit.Triple
	glyphs trit.GlyphSet
	strict bool
}

// Options configures an additive Cipher. The zero Glyphs value selects
// trit.DefaultGlyphSet. Strict rejects plaintext containing reserved runes.
type Options struct {
	Glyphs trit.GlyphSet
	Strict bool
}

// NewCipher initializes a new additive Cipher. The key must be non-empty and
// hold letters only; repeats are allowed. Otherwise the error wraps
// keyword.ErrInvalidKey.
func NewCipher(key string, opts Options) (Cipher, error) {
	var newCipher Cipher

	if err := keyword.Check(key, keyword.Additive); err != nil {
		return newCipher, err
	}

	newCipher.key = make([]trit.Triple, 0, len(key))
	for _, r := range key {
		idx, _ := trit.LetterIndex(r)
		newCipher.key = append(newCipher.key, trit.CodeOf(idx))
	}
	newCipher.glyphs = opts.Glyphs.OrDefault()
	newCipher.strict = opts.Strict

	return newCipher, nil
}

// Encrypt substitutes every letter of X with the glyph run of its keyed sum
// and every space with the separator. Other bytes are copied unchanged and
// do not advance the key.
func (c Cipher) Encrypt(X string) (string, error) {
	if c.strict {
		if err := c.glyphs.CheckPlaintext(X); err != nil {
			return "", err
		}
	}

	k := 0
	return c.glyphs.Transcribe(X, func(idx int) trit.Triple {
		sum := trit.CodeOf(idx).Add(c.key[k%len(c.key)])
		k++
		return sum
	}), nil
}
