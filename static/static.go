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

// Package static implements the unkeyed trinary substitution cipher:
// every letter is written as the glyph run of its fixed code table triple.
// It is the only mode with a decoder.
package static

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/deltak/tritcipher/trit"
)

// Options configures a static Cipher.
//
//   - Glyphs — glyph set used for trits and the space separator.
//     The zero value selects trit.DefaultGlyphSet.
//   - Strict — reject plaintext containing reserved runes on Encrypt, and
//     fail with trit.ErrMalformedCiphertext on glyphs that do not form a
//     letter on Decrypt. When false, both are copied through unchanged.
type Options struct {
	Glyphs trit.GlyphSet
	Strict bool
}

// DefaultOptions returns the default glyph set in lenient mode.
func DefaultOptions() Options {
	return Options{Glyphs: trit.DefaultGlyphSet()}
}

// A Cipher is an instance of the unkeyed trinary cipher over a glyph set.
// It holds no mutable state and is safe for concurrent use.
type Cipher struct {
	glyphs trit.GlyphSet
	strict bool
}

// NewCipher initializes a new static Cipher.
func NewCipher(opts Options) *Cipher {
	return &Cipher{
		glyphs: opts.Glyphs.OrDefault(),
		strict: opts.Strict,
	}
}

// Glyphs returns the glyph set of the cipher.
func (c *Cipher) Glyphs() trit.GlyphSet {
	return c.glyphs
}

// Encrypt writes every letter of X as its glyph run and every space as the
// separator. Other bytes are copied unchanged.
func (c *Cipher) Encrypt(X string) (string, error) {
	if c.strict {
		if err := c.glyphs.CheckPlaintext(X); err != nil {
			return "", err
		}
	}
	return c.glyphs.Transcribe(X, trit.CodeOf), nil
}

// Decrypt reverses Encrypt. Letters come back upper case.
//
// The scan looks for a run of trit.Width glyphs at each byte offset. A run
// that names a letter of the code table is replaced by that letter.
// Anything else is copied one character at a time, invalid UTF-8 bytes
// included, with the separator turned back into a space. In strict mode a
// glyph that cannot be part of a letter is an error instead.
func (c *Cipher) Decrypt(X string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(X))

	for i := 0; i < len(X); {
		if t, n, ok := c.glyphs.ReadRun(X[i:]); ok {
			if idx, found := trit.IndexOf(t); found {
				sb.WriteRune(trit.Letter(idx))
				i += n
				continue
			}
			if c.strict {
				return "", fmt.Errorf("%w: run %s at byte %d is not a letter", trit.ErrMalformedCiphertext, X[i:i+n], i)
			}
		}

		r, size := utf8.DecodeRuneInString(X[i:])
		switch {
		case r == c.glyphs.Separator():
			sb.WriteRune(' ')
		case c.strict && c.glyphs.IsGlyph(r):
			return "", fmt.Errorf("%w: stray glyph %q at byte %d", trit.ErrMalformedCiphertext, r, i)
		default:
			sb.WriteString(X[i : i+size])
		}
		i += size
	}
	return sb.String(), nil
}
