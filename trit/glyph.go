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

package trit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/deltak/tritcipher/tritutils"
)

const (
	// DefaultGlyphs are the glyphs for trits 0, 1 and 2.
	DefaultGlyphs = "▲▼◆"
	// DefaultSeparator stands for a space in ciphertext.
	DefaultSeparator = '/'
)

var defaultGlyphSet = mustGlyphSet(DefaultGlyphs, DefaultSeparator)

// GlyphSet writes trits as printable runes. Glyph i stands for trit i.
// The separator rune stands for the space character.
type GlyphSet struct {
	codec tritutils.Codec
	sep   rune
}

// DefaultGlyphSet returns the ▲▼◆ glyph set with '/' as separator.
func DefaultGlyphSet() GlyphSet {
	return defaultGlyphSet
}

// NewGlyphSet builds a glyph set from exactly 3 distinct runes and a separator.
// Neither the glyphs nor the separator may be an ASCII letter or a space,
// and the separator must differ from every glyph.
func NewGlyphSet(glyphs string, sep rune) (GlyphSet, error) {
	var g GlyphSet

	if n := utf8.RuneCountInString(glyphs); n != Base {
		return g, fmt.Errorf("%w: need %d glyphs, got %d", ErrInvalidGlyphSet, Base, n)
	}
	codec, err := tritutils.NewCodec(glyphs)
	if err != nil {
		return g, fmt.Errorf("%w: %v", ErrInvalidGlyphSet, err)
	}
	if codec.Radix() != Base {
		return g, fmt.Errorf("%w: glyphs %q are not distinct", ErrInvalidGlyphSet, glyphs)
	}
	for _, r := range glyphs {
		if IsLetter(r) || r == ' ' || r == utf8.RuneError {
			return g, fmt.Errorf("%w: %q cannot be used as a glyph", ErrInvalidGlyphSet, r)
		}
	}
	if IsLetter(sep) || sep == ' ' || sep == utf8.RuneError || codec.Contains(sep) {
		return g, fmt.Errorf("%w: %q cannot be used as separator", ErrInvalidGlyphSet, sep)
	}

	g.codec = codec
	g.sep = sep
	return g, nil
}

func mustGlyphSet(glyphs string, sep rune) GlyphSet {
	g, err := NewGlyphSet(glyphs, sep)
	if err != nil {
		panic(err)
	}
	return g
}

// IsZero reports whether g is the zero GlyphSet.
func (g GlyphSet) IsZero() bool {
	return g.codec.Radix() == 0
}

// OrDefault returns g, or the default glyph set when g is the zero value.
func (g GlyphSet) OrDefault() GlyphSet {
	if g.IsZero() {
		return defaultGlyphSet
	}
	return g
}

// Glyph returns the rune written for trit t.
func (g GlyphSet) Glyph(t Trit) rune {
	r, ok := g.codec.Rune(uint8(t))
	if !ok {
		return utf8.RuneError
	}
	return r
}

// Trit returns the trit written as r.
func (g GlyphSet) Trit(r rune) (Trit, bool) {
	v, ok := g.codec.Ordinal(r)
	return Trit(v), ok
}

// IsGlyph reports whether r is one of the three glyphs.
func (g GlyphSet) IsGlyph(r rune) bool {
	return g.codec.Contains(r)
}

// Separator returns the rune that stands for a space.
func (g GlyphSet) Separator() rune {
	return g.sep
}

// Reserved reports whether r is a glyph or the separator.
func (g GlyphSet) Reserved(r rune) bool {
	return r == g.sep || g.IsGlyph(r)
}

// Run returns the glyph run of t.
func (g GlyphSet) Run(t Triple) string {
	var sb strings.Builder
	g.writeRun(&sb, t)
	return sb.String()
}

func (g GlyphSet) writeRun(sb *strings.Builder, t Triple) {
	for _, d := range t {
		sb.WriteRune(g.Glyph(d))
	}
}

// ReadRun reads a glyph run at the start of s and returns its triple and
// its length in bytes. It fails unless s starts with Width glyphs.
func (g GlyphSet) ReadRun(s string) (Triple, int, bool) {
	var t Triple
	n := 0
	for j := 0; j < Width; j++ {
		r, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 || !g.IsGlyph(r) {
			return t, 0, false
		}
		n += size
	}
	digits, err := g.codec.Encode(s[:n])
	if err != nil {
		return t, 0, false
	}
	for j, d := range digits {
		t[j] = Trit(d)
	}
	return t, n, true
}

// Transcribe writes X with every letter replaced by the glyph run of
// code(idx) and every space by the separator. code is called once per
// letter, in order. Every other byte sequence, invalid UTF-8 included, is
// copied unchanged.
func (g GlyphSet) Transcribe(X string, code func(idx int) Triple) string {
	var sb strings.Builder
	sb.Grow(len(X) * Width)
	for i := 0; i < len(X); {
		r, size := utf8.DecodeRuneInString(X[i:])
		switch idx, ok := LetterIndex(r); {
		case ok:
			g.writeRun(&sb, code(idx))
		case r == ' ':
			sb.WriteRune(g.sep)
		default:
			sb.WriteString(X[i : i+size])
		}
		i += size
	}
	return sb.String()
}

// CheckPlaintext rejects text containing a reserved rune, since the
// decoder could not tell it apart from cipher output.
func (g GlyphSet) CheckPlaintext(s string) error {
	i := 0
	for _, r := range s {
		if g.Reserved(r) {
			return fmt.Errorf("%w: %q at position %d", ErrReservedGlyph, r, i)
		}
		i++
	}
	return nil
}

func (g GlyphSet) String() string {
	s, _ := g.codec.Decode([]uint8{0, 1, 2})
	return s
}
