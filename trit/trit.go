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

// Package trit holds the fixed alphabet code table of the trinary cipher:
// the bijection between the 26 letters A-Z and 26 distinct triples of trits,
// and the glyph set used to write trits as text.
package trit

import (
	"errors"
	"fmt"

	"github.com/deltak/tritcipher/tritutils"
)

const (
	// Base is the radix of a trit.
	Base = 3
	// Width is the number of trits encoding one letter.
	Width = 3
	// AlphabetLength is the number of letters in the code table.
	AlphabetLength = 26
)

var (
	// ErrMalformedCiphertext is returned by strict decoding when a glyph run
	// does not match any letter of the code table.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrReservedGlyph is returned when plaintext contains a glyph or the separator.
	ErrReservedGlyph = errors.New("plaintext contains a reserved glyph")

	// ErrInvalidGlyphSet is returned when a glyph set cannot be built.
	ErrInvalidGlyphSet = errors.New("invalid glyph set")
)

// Trit is a base-3 digit: 0, 1 or 2.
type Trit uint8

// Triple is the ordered 3-trit code of one letter, most significant trit first.
type Triple [Width]Trit

// codeTable maps letter index i to the base-3 expansion of i+1, so that
// A={0,0,1} ... Z={2,2,2} and {0,0,0} is never used.
var codeTable = buildCodeTable()

func buildCodeTable() [AlphabetLength]Triple {
	var table [AlphabetLength]Triple
	digits := make([]uint8, Width)
	for i := range table {
		if _, err := tritutils.Str(i+1, digits, Base); err != nil {
			panic(fmt.Sprintf("trit: code table: %v", err))
		}
		for j, d := range digits {
			table[i][j] = Trit(d)
		}
	}
	return table
}

// CodeOf returns the triple of the letter at index i (A=0 ... Z=25).
// It panics if i is out of range.
func CodeOf(i int) Triple {
	return codeTable[i]
}

// IndexOf returns the letter index whose code is t.
// The second result is false when no letter uses t.
func IndexOf(t Triple) (int, bool) {
	if !t.Valid() {
		return -1, false
	}
	for i, c := range codeTable {
		if c == t {
			return i, true
		}
	}
	return -1, false
}

// Add combines two triples trit by trit modulo 3.
func (t Triple) Add(k Triple) Triple {
	sum, err := tritutils.AddMod(t.digits(), k.digits(), Base)
	if err != nil {
		// a trit outside 0..2 is a programming error
		panic(fmt.Sprintf("trit: add %v + %v: %v", t, k, err))
	}
	var ret Triple
	for j, d := range sum {
		ret[j] = Trit(d)
	}
	return ret
}

// Value returns the base-3 value of t.
func (t Triple) Value() int {
	v, err := tritutils.Num(t.digits(), Base)
	if err != nil {
		return -1
	}
	return v
}

// Valid reports whether every trit of t is in range.
func (t Triple) Valid() bool {
	for _, d := range t {
		if d >= Base {
			return false
		}
	}
	return true
}

func (t Triple) String() string {
	return fmt.Sprintf("{%d,%d,%d}", t[0], t[1], t[2])
}

func (t Triple) digits() []uint8 {
	d := make([]uint8, Width)
	for j, v := range t {
		d[j] = uint8(v)
	}
	return d
}
