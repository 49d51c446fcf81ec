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

// Package tritutils provides the ordinal and radix helpers shared by
// the trinary cipher packages.
package tritutils

import (
	"fmt"
	"unicode/utf8"
)

// MaxRadix is the largest alphabet a Codec can hold: ordinals are stored as uint8.
const MaxRadix = 256

// Codec supports the conversion of a small alphabet of runes into ordinal
// values from 0 to length of alphabet-1.
// Element 'rtu' (rune-to-uint8) supports the mapping from runes to ordinal values.
// Element 'utr' (uint8-to-rune) supports the mapping from ordinal values to runes.
type Codec struct {
	rtu map[rune]uint8
	utr []rune
}

// NewCodec builds a Codec from the set of unique characters taken from the string s.
// The string contains arbitrary Utf-8 characters.
// It is an error to try to construct a codec from an alphabet with more than 256 characters.
func NewCodec(s string) (Codec, error) {
	var ret Codec
	ret.rtu = make(map[rune]uint8)
	ret.utr = make([]rune, 0, utf8.RuneCountInString(s))

	for _, rv := range s {
		// duplicates are tolerated, but ignored.
		if _, ok := ret.rtu[rv]; ok {
			continue
		}
		if len(ret.utr) == MaxRadix {
			return ret, fmt.Errorf("alphabet must contain no more than %d characters", MaxRadix)
		}
		ret.rtu[rv] = uint8(len(ret.utr))
		ret.utr = append(ret.utr, rv)
	}
	return ret, nil
}

// Radix returns the size of the alphabet supported by the Codec.
func (a Codec) Radix() int {
	return len(a.utr)
}

// Ordinal returns the position of r in the alphabet.
func (a Codec) Ordinal(r rune) (uint8, bool) {
	v, ok := a.rtu[r]
	return v, ok
}

// Rune returns the character at ordinal position v.
func (a Codec) Rune(v uint8) (rune, bool) {
	if int(v) >= len(a.utr) {
		return utf8.RuneError, false
	}
	return a.utr[v], true
}

// Contains reports whether r belongs to the alphabet.
func (a Codec) Contains(r rune) bool {
	_, ok := a.rtu[r]
	return ok
}

// Encode the supplied string as an array of ordinal values giving the
// position of each character in the alphabet.
// It is an error for the supplied string to contain characters that are not
// in the alphabet.
func (a Codec) Encode(s string) ([]uint8, error) {
	ret := make([]uint8, 0, utf8.RuneCountInString(s))

	i := 0
	for _, rv := range s {
		v, ok := a.rtu[rv]
		if !ok {
			return ret, fmt.Errorf("character at position %d is not in alphabet", i)
		}
		ret = append(ret, v)
		i++
	}
	return ret, nil
}

// Decode constructs a string from an array of ordinal values where each
// value specifies the position of the character in the alphabet.
// It is an error for the array to contain values outside the boundary of the
// alphabet.
func (a Codec) Decode(n []uint8) (string, error) {
	ret := make([]rune, 0, len(n))
	for i, v := range n {
		r, ok := a.Rune(v)
		if !ok {
			return string(ret), fmt.Errorf("numeral at position %d out of range: %d not in [0..%d]", i, v, len(a.utr)-1)
		}
		ret = append(ret, r)
	}
	return string(ret), nil
}
