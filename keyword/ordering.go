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

package keyword

import (
	"github.com/deltak/tritcipher/trit"
)

// Ordering is a permutation of the letters A-Z, stored upper case.
type Ordering [trit.AlphabetLength]byte

// PlainOrdering is the alphabet in its natural order.
var PlainOrdering = Build("")

// Build derives the keyword alphabet ordering of key: the letters of key,
// upper cased, in order of first occurrence, followed by every remaining
// letter in alphabetical order. Repeated letters and non-letters in key are
// skipped, so the result is always a permutation of A-Z.
func Build(key string) Ordering {
	var (
		ord  Ordering
		used [trit.AlphabetLength]bool
		n    int
	)
	for _, r := range key {
		idx, ok := trit.LetterIndex(r)
		if !ok || used[idx] {
			continue
		}
		used[idx] = true
		ord[n] = byte(trit.Letter(idx))
		n++
	}
	for idx := 0; idx < trit.AlphabetLength; idx++ {
		if used[idx] {
			continue
		}
		ord[n] = byte(trit.Letter(idx))
		n++
	}
	return ord
}

// Letter returns the letter at position i of the ordering.
func (o Ordering) Letter(i int) rune {
	return rune(o[i])
}

// Position returns where the letter with alphabet index idx sits in the ordering.
func (o Ordering) Position(idx int) int {
	want := byte(trit.Letter(idx))
	for i, b := range o {
		if b == want {
			return i
		}
	}
	return -1
}

func (o Ordering) String() string {
	return string(o[:])
}
