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

// LetterIndex returns the 0-based alphabet position of an ASCII letter,
// folding lower case to upper case.
func LetterIndex(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	}
	return -1, false
}

// Letter returns the upper case letter at index i.
func Letter(i int) rune {
	return rune('A' + i)
}

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	_, ok := LetterIndex(r)
	return ok
}
