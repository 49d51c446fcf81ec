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

// Package keyword validates cipher keys and derives the keyword alphabet
// ordering used by the keyed-permutation cipher.
package keyword

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deltak/tritcipher/trit"
)

// Sentinel is the key value callers use to ask for the unkeyed cipher.
// It is never a valid key and must not be passed on to a keyed cipher.
const Sentinel = "0"

// ErrInvalidKey is returned when a key fails validation for its mode.
var ErrInvalidKey = errors.New("invalid key")

// Mode selects the validation regime of a key.
type Mode int

const (
	// Permutation keys seed an alphabet ordering: letters only, no repeats.
	Permutation Mode = iota + 1
	// Additive keys are cycled over the plaintext: letters only, repeats allowed.
	Additive
)

func (m Mode) String() string {
	switch m {
	case Permutation:
		return "permutation"
	case Additive:
		return "additive"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the name of a keyed mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "permutation", "permute":
		return Permutation, nil
	case "additive", "add":
		return Additive, nil
	}
	return 0, fmt.Errorf("unknown key mode %q", s)
}

// Check validates key for mode and reports why it is rejected.
// Every error wraps ErrInvalidKey.
func Check(key string, mode Mode) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if mode != Permutation && mode != Additive {
		return fmt.Errorf("%w: unsupported mode %v", ErrInvalidKey, mode)
	}

	var seen [trit.AlphabetLength]bool
	i := 0
	for _, r := range key {
		idx, ok := trit.LetterIndex(r)
		if !ok {
			return fmt.Errorf("%w: %q at position %d is not a letter", ErrInvalidKey, r, i)
		}
		if mode == Permutation && seen[idx] {
			return fmt.Errorf("%w: letter %c repeats at position %d", ErrInvalidKey, trit.Letter(idx), i)
		}
		seen[idx] = true
		i++
	}
	return nil
}

// Validate reports whether key is acceptable for mode.
func Validate(key string, mode Mode) bool {
	return Check(key, mode) == nil
}
