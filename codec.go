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

package tritcipher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deltak/tritcipher/additive"
	"github.com/deltak/tritcipher/keyword"
	"github.com/deltak/tritcipher/permute"
	"github.com/deltak/tritcipher/static"
	"github.com/deltak/tritcipher/trit"
)

var (
	// ErrInvalidKey is returned when a key fails validation for its mode.
	ErrInvalidKey = keyword.ErrInvalidKey

	// ErrNotDecodable is returned when decoding is asked of a keyed scheme.
	// Only static ciphertext can be read back.
	ErrNotDecodable = errors.New("ciphertext of keyed schemes cannot be decoded")
)

// Mode is the validation regime of a key.
type Mode = keyword.Mode

// Key modes.
const (
	Permutation = keyword.Permutation
	Additive    = keyword.Additive
)

// Scheme selects one of the three encoders.
type Scheme int

const (
	// Static is the unkeyed code table substitution.
	Static Scheme = iota
	// KeyedPermutation reshuffles glyph runs along a keyword ordering.
	KeyedPermutation
	// KeyedAdditive adds a repeating key trit by trit.
	KeyedAdditive
)

func (s Scheme) String() string {
	switch s {
	case Static:
		return "static"
	case KeyedPermutation:
		return "permutation"
	case KeyedAdditive:
		return "additive"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme parses a scheme name: static, permutation or additive.
func ParseScheme(s string) (Scheme, error) {
	if strings.EqualFold(strings.TrimSpace(s), "static") {
		return Static, nil
	}
	m, err := keyword.ParseMode(s)
	if err != nil {
		return Static, fmt.Errorf("unknown scheme %q", s)
	}
	return schemeOf(m), nil
}

// KeyMode returns the key validation regime of a keyed scheme.
func (s Scheme) KeyMode() (Mode, bool) {
	switch s {
	case KeyedPermutation:
		return Permutation, true
	case KeyedAdditive:
		return Additive, true
	}
	return 0, false
}

func schemeOf(m Mode) Scheme {
	if m == Permutation {
		return KeyedPermutation
	}
	return KeyedAdditive
}

// Options configures a Codec.
//
//   - Scheme — encoder to use.
//   - Key    — cipher key; ignored by Static.
//   - Glyphs — glyph set; the zero value selects trit.DefaultGlyphSet.
//   - Strict — reject reserved runes in plaintext and malformed ciphertext.
type Options struct {
	Scheme Scheme
	Key    string
	Glyphs trit.GlyphSet
	Strict bool
}

type encrypter interface {
	Encrypt(X string) (string, error)
}

// Codec bundles an encoder with its glyph set. Decoding is only available
// for the Static scheme.
type Codec struct {
	scheme  Scheme
	enc     encrypter
	decoder *static.Cipher
}

// NewCodec builds a Codec from opts. Keyed schemes fail with an error
// wrapping ErrInvalidKey when the key does not validate.
func NewCodec(opts Options) (*Codec, error) {
	glyphs := opts.Glyphs.OrDefault()
	c := &Codec{scheme: opts.Scheme}

	switch opts.Scheme {
	case Static:
		c.decoder = static.NewCipher(static.Options{Glyphs: glyphs, Strict: opts.Strict})
		c.enc = c.decoder
	case KeyedPermutation:
		p, err := permute.NewCipher(opts.Key, permute.Options{Glyphs: glyphs, Strict: opts.Strict})
		if err != nil {
			return nil, err
		}
		c.enc = p
	case KeyedAdditive:
		a, err := additive.NewCipher(opts.Key, additive.Options{Glyphs: glyphs, Strict: opts.Strict})
		if err != nil {
			return nil, err
		}
		c.enc = a
	default:
		return nil, fmt.Errorf("unsupported scheme %v", opts.Scheme)
	}
	return c, nil
}

// SchemeForKey applies the caller convention for typed keys: the sentinel
// "0" selects Static, anything else selects the keyed scheme.
func SchemeForKey(key string, keyed Scheme) Scheme {
	if key == keyword.Sentinel {
		return Static
	}
	return keyed
}

// Scheme returns the encoder in use.
func (c *Codec) Scheme() Scheme {
	return c.scheme
}

// Encode encrypts plaintext with the configured scheme.
func (c *Codec) Encode(plaintext string) (string, error) {
	return c.enc.Encrypt(plaintext)
}

// Decode reads static ciphertext back to upper case plaintext.
// Keyed schemes return ErrNotDecodable.
func (c *Codec) Decode(ciphertext string) (string, error) {
	if c.decoder == nil {
		return "", fmt.Errorf("%w: scheme %v", ErrNotDecodable, c.scheme)
	}
	return c.decoder.Decrypt(ciphertext)
}

var defaultStatic = static.NewCipher(static.DefaultOptions())

// EncodeStatic encrypts plaintext with the unkeyed code table and the
// default glyph set.
func EncodeStatic(plaintext string) string {
	// the lenient static cipher never fails
	out, _ := defaultStatic.Encrypt(plaintext)
	return out
}

// DecodeStatic reads ciphertext produced by EncodeStatic. Runes that do not
// form a letter are copied through.
func DecodeStatic(ciphertext string) string {
	out, _ := defaultStatic.Decrypt(ciphertext)
	return out
}

// EncodeKeyedPermutation encrypts plaintext with the keyed-permutation
// cipher. The key must hold unique letters only.
func EncodeKeyedPermutation(plaintext, key string) (string, error) {
	c, err := permute.NewCipher(key, permute.Options{})
	if err != nil {
		return "", err
	}
	return c.Encrypt(plaintext)
}

// EncodeKeyedAdditive encrypts plaintext with the keyed-additive cipher.
// The key must hold letters only.
func EncodeKeyedAdditive(plaintext, key string) (string, error) {
	c, err := additive.NewCipher(key, additive.Options{})
	if err != nil {
		return "", err
	}
	return c.Encrypt(plaintext)
}

// ValidateKey reports whether key is acceptable for mode.
func ValidateKey(key string, mode Mode) bool {
	return keyword.Validate(key, mode)
}
