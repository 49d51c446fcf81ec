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

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"

	"github.com/deltak/tritcipher"
	"github.com/deltak/tritcipher/internal/config"
	"github.com/deltak/tritcipher/keyword"
	"github.com/deltak/tritcipher/permute"
	"github.com/deltak/tritcipher/trit"
)

type encodeArgs struct {
	key    string
	scheme string
	text   string
	inline bool
}

type decodeArgs struct {
	strict bool
	text   string
	inline bool
}

// keyFingerprint identifies a key in logs without revealing it.
func keyFingerprint(key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))
}

// readInput returns the inline text, or all of r with one trailing line
// break removed.
func readInput(text string, inline bool, r io.Reader) (string, error) {
	if inline {
		return text, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// resolveScheme picks the scheme for a key: an explicit scheme name wins,
// otherwise an empty or sentinel key means static and any other key the
// configured keyed scheme.
func resolveScheme(cfg *config.Config, name, key string) (tritcipher.Scheme, error) {
	if name != "" {
		return tritcipher.ParseScheme(name)
	}
	if key == "" {
		return tritcipher.Static, nil
	}
	keyed, err := cfg.Keyed()
	if err != nil {
		return keyed, err
	}
	return tritcipher.SchemeForKey(key, keyed), nil
}

func newCodec(cfg *config.Config, scheme tritcipher.Scheme, key string, strict bool) (*tritcipher.Codec, error) {
	glyphs, err := cfg.GlyphSet()
	if err != nil {
		return nil, err
	}
	return tritcipher.NewCodec(tritcipher.Options{
		Scheme: scheme,
		Key:    key,
		Glyphs: glyphs,
		Strict: strict || cfg.Strict,
	})
}

func encodeCommand(cfg *config.Config, args encodeArgs, in io.Reader, out io.Writer) error {
	scheme, err := resolveScheme(cfg, args.scheme, args.key)
	if err != nil {
		return err
	}

	codec, err := newCodec(cfg, scheme, args.key, false)
	if err != nil {
		return err
	}

	plaintext, err := readInput(args.text, args.inline, in)
	if err != nil {
		return err
	}

	log.Debug().
		Str("scheme", scheme.String()).
		Str("key_hash", keyFingerprint(args.key)).
		Int("len", len(plaintext)).
		Msg("encoding")

	ciphertext, err := codec.Encode(plaintext)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, ciphertext)
	return err
}

func decodeCommand(cfg *config.Config, args decodeArgs, in io.Reader, out io.Writer) error {
	codec, err := newCodec(cfg, tritcipher.Static, "", args.strict)
	if err != nil {
		return err
	}

	ciphertext, err := readInput(args.text, args.inline, in)
	if err != nil {
		return err
	}

	log.Debug().Int("len", len(ciphertext)).Bool("strict", args.strict || cfg.Strict).Msg("decoding")

	plaintext, err := codec.Decode(ciphertext)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, plaintext)
	return err
}

// tableCommand prints one row per letter: the letter, its slot in the
// alphabet ordering, its triple, the triple's base-3 value and its glyph
// run. With a key the permutation table of that key is printed.
func tableCommand(cfg *config.Config, key string, out io.Writer) error {
	glyphs, err := cfg.GlyphSet()
	if err != nil {
		return err
	}

	codeOf := trit.CodeOf
	ordering := keyword.PlainOrdering
	if key != "" && key != keyword.Sentinel {
		c, err := permute.NewCipher(key, permute.Options{Glyphs: glyphs})
		if err != nil {
			return err
		}
		log.Debug().Str("ordering", c.Ordering().String()).Msg("keyed table")
		codeOf = c.CodeOf
		ordering = c.Ordering()
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LETTER\tSLOT\tTRITS\tVALUE\tGLYPHS")
	for i := 0; i < trit.AlphabetLength; i++ {
		code := codeOf(i)
		fmt.Fprintf(w, "%c\t%d\t%s\t%d\t%s\n", trit.Letter(i), ordering.Position(i), code, code.Value(), glyphs.Run(code))
	}
	return w.Flush()
}
