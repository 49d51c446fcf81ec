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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/deltak/tritcipher"
	"github.com/deltak/tritcipher/internal/config"
	"github.com/deltak/tritcipher/keyword"
)

// promptCommand reads a plaintext line, then key tokens until one is valid
// for the configured keyed scheme or is the sentinel "0", and prints the
// ciphertext.
func promptCommand(cfg *config.Config, in io.Reader, out io.Writer) error {
	keyed, err := cfg.Keyed()
	if err != nil {
		return err
	}
	mode, _ := keyed.KeyMode()

	reader := bufio.NewReader(in)

	fmt.Fprintln(out, "Please enter plaintext to encode:")
	plaintext, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && plaintext != "") {
		return fmt.Errorf("read plaintext: %w", err)
	}
	plaintext = strings.TrimRight(plaintext, "\r\n")

	tokens := bufio.NewScanner(reader)
	tokens.Split(bufio.ScanWords)

	var key string
	for {
		fmt.Fprintln(out, "Enter key (0 for normal cipher):")
		if !tokens.Scan() {
			if err := tokens.Err(); err != nil {
				return fmt.Errorf("read key: %w", err)
			}
			return fmt.Errorf("read key: %w", io.ErrUnexpectedEOF)
		}
		key = tokens.Text()
		if key == keyword.Sentinel {
			break
		}
		if err := keyword.Check(key, mode); err != nil {
			log.Debug().Err(err).Str("key_hash", keyFingerprint(key)).Msg("rejected key")
			fmt.Fprintln(out, "Key invalid. Try again.")
			continue
		}
		break
	}

	scheme := tritcipher.SchemeForKey(key, keyed)
	codec, err := newCodec(cfg, scheme, key, false)
	if err != nil {
		return err
	}

	log.Debug().
		Str("scheme", scheme.String()).
		Str("key_hash", keyFingerprint(key)).
		Msg("encoding")

	ciphertext, err := codec.Encode(plaintext)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Encoded ciphertext:")
	_, err = fmt.Fprintln(out, ciphertext)
	return err
}
