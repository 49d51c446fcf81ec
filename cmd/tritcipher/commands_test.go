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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltak/tritcipher"
	"github.com/deltak/tritcipher/internal/config"
)

func permutationConfig(t *testing.T) *config.Config {
	path := filepath.Join(t.TempDir(), "permute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keyed_scheme: permutation\n"), 0644))
	cfg, err := config.Process([]string{path})
	require.NoError(t, err)
	return cfg
}

func TestPromptCommand_Additive(t *testing.T) {
	in := strings.NewReader("HI\n12\nBC\n")
	var out bytes.Buffer

	require.NoError(t, promptCommand(config.Default(), in, &out))
	assert.Equal(t, strings.Join([]string{
		"Please enter plaintext to encode:",
		"Enter key (0 for normal cipher):",
		"Key invalid. Try again.",
		"Enter key (0 for normal cipher):",
		"Encoded ciphertext:",
		"▲◆▼▼▼▲",
		"",
	}, "\n"), out.String())
}

func TestPromptCommand_Permutation(t *testing.T) {
	in := strings.NewReader("hi\naabb KEY\n")
	var out bytes.Buffer

	require.NoError(t, promptCommand(permutationConfig(t), in, &out))
	assert.Equal(t, 1, strings.Count(out.String(), "Key invalid. Try again."))
	assert.True(t, strings.HasSuffix(out.String(), "Encoded ciphertext:\n▼▲▼▼▲◆\n"), out.String())
}

func TestPromptCommand_Sentinel(t *testing.T) {
	in := strings.NewReader("HI THERE\r\n0\n")
	var out bytes.Buffer

	require.NoError(t, promptCommand(config.Default(), in, &out))
	assert.True(t, strings.HasSuffix(out.String(), tritcipher.EncodeStatic("HI THERE")+"\n"))
	assert.NotContains(t, out.String(), "Key invalid")
}

func TestPromptCommand_EOF(t *testing.T) {
	var out bytes.Buffer
	err := promptCommand(config.Default(), strings.NewReader("HI\nbad1\n"), &out)
	assert.Error(t, err)

	err = promptCommand(config.Default(), strings.NewReader(""), &out)
	assert.Error(t, err)
}

func TestEncodeCommand(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		args encodeArgs
		in   string
		want string
	}{
		{encodeArgs{text: "HI", inline: true}, "", "▲◆◆▼▲▲\n"},
		{encodeArgs{key: "0", text: "HI", inline: true}, "", "▲◆◆▼▲▲\n"},
		{encodeArgs{}, "HI\n", "▲◆◆▼▲▲\n"},
		{encodeArgs{key: "BC", text: "HI", inline: true}, "", "▲◆▼▼▼▲\n"},
		{encodeArgs{key: "KEY", scheme: "permutation", text: "hi", inline: true}, "", "▼▲▼▼▲◆\n"},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		require.NoError(t, encodeCommand(cfg, tc.args, strings.NewReader(tc.in), &out))
		assert.Equal(t, tc.want, out.String(), "%+v", tc.args)
	}

	var out bytes.Buffer
	err := encodeCommand(cfg, encodeArgs{key: "aabb", scheme: "permutation", text: "hi", inline: true}, nil, &out)
	assert.ErrorIs(t, err, tritcipher.ErrInvalidKey)

	err = encodeCommand(cfg, encodeArgs{scheme: "rot13", text: "hi", inline: true}, nil, &out)
	assert.Error(t, err)
}

func TestEncodeDecode_InvalidUTF8(t *testing.T) {
	cfg := config.Default()

	var enc bytes.Buffer
	require.NoError(t, encodeCommand(cfg, encodeArgs{}, strings.NewReader("caf\xe9 ok\n"), &enc))
	assert.Equal(t, "▲▼▲▲▲▼▲◆▲\xe9/▼◆▲▼▲◆\n", enc.String())

	var dec bytes.Buffer
	require.NoError(t, decodeCommand(cfg, decodeArgs{}, &enc, &dec))
	assert.Equal(t, "CAF\xe9 OK\n", dec.String())
}

func TestDecodeCommand(t *testing.T) {
	cfg := config.Default()

	var out bytes.Buffer
	require.NoError(t, decodeCommand(cfg, decodeArgs{text: "▲◆◆▼▲▲/▲▲▼", inline: true}, nil, &out))
	assert.Equal(t, "HI A\n", out.String())

	out.Reset()
	require.NoError(t, decodeCommand(cfg, decodeArgs{}, strings.NewReader("▲◆◆▼▲▲\n"), &out))
	assert.Equal(t, "HI\n", out.String())

	out.Reset()
	err := decodeCommand(cfg, decodeArgs{strict: true, text: "▲▲▲", inline: true}, nil, &out)
	assert.Error(t, err)
}

func TestTableCommand(t *testing.T) {
	cfg := config.Default()

	var out bytes.Buffer
	require.NoError(t, tableCommand(cfg, "", &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 27)
	assert.Equal(t, []string{"A", "0", "{0,0,1}", "1", "▲▲▼"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Z", "25", "{2,2,2}", "26", "◆◆◆"}, strings.Fields(lines[26]))

	out.Reset()
	require.NoError(t, tableCommand(cfg, "KEY", &out))
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{"K", "0", "{0,0,1}", "1", "▲▲▼"}, strings.Fields(lines[11]))
	assert.Equal(t, []string{"A", "3", "{0,1,1}", "4", "▲▼▼"}, strings.Fields(lines[1]))

	assert.Error(t, tableCommand(cfg, "aabb", &out))
}

func TestKeyFingerprint(t *testing.T) {
	assert.Equal(t, "", keyFingerprint(""))
	assert.Len(t, keyFingerprint("KEY"), 16)
	assert.NotEqual(t, keyFingerprint("KEY"), keyFingerprint("KEX"))
	assert.NotContains(t, keyFingerprint("KEY"), "KEY")
}
