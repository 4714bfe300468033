// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package inspect

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newCmd()
	out := bytes.Buffer{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspectText(t *testing.T) {
	out, err := run(t, "apple\nbanana\n\n  apple  \n")
	require.NoError(t, err)

	assert.Contains(t, out, "apple: 2")
	assert.Contains(t, out, "banana: 1")
	assert.Contains(t, out, "lines: 3\n")
	assert.Contains(t, out, "map: 2 keys, capacity 32")
	assert.Contains(t, out, "set: 2 values, capacity 32")
	assert.Contains(t, out, "placement first-free")
	assert.NotContains(t, out, "bucket 0:")
}

func TestInspectDebug(t *testing.T) {
	out, err := run(t, "a\n", "--debug", "--initial-capacity", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "bucket 0:")
	assert.Contains(t, out, "bucket 3:")
}

func TestInspectJSON(t *testing.T) {
	out, err := run(t, "a\nb\na\nc\n", "--output", "json", "--initial-capacity", "1")
	require.NoError(t, err)

	doc := Document{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 4, doc.Lines)
	assert.Equal(t, 3, doc.Map.Count)
	assert.Equal(t, 8, doc.Map.Capacity)
	assert.Equal(t, 3, doc.Map.Resizes)
	assert.Equal(t, 3, doc.Set.Count)
	assert.Equal(t, 8, doc.Set.Capacity)
	assert.LessOrEqual(t, doc.Map.LoadFactor, 0.6)
}

func TestInspectYAMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\ny\nz\n"), 0600))

	out, err := run(t, "", "-o", "yaml", "--placement", "linear-probe", path)
	require.NoError(t, err)

	doc := Document{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 3, doc.Lines)
	assert.Equal(t, 3, doc.Map.Count)
	assert.Equal(t, 3, doc.Set.Count)
}

func TestInspectErrors(t *testing.T) {
	_, err := run(t, "a\n", "--output", "xml")
	assert.ErrorIs(t, err, ErrUnknownOutput)

	_, err = run(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, "a\n", "--max-load-factor", "0")
	assert.Error(t, err)

	_, err = run(t, "", "a.txt", "b.txt")
	assert.Error(t, err)
}
