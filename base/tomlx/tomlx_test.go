// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Name  string
	Count int
	Scale float32
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	in := &testSettings{Name: "cube", Count: 3, Scale: 0.5}
	require.NoError(t, Save(in, fn))

	out := &testSettings{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)

	var b bytes.Buffer
	require.NoError(t, Write(in, &b))
	assert.Contains(t, b.String(), "Name = 'cube'")

	rb := &testSettings{}
	require.NoError(t, Read(rb, &b))
	assert.Equal(t, in, rb)
}

func TestSaveError(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, Save(&testSettings{}, filepath.Join(dir, "missing", "settings.toml")))

	fn := filepath.Join(dir, "chan.toml")
	assert.Error(t, Save(map[string]any{"C": make(chan int)}, fn))
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.toml")
	f2 := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(f1, []byte("Name = 'a'\nCount = 1\n"), 0666))
	require.NoError(t, os.WriteFile(f2, []byte("Count = 2\n"), 0666))

	s := &testSettings{}
	require.NoError(t, OpenFiles(s, f1, f2))
	assert.Equal(t, "a", s.Name)
	assert.Equal(t, 2, s.Count)

	assert.Error(t, OpenFiles(s, filepath.Join(dir, "missing.toml")))
	assert.Error(t, Read(s, strings.NewReader("Count = ")))
}
