// Copyright (c) 2023-2024 D. Bohdan
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noSuchVariable = "ENVLOOKUP_NO_SUCH_VARIABLE_SHOULD_EXIST"

func mapEnv(vars map[string]string) getenvFunc {
	return func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}

func TestLookupPresent(t *testing.T) {
	t.Setenv("ENVLOOKUP_TEST", "hello")

	result := lookup(nil, "ENVLOOKUP_TEST")

	assert.Equal(t, lookupResult{Key: "ENVLOOKUP_TEST", Value: "hello", Present: true}, result)
	assert.Equal(t, "ENVLOOKUP_TEST: hello", result.String())
}

func TestLookupEmptyValueIsPresent(t *testing.T) {
	result := lookup(mapEnv(map[string]string{"EMPTY": ""}), "EMPTY")

	assert.True(t, result.Present)
	assert.Equal(t, "EMPTY: ", result.String())
}

func TestLookupAbsent(t *testing.T) {
	result := lookup(nil, noSuchVariable)

	assert.False(t, result.Present)
	assert.NotEmpty(t, result.Reason)
	assert.Equal(t, noSuchVariable+": environment variable not found", result.String())
}

func TestLookupNotUnicode(t *testing.T) {
	result := lookup(mapEnv(map[string]string{"BAD": "a\xffb"}), "BAD")

	assert.False(t, result.Present)
	assert.Empty(t, result.Value)
	assert.Equal(t, `BAD: environment variable was not valid unicode: "a\xffb"`, result.String())
}

func TestLookupIdempotent(t *testing.T) {
	t.Setenv("ENVLOOKUP_TEST", "same")

	for _, key := range []string{"ENVLOOKUP_TEST", noSuchVariable} {
		assert.Equal(t, lookup(nil, key), lookup(nil, key), key)
	}
}

func TestReportDefaultKey(t *testing.T) {
	var stdout bytes.Buffer
	report(&stdout, mapEnv(map[string]string{"PATH": "/usr/bin:/bin"}), nil)

	assert.Equal(t, "PATH: /usr/bin:/bin\n", stdout.String())
}

func TestReportKeys(t *testing.T) {
	var stdout bytes.Buffer
	report(&stdout, mapEnv(map[string]string{"HOME": "/root"}), []string{"HOME", "MISSING"})

	lines := bytes.Split(bytes.TrimSuffix(stdout.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "HOME: /root", string(lines[0]))
	assert.Equal(t, "MISSING: environment variable not found", string(lines[1]))
}
