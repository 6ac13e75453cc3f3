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
	"fmt"
	"os"
	"unicode/utf8"
)

const (
	reasonNotFound   = "environment variable not found"
	reasonNotUnicode = "environment variable was not valid unicode"
)

// getenvFunc has the signature of os.LookupEnv.
type getenvFunc func(key string) (string, bool)

type lookupResult struct {
	Key     string
	Value   string
	Present bool
	Reason  string
}

func (r lookupResult) String() string {
	if r.Present {
		return fmt.Sprintf("%s: %s", r.Key, r.Value)
	}

	return fmt.Sprintf("%s: %s", r.Key, r.Reason)
}

// lookup reports a missing variable as a result, not an error.
func lookup(getenv getenvFunc, key string) lookupResult {
	if getenv == nil {
		getenv = os.LookupEnv
	}

	value, ok := getenv(key)
	if !ok {
		return lookupResult{Key: key, Reason: reasonNotFound}
	}

	if !utf8.ValidString(value) {
		return lookupResult{
			Key:    key,
			Reason: fmt.Sprintf("%s: %q", reasonNotUnicode, value),
		}
	}

	return lookupResult{Key: key, Value: value, Present: true}
}
