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
	"io"
	"os"

	"github.com/alecthomas/kong"
	tsize "github.com/kopoli/go-terminal-size"
)

const (
	defaultHelpWidth = 80
	defaultKey       = "PATH"
	version          = "0.1.0"
)

type cli struct {
	Keys    []string         `arg:"" optional:"" name:"key" help:"environment variables to look up (default: ${default_key})"`
	Version kong.VersionFlag `short:"V" help:"print version number and exit"`
}

// helpWidth is the terminal width, or 80 columns when stdout is not a terminal.
func helpWidth() int {
	size, err := tsize.GetSize()
	if err != nil || size.Width <= 0 {
		return defaultHelpWidth
	}

	return size.Width
}

func report(w io.Writer, getenv getenvFunc, keys []string) {
	if len(keys) == 0 {
		keys = []string{defaultKey}
	}

	for _, key := range keys {
		fmt.Fprintln(w, lookup(getenv, key))
	}
}

func main() {
	var cliConfig cli
	kong.Parse(&cliConfig,
		kong.Name("envlookup"),
		kong.Description("Print the value of environment variables."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{WrapUpperBound: helpWidth()}),
		kong.Vars{
			"default_key": defaultKey,
			"version":     version,
		},
	)

	report(os.Stdout, os.LookupEnv, cliConfig.Keys)
}
