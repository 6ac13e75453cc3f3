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
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	tsize "github.com/kopoli/go-terminal-size"
)

const (
	defaultHelpWidth = 80
	exitCodeError    = 1
	maxVerboseLevel  = 2
	version          = "0.1.0"
)

type cli struct {
	Version kong.VersionFlag `short:"V" help:"print version number and exit"`
	Seed    int64            `default:"0" short:"s" help:"random seed (0 to seed from the clock)"`
	Verbose int              `short:"v" type:"counter" help:"increase verbosity"`
}

type elapsedTimeWriter struct {
	out       io.Writer
	startTime time.Time
}

func (w *elapsedTimeWriter) Write(bytes []byte) (int, error) {
	elapsed := time.Since(w.startTime)

	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	seconds := int(elapsed.Seconds()) % 60
	deciseconds := elapsed.Milliseconds() % 1000 / 100

	return fmt.Fprintf(w.out, "guess [%02d:%02d:%02d.%01d]: %s", hours, minutes, seconds, deciseconds, string(bytes))
}

func helpWidth() int {
	size, err := tsize.GetSize()
	if err != nil || size.Width <= 0 {
		return defaultHelpWidth
	}

	return size.Width
}

func newSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

func main() {
	var cliConfig cli
	kongCtx := kong.Parse(&cliConfig,
		kong.Name("guess"),
		kong.Description("Guess a secret number between 1 and 100 in a limited number of attempts."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{WrapUpperBound: helpWidth()}),
		kong.Vars{"version": version},
	)

	if cliConfig.Verbose > maxVerboseLevel {
		kongCtx.Fatalf("up to %d verbose flags is allowed", maxVerboseLevel)
	}

	log.SetOutput(&elapsedTimeWriter{
		out:       os.Stderr,
		startTime: time.Now(),
	})
	log.SetFlags(0)

	config := gameConfig{
		Min:         defaultMin,
		Max:         defaultMax,
		MaxAttempts: defaultMaxAttempts,
		Verbose:     cliConfig.Verbose,
	}

	if config.Verbose >= 2 {
		log.Printf("configuration:\n%s\n", repr.String(config, repr.Indent("\t")))
	}

	if _, err := play(newSource(cliConfig.Seed), os.Stdin, os.Stdout, config); err != nil {
		log.Printf("%v", err)
		os.Exit(exitCodeError)
	}
}
