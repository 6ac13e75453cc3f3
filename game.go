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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

const (
	defaultMax         = 100
	defaultMaxAttempts = 5
	defaultMin         = 1
)

var errInputClosed = errors.New("input closed before the game ended")

// randomSource is the subset of *rand.Rand the game needs.
type randomSource interface {
	Intn(n int) int
}

type gameConfig struct {
	Min         int
	Max         int
	MaxAttempts int
	Verbose     int
}

type outcomeKind int

const (
	outcomeWin outcomeKind = iota
	outcomeExhausted
)

type gameOutcome struct {
	Kind     outcomeKind
	Secret   int
	Attempts int
}

func (k outcomeKind) String() string {
	switch k {
	case outcomeWin:
		return "win"
	case outcomeExhausted:
		return "exhausted"
	}

	return fmt.Sprintf("outcomeKind(%d)", int(k))
}

func (c gameConfig) validate() error {
	if c.Min > c.Max {
		return fmt.Errorf("invalid range: min=%d, max=%d", c.Min, c.Max)
	}

	if c.MaxAttempts < 1 {
		return fmt.Errorf("invalid maximum number of attempts: %d", c.MaxAttempts)
	}

	return nil
}

func drawSecret(source randomSource, config gameConfig) int {
	return config.Min + source.Intn(config.Max-config.Min+1)
}

// parseGuess accepts any integer, including ones outside the secret's range.
// Integers too large for int are clamped.
func parseGuess(line string) (int, bool) {
	guess, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return guess, true
}

// readLine returns the next line without a length limit. A final line
// without a newline is still a line.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}

	return line, err
}

// play runs one game session. It returns an error only when the input fails
// before the game reaches an outcome.
func play(source randomSource, input io.Reader, output io.Writer, config gameConfig) (gameOutcome, error) {
	if err := config.validate(); err != nil {
		return gameOutcome{}, err
	}

	reader := bufio.NewReader(input)
	secret := drawSecret(source, config)

	fmt.Fprintln(output, "Guess the number!")

	outcome := gameOutcome{Kind: outcomeExhausted, Secret: secret}

	for outcome.Attempts < config.MaxAttempts {
		fmt.Fprintln(output, "Please input your guess:")

		line, err := readLine(reader)
		if err == io.EOF {
			return gameOutcome{}, errInputClosed
		}
		if err != nil {
			return gameOutcome{}, fmt.Errorf("failed to read guess: %w", err)
		}

		guess, ok := parseGuess(line)
		if !ok {
			if config.Verbose >= 2 {
				log.Printf("ignoring malformed input %q", strings.TrimSpace(line))
			}
			continue
		}

		outcome.Attempts++
		fmt.Fprintf(output, "You guessed: %d\n", guess)

		if config.Verbose >= 1 {
			log.Printf("guess %d on attempt %d of %d", guess, outcome.Attempts, config.MaxAttempts)
		}

		if guess < secret {
			fmt.Fprintln(output, "Too small!")
		} else if guess > secret {
			fmt.Fprintln(output, "Too big!")
		} else {
			outcome.Kind = outcomeWin
			break
		}
	}

	switch outcome.Kind {
	case outcomeWin:
		fmt.Fprintln(output, "You win!")
	case outcomeExhausted:
		fmt.Fprintln(output, "You've hit the maximum number of retries.")
	}

	fmt.Fprintf(output, "\nThe secret number was %d\n", secret)

	if config.Verbose >= 1 {
		log.Printf("game ended (%s) after %d attempt(s)", outcome.Kind, outcome.Attempts)
	}

	return outcome, nil
}
