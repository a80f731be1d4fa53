/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package ksuid

import (
	"crypto/rand"
	"io"
	"time"
)

// Chronos is an abstraction of the wall clock and the entropy source
// used by the library. Default construction is the only operation that
// touches either, everything else is a pure function of its inputs.
type Chronos interface {
	// Wall clock reading ⟨𝒕⟩, any location
	T() time.Time
	// Random fill of the payload fraction ⟨𝒑⟩
	Fill(p []byte) error
}

// Clock is global default instance of the identifier source
//
// If the application needs own default clock e.g. a frozen one for
// deterministic tests, it declares own instance and passes it to NewWith
// and NewMsWith.
var Clock Chronos = NewClock()

// the default source, wall clock + entropy reader
type clock struct {
	ticker  func() time.Time
	entropy io.Reader
}

func (clock clock) T() time.Time { return clock.ticker() }

func (clock clock) Fill(p []byte) error {
	_, err := io.ReadFull(clock.entropy, p)
	return err
}

// Creates instance of the identifier source
func NewClock(opts ...Config) Chronos {
	clock := &clock{}
	defopt := []Config{WithClockUnix(), WithEntropyRandom()}

	for _, opt := range append(defopt, opts...) {
		opt(clock)
	}
	return clock
}

// Create mock instance of the identifier source: the clock is frozen at
// the epoch instant, the entropy yields zero bytes.
func NewClockMock(opts ...Config) Chronos {
	clock := &clock{
		ticker:  func() time.Time { return time.Unix(Epoch, 0).UTC() },
		entropy: zero{},
	}

	for _, opt := range opts {
		opt(clock)
	}
	return clock
}

type zero struct{}

func (zero) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// Config option of default source behavior.
// Config options allows to define custom strategies to read
// ⟨𝒕⟩ wall clock or fill ⟨𝒑⟩ payload.
type Config func(*clock)

// WithClock configures a custom wall clock function
func WithClock(ticker func() time.Time) Config {
	return func(clock *clock) {
		clock.ticker = ticker
	}
}

// WithClockUnix configures time.Now as the wall clock function
func WithClockUnix() Config {
	return func(clock *clock) {
		clock.ticker = time.Now
	}
}

// WithEntropy configures a custom reader as the payload entropy source
func WithEntropy(r io.Reader) Config {
	return func(clock *clock) {
		clock.entropy = r
	}
}

// WithEntropyRandom configures the cryptographic random generator as the
// payload entropy source
func WithEntropyRandom() Config {
	return func(clock *clock) {
		clock.entropy = rand.Reader
	}
}
