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
	"fmt"
	"time"
)

// layout parameterizes the shared identifier arithmetic per variant so
// both variants run the same code and cannot drift apart.
type layout struct {
	// width of the raw timestamp field, bytes
	tsLen int
	// width of the payload field, bytes
	payloadLen int
	// raw timestamp ticks per second
	ticks int64
}

var (
	stdLayout = layout{tsLen: TimestampLen, payloadLen: PayloadLen, ticks: 1}
	msLayout  = layout{tsLen: MsTimestampLen, payloadLen: MsPayloadLen, ticks: 256}
)

// toRaw converts a wall-clock time to the raw tick count of the variant.
// The second-resolution variant truncates to whole seconds, sub-second
// variants round to the nearest tick, both matching the reference
// implementation. Times outside [Epoch, Epoch + 2^(8*tsLen)/ticks) fail
// with ErrRange before any byte is produced.
func (l layout) toRaw(t time.Time) (uint64, error) {
	t = t.UTC()

	raw := (t.Unix() - Epoch) * l.ticks
	if l.ticks > 1 {
		raw += (int64(t.Nanosecond())*l.ticks + int64(time.Second)/2) / int64(time.Second)
	}

	if raw < 0 || raw>>(8*l.tsLen) != 0 {
		return 0, fmt.Errorf("%w: time %v is outside the identifier range", ErrRange, t)
	}
	return uint64(raw), nil
}

// toTime is inverse to toRaw up to the tick resolution of the variant.
func (l layout) toTime(raw uint64) time.Time {
	sec := int64(raw) / l.ticks
	nsec := (int64(raw) % l.ticks) * (int64(time.Second) / l.ticks)
	return time.Unix(Epoch+sec, nsec).UTC()
}

// construct packs a wall-clock time and an explicit payload into the
// serialized form: big-endian raw timestamp, payload bytes.
func (l layout) construct(t time.Time, payload []byte) (uid [Len]byte, err error) {
	if len(payload) != l.payloadLen {
		return uid, fmt.Errorf("%w: payload is %d bytes, expected %d", ErrLength, len(payload), l.payloadLen)
	}

	raw, err := l.toRaw(t)
	if err != nil {
		return uid, err
	}

	for i := l.tsLen - 1; i >= 0; i-- {
		uid[i] = byte(raw)
		raw >>= 8
	}
	copy(uid[l.tsLen:], payload)
	return uid, nil
}

// generate constructs an identifier off the given source: its wall clock
// and a random payload fill.
func (l layout) generate(c Chronos) (uid [Len]byte, err error) {
	payload := make([]byte, l.payloadLen)
	if err = c.Fill(payload); err != nil {
		return uid, err
	}
	return l.construct(c.T(), payload)
}

// raw extracts the timestamp tick count from the serialized form
func (l layout) raw(uid [Len]byte) (raw uint64) {
	for _, b := range uid[:l.tsLen] {
		raw = raw<<8 | uint64(b)
	}
	return raw
}

// fromBytes splits a raw byte sequence, validating nothing but length.
// Decode is more permissive than construct: any raw timestamp value
// round-trips, foreign data may hold values construct would reject.
func fromBytes(val []byte) (uid [Len]byte, err error) {
	if len(val) != Len {
		return uid, fmt.Errorf("%w: %d bytes, expected %d", ErrLength, len(val), Len)
	}
	copy(uid[:], val)
	return uid, nil
}

// fromString decodes the fixed-width base62 text form. Values wider than
// the identifier fail with ErrRange, shorter values are zero-extended on
// the left.
func fromString(val string) (uid [Len]byte, err error) {
	num, err := DecodeBase62(val)
	if err != nil {
		return uid, err
	}
	if len(num) > Len {
		return uid, fmt.Errorf("%w: base62 value is %d bytes, identifier holds %d", ErrRange, len(num), Len)
	}
	copy(uid[Len-len(num):], num)
	return uid, nil
}

// toString encodes the serialized form to the fixed-width base62 text,
// left padded with the zero glyph to EncodedLen characters.
func toString(uid [Len]byte) string {
	val := EncodeBase62(uid[:])

	text := make([]byte, EncodedLen)
	for i := range text {
		text[i] = '0'
	}
	copy(text[EncodedLen-len(val):], val)
	return string(text)
}
