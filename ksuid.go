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
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

/*
New generates a unique identifier off the default source: current wall
clock, random payload.

	4 byte              16 byte
	|------|--------------------------------|
	  ⟨𝒕⟩                 ⟨𝒑⟩
*/
func New() (ID, error) {
	return NewWith(Clock)
}

// NewWith generates a unique identifier off the given source.
func NewWith(c Chronos) (ID, error) {
	uid, err := stdLayout.generate(c)
	return ID(uid), err
}

// NewWithTime generates an identifier at the explicit wall-clock time,
// payload is filled off the default source. The time is normalized to
// UTC and truncated to whole seconds.
func NewWithTime(t time.Time) (ID, error) {
	payload := make([]byte, PayloadLen)
	if err := Clock.Fill(payload); err != nil {
		return Nil, err
	}
	return FromParts(t, payload)
}

// FromParts builds an identifier from an explicit time and payload.
// A payload of the wrong length fails with ErrLength, a time outside
// [Epoch, Epoch + 2³²) seconds fails with ErrRange.
func FromParts(t time.Time, payload []byte) (ID, error) {
	uid, err := stdLayout.construct(t, payload)
	return ID(uid), err
}

// FromBytes decodes an identifier from its 20-byte serialized form.
// Only the length is validated, any raw timestamp value round-trips.
func FromBytes(val []byte) (ID, error) {
	uid, err := fromBytes(val)
	return ID(uid), err
}

// Parse decodes an identifier from its fixed-width base62 text form.
func Parse(val string) (ID, error) {
	uid, err := fromString(val)
	return ID(uid), err
}

/*******************************************************************************

Lenses of the identifier

*******************************************************************************/

// Bytes encodes the identifier to its 20-byte serialized form. The
// returned slice is a copy, mutating it never affects the identifier.
func (uid ID) Bytes() []byte {
	val := make([]byte, Len)
	copy(val, uid[:])
	return val
}

// Timestamp returns the raw ⟨𝒕⟩ fraction, seconds since Epoch.
func (uid ID) Timestamp() uint32 {
	return uint32(stdLayout.raw([Len]byte(uid)))
}

// Unix returns the ⟨𝒕⟩ fraction as seconds since the Unix epoch.
func (uid ID) Unix() int64 {
	return Epoch + int64(uid.Timestamp())
}

// Time returns the ⟨𝒕⟩ fraction as UTC wall-clock time.
func (uid ID) Time() time.Time {
	return stdLayout.toTime(stdLayout.raw([Len]byte(uid)))
}

// Payload returns a copy of the ⟨𝒑⟩ fraction.
func (uid ID) Payload() []byte {
	val := make([]byte, PayloadLen)
	copy(val, uid[TimestampLen:])
	return val
}

// IsNil is true for the zero identifier.
func (uid ID) IsNil() bool {
	return uid == Nil
}

/*******************************************************************************

K-Order "Algebra"

*******************************************************************************/

// Equal compares identifiers of one variant, true if all bytes are
// equal. Comparison across variants or against foreign types is a
// compile-time type error.
func Equal[T ID | MsID](a, b T) bool {
	return a == b
}

// Compare orders identifiers of one variant by their unsigned serialized
// bytes: negative if a sorts before b, zero if equal, positive after.
// The timestamp occupies the most significant bytes, so time dominates
// the order and payload bytes break ties within a timestamp bucket.
func Compare[T ID | MsID](a, b T) int {
	x, y := [Len]byte(a), [Len]byte(b)
	return bytes.Compare(x[:], y[:])
}

// Before is true if a sorts before b.
func Before[T ID | MsID](a, b T) bool {
	return Compare(a, b) < 0
}

// After is true if a sorts after b.
func After[T ID | MsID](a, b T) bool {
	return Compare(a, b) > 0
}

// Sort orders identifiers in place by their serialized bytes, which is
// allocation-time order up to the tick resolution.
func Sort[T ID | MsID](ids []T) {
	sort.Slice(ids, func(i, j int) bool { return Compare(ids[i], ids[j]) < 0 })
}

/*******************************************************************************

Codecs

*******************************************************************************/

// String encodes the identifier to lexicographically sortable base62
// text, always EncodedLen characters.
func (uid ID) String() string {
	return toString([Len]byte(uid))
}

// MarshalText encodes the identifier to its base62 text form
func (uid ID) MarshalText() ([]byte, error) {
	return []byte(uid.String()), nil
}

// UnmarshalText decodes the identifier from its base62 text form
func (uid *ID) UnmarshalText(text []byte) (err error) {
	*uid, err = Parse(string(text))
	return
}

// MarshalJSON encodes the identifier to a base62 JSON string
func (uid ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uid.String())
}

// UnmarshalJSON decodes the identifier from a base62 JSON string
func (uid *ID) UnmarshalJSON(b []byte) (err error) {
	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}
	*uid, err = Parse(val)
	return
}

// Value encodes the identifier for SQL drivers as its base62 text form
func (uid ID) Value() (driver.Value, error) {
	return uid.String(), nil
}

// Scan decodes the identifier from an SQL column: base62 text, the raw
// 20-byte form, or NULL for the zero identifier.
func (uid *ID) Scan(src any) (err error) {
	switch val := src.(type) {
	case nil:
		*uid = Nil
		return nil
	case string:
		*uid, err = Parse(val)
		return err
	case []byte:
		if len(val) == Len {
			*uid, err = FromBytes(val)
			return err
		}
		*uid, err = Parse(string(val))
		return err
	default:
		return fmt.Errorf("%w: unsupported SQL type %T", ErrFormat, src)
	}
}
