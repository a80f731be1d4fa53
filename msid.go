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
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

/*
NewMs generates a unique millisecond-resolution identifier off the
default source.

	5 byte             15 byte
	|-------|------------------------------|
	  ⟨𝒕⟩                ⟨𝒑⟩

The timestamp counts 1/256-second ticks since Epoch, which resolves the
wall clock to about 4 ms.
*/
func NewMs() (MsID, error) {
	return NewMsWith(Clock)
}

// NewMsWith generates a millisecond-resolution identifier off the given
// source.
func NewMsWith(c Chronos) (MsID, error) {
	uid, err := msLayout.generate(c)
	return MsID(uid), err
}

// NewMsWithTime generates an identifier at the explicit wall-clock time,
// payload is filled off the default source. The time is normalized to
// UTC and rounded to the nearest 1/256-second tick.
func NewMsWithTime(t time.Time) (MsID, error) {
	payload := make([]byte, MsPayloadLen)
	if err := Clock.Fill(payload); err != nil {
		return NilMs, err
	}
	return MsFromParts(t, payload)
}

// MsFromParts builds an identifier from an explicit time and payload.
// A payload of the wrong length fails with ErrLength, a time outside
// [Epoch, Epoch + 2⁴⁰/256) seconds fails with ErrRange.
func MsFromParts(t time.Time, payload []byte) (MsID, error) {
	uid, err := msLayout.construct(t, payload)
	return MsID(uid), err
}

// MsFromBytes decodes an identifier from its 20-byte serialized form.
// Only the length is validated, any raw timestamp value round-trips.
func MsFromBytes(val []byte) (MsID, error) {
	uid, err := fromBytes(val)
	return MsID(uid), err
}

// ParseMs decodes an identifier from its fixed-width base62 text form.
func ParseMs(val string) (MsID, error) {
	uid, err := fromString(val)
	return MsID(uid), err
}

/*******************************************************************************

Lenses of the identifier

*******************************************************************************/

// Bytes encodes the identifier to its 20-byte serialized form. The
// returned slice is a copy, mutating it never affects the identifier.
func (uid MsID) Bytes() []byte {
	val := make([]byte, Len)
	copy(val, uid[:])
	return val
}

// Timestamp returns the raw ⟨𝒕⟩ fraction, 1/256-second ticks since
// Epoch.
func (uid MsID) Timestamp() uint64 {
	return msLayout.raw([Len]byte(uid))
}

// Unix returns the ⟨𝒕⟩ fraction as seconds since the Unix epoch. The
// fraction keeps the sub-second part: full precision of the 40-bit tick
// count fits a float64 mantissa.
func (uid MsID) Unix() float64 {
	return float64(Epoch) + float64(uid.Timestamp())/256
}

// Time returns the ⟨𝒕⟩ fraction as UTC wall-clock time. It recovers the
// construction time only to the 1/256-second tick.
func (uid MsID) Time() time.Time {
	return msLayout.toTime(msLayout.raw([Len]byte(uid)))
}

// Payload returns a copy of the ⟨𝒑⟩ fraction.
func (uid MsID) Payload() []byte {
	val := make([]byte, MsPayloadLen)
	copy(val, uid[MsTimestampLen:])
	return val
}

// IsNil is true for the zero identifier.
func (uid MsID) IsNil() bool {
	return uid == NilMs
}

/*******************************************************************************

Codecs

*******************************************************************************/

// String encodes the identifier to lexicographically sortable base62
// text, always EncodedLen characters.
func (uid MsID) String() string {
	return toString([Len]byte(uid))
}

// MarshalText encodes the identifier to its base62 text form
func (uid MsID) MarshalText() ([]byte, error) {
	return []byte(uid.String()), nil
}

// UnmarshalText decodes the identifier from its base62 text form
func (uid *MsID) UnmarshalText(text []byte) (err error) {
	*uid, err = ParseMs(string(text))
	return
}

// MarshalJSON encodes the identifier to a base62 JSON string
func (uid MsID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uid.String())
}

// UnmarshalJSON decodes the identifier from a base62 JSON string
func (uid *MsID) UnmarshalJSON(b []byte) (err error) {
	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}
	*uid, err = ParseMs(val)
	return
}

// Value encodes the identifier for SQL drivers as its base62 text form
func (uid MsID) Value() (driver.Value, error) {
	return uid.String(), nil
}

// Scan decodes the identifier from an SQL column: base62 text, the raw
// 20-byte form, or NULL for the zero identifier.
func (uid *MsID) Scan(src any) (err error) {
	switch val := src.(type) {
	case nil:
		*uid = NilMs
		return nil
	case string:
		*uid, err = ParseMs(val)
		return err
	case []byte:
		if len(val) == Len {
			*uid, err = MsFromBytes(val)
			return err
		}
		*uid, err = ParseMs(string(val))
		return err
	default:
		return fmt.Errorf("%w: unsupported SQL type %T", ErrFormat, src)
	}
}
