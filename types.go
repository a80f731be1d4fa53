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

import "errors"

// Epoch is the zero instant of the identifier timestamp, unix seconds.
// Both variants count from here, not from 1970-01-01.
const Epoch int64 = 1400000000

const (
	// Len is the raw width of an identifier, constant for both variants.
	Len = 20

	// EncodedLen is the width of the base62 text form, constant for both
	// variants.
	EncodedLen = 27

	// TimestampLen and PayloadLen are the field widths of ID.
	TimestampLen = 4
	PayloadLen   = 16

	// MsTimestampLen and MsPayloadLen are the field widths of MsID.
	MsTimestampLen = 5
	MsPayloadLen   = 15
)

// ID is the standard variant: 4-byte big-endian epoch-seconds timestamp
// followed by a 16-byte payload. The type is comparable, identifiers are
// equal iff all 20 bytes are equal, which makes ID usable as a map key.
type ID [Len]byte

// MsID is the millisecond variant: 5-byte big-endian timestamp counted
// in 1/256-second ticks followed by a 15-byte payload.
type MsID [Len]byte

// Nil is the zero value of ID: epoch instant, zero payload.
var Nil ID

// NilMs is the zero value of MsID.
var NilMs MsID

var (
	// ErrLength reports a raw byte sequence or an explicit payload whose
	// length differs from the fixed width of the variant.
	ErrLength = errors.New("ksuid: invalid length")

	// ErrRange reports a timestamp outside the representable range of the
	// raw field, or base62 text that decodes wider than the identifier.
	ErrRange = errors.New("ksuid: value out of range")

	// ErrFormat reports base62 text that is empty or holds a character
	// outside the alphabet.
	ErrFormat = errors.New("ksuid: invalid format")
)
