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

/*
Package ksuid implements K-Sortable Unique Identifiers: fixed 20-byte
values built from a coarse timestamp and a random payload so that the
unsigned byte order of identifiers approximates allocation order. Running
a set of identifiers through UNIX sort yields a list ordered by creation
time.

# Key features

↣ IDs allocation does not require centralized authority or coordination
with other nodes, uniqueness within a timestamp bucket comes from a
cryptographically random payload.

↣ IDs are roughly sortable by allocation order ("time"), the timestamp
occupies the most significant bytes.

↣ IDs have constant width in both representations: 20 bytes raw and
27 characters of base62 text, which keeps indexes compact and keys
directly comparable.

# Identity Schema

Two variants share one epoch (unix 1400000000) and one total width:

	4 byte              16 byte
	|------|--------------------------------|
	  ⟨𝒕⟩                 ⟨𝒑⟩

↣ ID: ⟨𝒕⟩ is a 32-bit big-endian count of seconds since the epoch,
⟨𝒑⟩ is a 16-byte random payload.

	5 byte             15 byte
	|-------|------------------------------|
	  ⟨𝒕⟩                ⟨𝒑⟩

↣ MsID: ⟨𝒕⟩ is a 40-bit big-endian count of 1/256-second ticks since the
epoch, which resolves time to about 4 ms, ⟨𝒑⟩ is a 15-byte random payload.

The text form treats the 20 bytes as one big-endian unsigned integer and
encodes it in base62 (digits, upper case, lower case), left padded with
'0' to 27 characters. Text order therefore equals byte order.

The wall clock and the entropy source are pluggable through the Chronos
interface, the package default reads time.Now and crypto/rand.

# Applications

↣ object identity: out-of-the-box replacement for auto increment fields
in databases.

↣ event streams: identifiers double as roughly ordered stream positions.

↣ interop: the byte layout and text form match the reference KSUID
contract, identifiers generated here parse in other implementations and
vice versa.
*/
package ksuid
