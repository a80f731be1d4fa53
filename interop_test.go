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

package ksuid_test

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/ksuid"
)

// Identifiers produced by an independent reference implementation:
// unix seconds, payload hex, expected base62 text. Both codec directions
// must reproduce these byte-for-byte.
var interop = []struct {
	unix    int64
	payload string
	encoded string
}{
	{1400000000, "00000000000000000000000000000000", "000000000000000000000000000"},
	{1400000000, "ffffffffffffffffffffffffffffffff", "000007n42DGM5Tflk9n8mt7Fhc7"},
	{5694967295, "ffffffffffffffffffffffffffffffff", "aWgEPTl1tmebfsQzFP4bxwgy80V"},
	{1500000000, "00112233445566778899aabbccddeeff", "0qjBBlHWaXgdV5q0YTYG80QZfFn"},
	{1600000000, "9850eeec191bf4ff26f99315ce43b0c8", "1hSMNbCDL149fa161JyV0ASV9ho"},
	{1663806061, "7f4a5c6d8e9f0a1b2c3d4e5f60718293", "2F6IMqQpqQ4nN5pB08wmNwEC9QZ"},
	{3990901963, "0ee942570e9438fd92b075f0056222a8", "M29GC6tQBOiXBFl51C9SwgfiaZk"},
	{1700403387, "f7b21df59cdc600e1703fc243378f4cd", "2YOjBxjtA4eetXTijM2yJg496oX"},
	{4593162488, "28f0b908985bdfe159ede1f6b0163510", "R9iFAlaC6aJdjLndbooucCEokT2"},
	{3286498370, "9b8d5f8e230f1741ff82defdaec25982", "G2j2GD10hueN2lNyHlmPbkxOdWs"},
}

func TestInterop(t *testing.T) {
	for _, tc := range interop {
		payload, err := hex.DecodeString(tc.payload)
		it.Then(t).Should(it.True(err == nil))

		uid, err := ksuid.FromParts(time.Unix(tc.unix, 0), payload)

		it.Then(t).Should(
			it.True(err == nil),
			it.Equal(uid.String(), tc.encoded),
		)

		val, err := ksuid.Parse(tc.encoded)

		it.Then(t).Should(
			it.True(err == nil),
			it.Equal(val, uid),
			it.Equal(val.Unix(), tc.unix),
			it.True(bytes.Equal(val.Payload(), payload)),
		)
	}
}

func TestInteropMs(t *testing.T) {
	for _, tc := range interop {
		payload, _ := hex.DecodeString(tc.payload)

		uid, err := ksuid.FromParts(time.Unix(tc.unix, 0), payload)
		it.Then(t).Should(it.True(err == nil))

		// same instant, truncated payload: the tick count must carry the
		// full seconds value
		ms, err := ksuid.MsFromParts(uid.Time(), payload[:ksuid.MsPayloadLen])

		it.Then(t).Should(
			it.True(err == nil),
			it.Equal(ms.Timestamp(), uint64(uid.Timestamp())*256),
			it.True(ms.Time().Equal(uid.Time())),
			it.True(bytes.Equal(ms.Payload(), payload[:ksuid.MsPayloadLen])),
		)

		// the text form of the standard variant decodes as millisecond
		// variant to a time within one second: the fifth timestamp byte
		// is read as the tick fraction
		val, err := ksuid.ParseMs(tc.encoded)

		diff := val.Time().Sub(uid.Time())
		it.Then(t).Should(
			it.True(err == nil),
			it.True(diff > -time.Second),
			it.True(diff < time.Second),
		)
	}
}
