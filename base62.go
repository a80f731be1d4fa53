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

import "fmt"

// the interop alphabet: digits, upper case, lower case, in byte order
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// decoding table, 0xff marks bytes outside the alphabet
var detab [256]byte

func init() {
	for i := range detab {
		detab[i] = 0xff
	}
	for i := 0; i < len(alphabet); i++ {
		detab[alphabet[i]] = byte(i)
	}
}

// EncodeBase62 treats src as one big-endian unsigned integer of any
// width and encodes it to the shortest base62 text, zero encodes to "0".
// The codec itself puts no bound on the input width, fixed-width padding
// is the identifier's concern.
func EncodeBase62(src []byte) string {
	quo := make([]byte, len(src))
	copy(quo, src)

	out := make([]byte, 0, (len(src)*8)/5)

	for {
		i := 0
		for i < len(quo) && quo[i] == 0 {
			i++
		}
		quo = quo[i:]
		if len(quo) == 0 {
			break
		}

		// one long-division step: quo = quo / 62, rem = quo % 62
		rem := 0
		for j, d := range quo {
			v := rem<<8 | int(d)
			quo[j] = byte(v / 62)
			rem = v % 62
		}
		out = append(out, alphabet[rem])
	}

	if len(out) == 0 {
		return "0"
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// DecodeBase62 is inverse to EncodeBase62. It accumulates the text into
// a big-endian unsigned integer of whatever width the value requires,
// the shortest form, so the zero value decodes to an empty slice. Empty
// text or a character outside the alphabet fails with ErrFormat.
func DecodeBase62(val string) ([]byte, error) {
	if len(val) == 0 {
		return nil, fmt.Errorf("%w: empty base62 text", ErrFormat)
	}

	num := make([]byte, 0, (len(val)*6)/8+1)
	for i := 0; i < len(val); i++ {
		v := detab[val[i]]
		if v == 0xff {
			return nil, fmt.Errorf("%w: invalid base62 character %q", ErrFormat, val[i])
		}

		// num = num * 62 + v
		carry := int(v)
		for j := len(num) - 1; j >= 0; j-- {
			carry += int(num[j]) * 62
			num[j] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			num = append(num, 0)
			copy(num[1:], num)
			num[0] = byte(carry)
			carry >>= 8
		}
	}
	return num, nil
}
