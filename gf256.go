/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

// gf256Exp and gf256Log are the exponential and logarithm tables of GF(2^8)
// under the QR standard's primitive polynomial x^8+x^4+x^3+x^2+1 (0x11D).
// gf256Exp[255] duplicates gf256Exp[0] (both 1) so callers can index with an
// exponent sum before reducing it mod 255.
var (
	gf256Exp [256]byte
	gf256Log [256]byte
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gf256Exp[i] = byte(x)
		gf256Log[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= 0x11D
		}
	}
	gf256Exp[255] = 1
}

// newGeneratorPolynomial returns the Reed-Solomon generator polynomial with
// the given number of roots (a^0 through a^(degree-1)), stored as GF(2^8)
// logarithms in reverse order: result[0] is the constant term, result[i] is
// the coefficient of x^i, and the degree-th (leading) coefficient of 1 is
// implicit.
func newGeneratorPolynomial(degree int) []byte {
	poly := make([]byte, degree)

	for i := 1; i < degree; i++ {
		for j := i; j > 0; j-- {
			poly[j] = gf256Log[int(gf256Exp[poly[j-1]])^int(gf256Exp[(int(poly[j])+i)%255])]
		}
		poly[0] = byte((int(poly[0]) + i) % 255)
	}
	return poly
}

// divideByGenerator divides the message codeword polynomial by generator,
// returning the len(generator)-byte remainder: the Reed-Solomon error
// correction codewords for message.
func divideByGenerator(message []byte, generator []byte) []byte {
	buffer := make([]byte, len(message)+len(generator))
	copy(buffer, message)

	for i := 0; i < len(message); i++ {
		if buffer[i] == 0 {
			continue
		}
		factor := gf256Log[buffer[i]]
		for j := 1; j <= len(generator); j++ {
			buffer[i+j] ^= gf256Exp[(int(factor)+int(generator[len(generator)-j]))%255]
		}
	}

	return buffer[len(message):]
}
