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

import "golang.org/x/text/encoding/japanese"

// alphanumericTable maps a byte to its alphanumeric code (0-44), or -1 if the
// byte is outside the 45-character alphanumeric subset. Only entries for
// bytes <= 'Z' are meaningful; getAlphanumericCode guards the rest.
var alphanumericTable = [...]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
}

// getAlphanumericCode returns b's code in the 45-character alphanumeric
// subset, or -1 if b is not a member.
func getAlphanumericCode(b byte) int {
	if b > 'Z' {
		return -1
	}
	return alphanumericTable[b]
}

// isNumeric reports whether b is an ASCII digit.
func isNumeric(b byte) bool {
	return '0' <= b && b <= '9'
}

// isAlphanumeric reports whether b is a member of the 45-character
// alphanumeric subset.
func isAlphanumeric(b byte) bool {
	return getAlphanumericCode(b) != -1
}

// isShiftJISKanji reports whether the byte pair (b1, b2) is a valid Shift_JIS
// Kanji double-byte character.
func isShiftJISKanji(b1, b2 byte) bool {
	return 0x81 <= b1 && (b1 <= 0x9F || 0xE0 <= b1) && b1 <= 0xEB &&
		0x40 <= b2 && b2 != 0x7F && b2 <= 0xFC && (b1 < 0xEB || b2 <= 0xBF)
}

// isExclusiveAlphanumericSubset reports whether b is alphanumeric but not
// numeric.
func isExclusiveAlphanumericSubset(b byte) bool {
	return isAlphanumeric(b) && !isNumeric(b)
}

// isExclusive8BitByteSubset reports whether b must force Byte mode: ASCII
// bytes outside the alphanumeric subset, or bytes that fall in the gap
// between the two Shift_JIS Kanji lead-byte ranges.
func isExclusive8BitByteSubset(b byte) bool {
	return (b < 0x80 && !isAlphanumeric(b)) || (0x9F < b && b < 0xE0)
}

// EncodeShiftJIS converts a UTF-8 string containing Japanese text into raw
// Shift_JIS bytes suitable for Kanji mode (WithKanjiMode, Analyze), using
// golang.org/x/text's Shift_JIS encoder. Every returned byte pair satisfies
// isShiftJISKanji, provided the source text is itself representable in the
// JIS X 0208 Kanji set; characters outside that set produce an error.
func EncodeShiftJIS(text string) ([]byte, error) {
	return japanese.ShiftJIS.NewEncoder().Bytes([]byte(text))
}
