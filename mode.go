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

// Mode represents the mode (numeric, alphanumeric, byte, or kanji) of a
// segment. Each mode carries the 4-bit indicator value the standard prefixes
// every segment with; character-count indicator widths (table 3 of the
// standard) live in encoding.go's numBitsCharCountIndicator, indexed via
// charCountBitsIndex.
type Mode struct {
	indicator int8
}

// Mode values for a segment, keyed by the standard's 4-bit mode indicator.
var (
	Numeric      = Mode{0x1}
	Alphanumeric = Mode{0x2}
	Byte         = Mode{0x4}
	Kanji        = Mode{0x8}
)

// charCountBitsIndex maps a mode's 4-bit indicator {1,2,4,8} to the column
// index {0,1,2,3} used by numBitsCharCountIndicator-shaped tables.
func charCountBitsIndex(m Mode) int {
	switch m.indicator {
	case Numeric.indicator:
		return 0
	case Alphanumeric.indicator:
		return 1
	case Byte.indicator:
		return 2
	case Kanji.indicator:
		return 3
	default:
		panic("unknown mode")
	}
}
