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

// selectMode scans data end to end and returns the single mode that covers
// all of it: Numeric if every byte is a digit, else Alphanumeric if every
// byte is alphanumeric, else Kanji if useKanjiMode is set and every byte pair
// is Shift_JIS Kanji, else Byte.
func selectMode(data []byte, useKanjiMode bool) Mode {
	i := 0
	for i < len(data) && isNumeric(data[i]) {
		i++
	}
	if i >= len(data) {
		return Numeric
	}

	for i < len(data) && isAlphanumeric(data[i]) {
		i++
	}
	if i >= len(data) {
		return Alphanumeric
	}

	if useKanjiMode && i == 0 && len(data)%2 == 0 {
		for i < len(data) && isShiftJISKanji(data[i], data[i+1]) {
			i += 2
		}
		if i >= len(data) {
			return Kanji
		}
	}

	return Byte
}

// createModeSegment builds the single-segment result used both as the
// non-optimized encoding path and as Analyze's shortcut for short inputs.
func createModeSegment(data []byte, useKanjiMode bool) []Segment {
	if len(data) == 0 {
		return nil
	}
	return []Segment{{Mode: selectMode(data, useKanjiMode), Length: len(data)}}
}

// Lookahead depths and run-length switch thresholds from Annex J, indexed
// [Small, Medium, Large].
var (
	initialNumericByteLookahead  = [3]int{4, 4, 5}
	initialNumericAlnumLookahead = [3]int{7, 8, 9}
	initialAlnumLookahead        = [3]int{6, 7, 8}
	initialKanjiLookahead        = [3]int{5, 5, 6}
	byteToKanjiRunLength         = [3]int{18, 24, 26} // {9, 12, 13} Kanji characters, in bytes.
	byteToAlnumRunLength         = [3]int{11, 15, 16}
	byteToNum1RunLength          = [3]int{6, 7, 8}
	byteToNum2RunLength          = [3]int{6, 8, 9}
	alnumToNumRunLength          = [3]int{13, 15, 17}
)

// selectInitialMode picks the mode the mixed-mode state machine starts in,
// using a stricter lookahead than ordinary transitions require.
func selectInitialMode(data []byte, useKanjiMode bool, vc VersionClass) Mode {
	if isNumeric(data[0]) {
		lookahead := initialNumericByteLookahead[vc]
		for i := 1; i < lookahead; i++ {
			if isNumeric(data[i]) {
				continue
			} else if isExclusive8BitByteSubset(data[i]) {
				return Byte
			} else {
				break
			}
		}

		lookahead = initialNumericAlnumLookahead[vc]
		for i := 1; i < lookahead; i++ {
			if isNumeric(data[i]) {
				continue
			} else if isAlphanumeric(data[i]) {
				return Alphanumeric
			} else {
				break
			}
		}

		return Numeric
	}

	if isAlphanumeric(data[0]) {
		lookahead := initialAlnumLookahead[vc]
		for i := 1; i < lookahead; i++ {
			if !isAlphanumeric(data[i]) {
				return Byte
			}
		}
		return Alphanumeric
	}

	if useKanjiMode && isShiftJISKanji(data[0], data[1]) {
		if !isExclusive8BitByteSubset(data[2]) {
			return Kanji
		}

		lookahead := initialKanjiLookahead[vc] * 2
		for i := 0; i < lookahead; i += 2 {
			if !isShiftJISKanji(data[3+i], data[4+i]) {
				return Kanji
			}
		}
	}

	return Byte
}

// recommendNextMode returns the mode the next character would naturally use,
// without regard to switch-cost thresholds.
func recommendNextMode(data []byte, useKanjiMode bool) Mode {
	if isNumeric(data[0]) {
		return Numeric
	}
	if isAlphanumeric(data[0]) {
		return Alphanumeric
	}
	if useKanjiMode && len(data) >= 2 && isShiftJISKanji(data[0], data[1]) {
		return Kanji
	}
	return Byte
}

func charLen(m Mode) int {
	if m.indicator == Kanji.indicator {
		return 2
	}
	return 1
}

// Analyze partitions data into segments that minimize the encoded bit
// length, implementing Annex J of JIS X 0510:2018. Short inputs (length < 9,
// or < 15 when useKanjiMode is set) take a single-segment shortcut; longer
// inputs run a greedy state machine whose switch-cost thresholds are sized by
// versionClass.
func Analyze(data []byte, useKanjiMode bool, vc VersionClass) []Segment {
	if len(data) < 9 || (useKanjiMode && len(data) < 15) {
		return createModeSegment(data, useKanjiMode)
	}

	var segments []Segment

	kanjiRunLength := 0
	alnumRunLength := 0
	numRunLength := 0

	mode := selectInitialMode(data, useKanjiMode, vc)
	chrlen := charLen(mode)

	segmentMode := mode
	segmentLength := chrlen

	for i := chrlen; i < len(data); i += chrlen {
		mode = recommendNextMode(data[i:], useKanjiMode)
		chrlen = charLen(mode)

		commit := false

		switch {
		case segmentMode.indicator == Byte.indicator && mode.indicator == Kanji.indicator:
			segmentLength += alnumRunLength + numRunLength
			kanjiRunLength += chrlen
			alnumRunLength = 0
			numRunLength = 0
			if kanjiRunLength >= byteToKanjiRunLength[vc] {
				commit = true
			}

		case segmentMode.indicator == Byte.indicator && mode.indicator == Alphanumeric.indicator:
			segmentLength += kanjiRunLength + numRunLength
			kanjiRunLength = 0
			alnumRunLength += chrlen
			numRunLength = 0
			if alnumRunLength >= byteToAlnumRunLength[vc] {
				commit = true
			}

		case segmentMode.indicator == Byte.indicator && mode.indicator == Numeric.indicator:
			segmentLength += kanjiRunLength + alnumRunLength
			kanjiRunLength = 0
			alnumRunLength = 0
			numRunLength += chrlen
			if numRunLength >= byteToNum2RunLength[vc] {
				commit = true
			} else if numRunLength >= byteToNum1RunLength[vc] {
				// Between the two thresholds the switch is deferred unless
				// the following character is in the exclusive alphanumeric
				// subset, or there is no following character.
				if i >= len(data)-1 || isExclusiveAlphanumericSubset(data[i+1]) {
					commit = true
				}
			}

		case segmentMode.indicator == Alphanumeric.indicator && mode.indicator == Numeric.indicator:
			numRunLength += chrlen
			if numRunLength >= alnumToNumRunLength[vc] {
				commit = true
			}

		default:
			segmentLength += kanjiRunLength + alnumRunLength + numRunLength
			kanjiRunLength = 0
			alnumRunLength = 0
			numRunLength = 0
			if segmentMode.indicator == mode.indicator {
				segmentLength += chrlen
				continue
			}
			commit = true
		}

		if !commit {
			continue
		}

		segments = append(segments, Segment{Mode: segmentMode, Length: segmentLength})

		segmentMode = mode
		segmentLength = kanjiRunLength + alnumRunLength + numRunLength
		if segmentLength == 0 {
			segmentLength = chrlen
		}

		kanjiRunLength = 0
		alnumRunLength = 0
		numRunLength = 0
	}

	segmentLength += kanjiRunLength + alnumRunLength + numRunLength
	segments = append(segments, Segment{Mode: segmentMode, Length: segmentLength})

	return segments
}
