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

// Penalty score weights for the four evaluation conditions of 7.8.3.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskConditions are the eight data mask pattern generation conditions of
// table 23; maskConditions[p](y, x) reports whether mask pattern p flips the
// module at (y, x).
var maskConditions = [8]func(y, x int) bool{
	func(y, x int) bool { return (y+x)%2 == 0 },
	func(y, x int) bool { return y%2 == 0 },
	func(y, x int) bool { return x%3 == 0 },
	func(y, x int) bool { return (y+x)%3 == 0 },
	func(y, x int) bool { return (y/2+x/3)%2 == 0 },
	func(y, x int) bool { return (y*x)%2+(y*x)%3 == 0 },
	func(y, x int) bool { return ((y*x)%2+(y*x)%3)%2 == 0 },
	func(y, x int) bool { return ((y+x)%2+(y*x)%3)%2 == 0 },
}

// applyMask returns a copy of unmasked with data mask pattern applied: every
// function-pattern cell has its function bit cleared, and every other cell
// has its color bit XORed with the mask condition's output at that
// position.
func applyMask(unmasked Matrix, pattern int) Matrix {
	size := unmasked.size()
	condition := maskConditions[pattern]
	masked := newMatrix(size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			module := unmasked.get(y, x)
			if module.isFunction() {
				masked.set(y, x, module^moduleFunctionBit)
			} else if condition(y, x) {
				masked.set(y, x, module^moduleColorBit)
			} else {
				masked.set(y, x, module)
			}
		}
	}

	return masked
}

func penaltyScoreCondition1(masked Matrix) int {
	size := masked.size()
	score := 0

	for h := 0; h < 2; h++ {
		for i := 0; i < size; i++ {
			var feature Module
			length := 0

			scoreRun := func() {
				if length >= 5 && feature != moduleBlankBit {
					score += penaltyN1 + (length - 5)
				}
			}

			for j := 0; j < size; j++ {
				var y, x int
				if h == 0 {
					y, x = j, i
				} else {
					y, x = i, j
				}
				module := masked.get(y, x)

				if module == feature {
					length++
					continue
				}

				scoreRun()
				feature = module
				length = 1
			}

			scoreRun()
		}
	}

	return score
}

func penaltyScoreCondition2(masked Matrix) int {
	size := masked.size()
	score := 0

	for i := 0; i < size-1; i++ {
		for j := 0; j < size-1; j++ {
			module := masked.get(i, j)
			if module == masked.get(i, j+1) &&
				module == masked.get(i+1, j) &&
				module == masked.get(i+1, j+1) {
				score += penaltyN2
			}
		}
	}

	return score
}

func penaltyScoreCondition3(masked Matrix) int {
	size := masked.size()
	score := 0

	for h := 0; h < 2; h++ {
		for i := 0; i < size; i++ {
			feature := 0
			length := 0

			for j := 0; j < size; j++ {
				var y, x int
				if h == 0 {
					y, x = j, i
				} else {
					y, x = i, j
				}
				module := masked.get(y, x)

				if module == moduleBlankBit {
					feature = 0
					length = 0
					continue
				}

				feature = (feature<<1 | int(module)) & 0x7FF
				length++

				if length >= 11 && (feature == 0x5D || feature == 0x5D0) {
					score += penaltyN3
				}
			}
		}
	}

	return score
}

func penaltyScoreCondition4(masked Matrix) int {
	size := masked.size()
	numTotal := size * size
	numDark := 0

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if masked.get(y, x) == moduleColorBit {
				numDark++
			}
		}
	}

	diff := numDark*2 - numTotal
	if diff < 0 {
		diff = -diff
	}
	return diff * 10 / numTotal * penaltyN4
}

func penaltyScore(masked Matrix) int {
	return penaltyScoreCondition1(masked) + penaltyScoreCondition2(masked) +
		penaltyScoreCondition3(masked) + penaltyScoreCondition4(masked)
}

// applyBestMask tries all 8 mask patterns against unmasked and returns the
// masked matrix and pattern index with the lowest combined penalty score,
// ties favoring the lowest pattern index.
func applyBestMask(unmasked Matrix) (Matrix, int) {
	var best Matrix
	bestPattern := 0
	bestScore := -1

	for pattern := 0; pattern < 8; pattern++ {
		masked := applyMask(unmasked, pattern)
		score := penaltyScore(masked)
		if bestScore == -1 || score < bestScore {
			bestScore = score
			bestPattern = pattern
			best = masked
		}
	}

	return best, bestPattern
}
