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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestApplyMaskIsAnInvolution checks that masking twice with the same
// pattern reproduces the original color bits on data modules: XORing a
// condition's output onto a module twice is the identity. Function cells are
// excluded because the first application strips their function marker, after
// which a second pass would treat them as data.
func TestApplyMaskIsAnInvolution(t *testing.T) {
	unmasked := placeModules(2, make([]byte, numRawDataModules(2, Low)+1))

	for pattern := 0; pattern < 8; pattern++ {
		once := applyMask(unmasked, pattern)
		twice := applyMask(once, pattern)

		size := unmasked.size()
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if unmasked.get(y, x).isFunction() {
					continue
				}
				assert.Equal(t, unmasked.get(y, x).IsDark(), twice.get(y, x).IsDark(), "pattern=%d y=%d x=%d", pattern, y, x)
			}
		}
	}
}

// TestApplyMaskClearsFunctionBit checks that every function-pattern cell
// loses its function marker after masking, regardless of pattern, since
// masking is the step that commits the matrix to its final, readable form.
func TestApplyMaskClearsFunctionBit(t *testing.T) {
	unmasked := placeModules(1, make([]byte, numRawDataModules(1, Low)+1))
	masked := applyMask(unmasked, 0)

	size := masked.size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			assert.False(t, masked.get(y, x).isFunction(), "y=%d x=%d", y, x)
		}
	}
}

func TestApplyBestMaskPicksLowestScoringPattern(t *testing.T) {
	unmasked := placeModules(3, make([]byte, numRawDataModules(3, Medium)+1))

	_, bestPattern := applyBestMask(unmasked)

	bestScore := penaltyScore(applyMask(unmasked, bestPattern))
	for pattern := 0; pattern < 8; pattern++ {
		score := penaltyScore(applyMask(unmasked, pattern))
		assert.LessOrEqual(t, bestScore, score, "pattern=%d", pattern)
	}
}

func TestPenaltyScoreCondition4WithinExpectedBounds(t *testing.T) {
	unmasked := placeModules(1, make([]byte, numRawDataModules(1, Low)+1))
	masked := applyMask(unmasked, 0)
	score := penaltyScoreCondition4(masked)
	assert.GreaterOrEqual(t, score, 0)
}
