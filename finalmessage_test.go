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

func TestSplitBlocksSingleGroup(t *testing.T) {
	data := make([]byte, 19)
	for i := range data {
		data[i] = byte(i)
	}
	blocks := splitBlocks(data, getRSBlock(1, Low))
	assert.Len(t, blocks, 1)
	assert.Equal(t, data, blocks[0])
}

func TestSplitBlocksTwoGroups(t *testing.T) {
	// Version 5, Quartile: {2, 15, 2, 18} -> group 1 is two 15-byte
	// blocks, group 2 is two 16-byte blocks.
	rsBlock := getRSBlock(5, Quartile)
	total := rsBlock.NumBlocks1*rsBlock.NumDataCodewords1 + rsBlock.NumBlocks2*rsBlock.NumDataCodewords2
	data := make([]byte, total)
	for i := range data {
		data[i] = byte(i)
	}

	blocks := splitBlocks(data, rsBlock)
	assert.Len(t, blocks, rsBlock.NumBlocks1+rsBlock.NumBlocks2)
	for i := 0; i < rsBlock.NumBlocks1; i++ {
		assert.Len(t, blocks[i], rsBlock.NumDataCodewords1)
	}
	for i := rsBlock.NumBlocks1; i < len(blocks); i++ {
		assert.Len(t, blocks[i], rsBlock.NumDataCodewords2)
	}
}

func TestInterleaveBlocksEqualLength(t *testing.T) {
	blocks := [][]byte{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Equal(t, []byte{1, 4, 7, 2, 5, 8, 3, 6, 9}, interleaveBlocks(blocks))
}

func TestInterleaveBlocksUnequalLength(t *testing.T) {
	// Group-1 blocks are always one byte shorter than group-2 blocks; the
	// last column only contributes the longer blocks' trailing byte.
	blocks := [][]byte{{1, 2}, {3, 4}, {5, 6, 7}}
	assert.Equal(t, []byte{1, 3, 5, 2, 4, 6, 7}, interleaveBlocks(blocks))
}

func TestBuildFinalMessageLength(t *testing.T) {
	data := make([]byte, numDataCodewords(1, Low))
	message := buildFinalMessage(data, 1, Low)

	rsBlock := getRSBlock(1, Low)
	numBlocks := rsBlock.NumBlocks1 + rsBlock.NumBlocks2
	wantLen := len(data) + numBlocks*rsBlock.NumECCodewords + 1 // +1 trailing pad byte.
	assert.Len(t, message, wantLen)
}

// TestBuildFinalMessageBlocksAreValidCodewords checks that every individual
// Reed-Solomon block of the final message (data codewords plus that block's
// own error correction codewords, read back out of buildFinalMessage's
// interleaved output) has every root of the block's generator polynomial as
// a root, confirming buildFinalMessage wires splitBlocks,
// newGeneratorPolynomial, divideByGenerator and interleaveBlocks together
// correctly end to end.
func TestBuildFinalMessageBlocksAreValidCodewords(t *testing.T) {
	version, ecl := 5, Quartile
	rsBlock := getRSBlock(version, ecl)

	data := make([]byte, numDataCodewords(version, ecl))
	for i := range data {
		data[i] = byte(i * 7)
	}

	message := buildFinalMessage(data, version, ecl)
	numBlocks := rsBlock.NumBlocks1 + rsBlock.NumBlocks2
	ecStart := len(data)

	// De-interleave each block's data and EC codewords back out of message.
	for b := 0; b < numBlocks; b++ {
		var codeword []byte
		for i := 0; i < rsBlock.NumDataCodewords1; i++ {
			codeword = append(codeword, message[i*numBlocks+b])
		}
		if b >= rsBlock.NumBlocks1 {
			codeword = append(codeword, message[rsBlock.NumDataCodewords1*numBlocks+b-rsBlock.NumBlocks1])
		}
		for i := 0; i < rsBlock.NumECCodewords; i++ {
			codeword = append(codeword, message[ecStart+i*numBlocks+b])
		}
		for i := 0; i < rsBlock.NumECCodewords; i++ {
			assert.Equal(t, byte(0), evaluatePoly(codeword, gf256Exp[i]))
		}
	}
}
