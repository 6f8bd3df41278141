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

// splitBlocks partitions dataCodewords into rsBlock's two block groups,
// group-1 blocks (numDataCodewords1 bytes each) first, then group-2 blocks
// (numDataCodewords2 bytes each).
func splitBlocks(dataCodewords []byte, rsBlock RSBlock) [][]byte {
	numBlocks := rsBlock.NumBlocks1 + rsBlock.NumBlocks2
	blocks := make([][]byte, numBlocks)

	offset := 0
	for i := 0; i < rsBlock.NumBlocks1; i++ {
		blocks[i] = dataCodewords[offset : offset+rsBlock.NumDataCodewords1]
		offset += rsBlock.NumDataCodewords1
	}
	for i := 0; i < rsBlock.NumBlocks2; i++ {
		blocks[rsBlock.NumBlocks1+i] = dataCodewords[offset : offset+rsBlock.NumDataCodewords2]
		offset += rsBlock.NumDataCodewords2
	}

	return blocks
}

// interleaveBlocks writes byte i of every block, in block order, for
// increasing i, skipping positions beyond a shorter block's length. This
// produces the standard's column-major interleave for both the data
// codewords (where group-1 blocks are one byte shorter than group-2) and
// the EC codewords (where every block is the same length).
func interleaveBlocks(blocks [][]byte) []byte {
	maxLen := 0
	total := 0
	for _, b := range blocks {
		if len(b) > maxLen {
			maxLen = len(b)
		}
		total += len(b)
	}

	result := make([]byte, 0, total)
	for i := 0; i < maxLen; i++ {
		for _, b := range blocks {
			if i < len(b) {
				result = append(result, b[i])
			}
		}
	}

	return result
}

// buildFinalMessage computes the error correction codewords for every
// Reed-Solomon block of dataCodewords, then interleaves data and EC
// codewords column-major. A trailing zero byte is appended so the
// zig-zag bit placer's read pattern never indexes past the end of the slice
// for versions whose raw module count leaves 1-7 remainder bits.
func buildFinalMessage(dataCodewords []byte, version int, ecl ErrorCorrectionLevel) []byte {
	rsBlock := getRSBlock(version, ecl)
	dataBlocks := splitBlocks(dataCodewords, rsBlock)

	generator := newGeneratorPolynomial(rsBlock.NumECCodewords)
	ecBlocks := make([][]byte, len(dataBlocks))
	for i, block := range dataBlocks {
		ecBlocks[i] = divideByGenerator(block, generator)
	}

	message := append(interleaveBlocks(dataBlocks), interleaveBlocks(ecBlocks)...)
	return append(message, 0)
}
