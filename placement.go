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

// alignmentPatternCoordinates holds, per version (1-40), the alignment
// pattern center coordinates shared by both axes. Version 1 has none.
var alignmentPatternCoordinates = [40][]int{
	{},
	{6, 18},
	{6, 22},
	{6, 26},
	{6, 30},
	{6, 34},
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50},
	{6, 30, 54},
	{6, 32, 58},
	{6, 34, 62},
	{6, 26, 46, 66},
	{6, 26, 48, 70},
	{6, 26, 50, 74},
	{6, 30, 54, 78},
	{6, 30, 56, 82},
	{6, 30, 58, 86},
	{6, 34, 62, 90},
	{6, 28, 50, 72, 94},
	{6, 26, 50, 74, 98},
	{6, 30, 54, 78, 102},
	{6, 28, 54, 80, 106},
	{6, 32, 58, 84, 110},
	{6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122},
	{6, 30, 54, 78, 102, 126},
	{6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134},
	{6, 34, 60, 86, 112, 138},
	{6, 30, 58, 86, 114, 142},
	{6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150},
	{6, 24, 50, 76, 102, 128, 154},
	{6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166},
	{6, 30, 58, 86, 114, 142, 170},
}

// symbolSize returns the number of modules per side for a version.
func symbolSize(version int) int {
	return 17 + 4*version
}

func placeHorizontalLine(m Matrix, y, x, length int, value Module) {
	for i := 0; i < length; i++ {
		m.set(y, x+i, value)
	}
}

func placeVerticalLine(m Matrix, y, x, length int, value Module) {
	for i := 0; i < length; i++ {
		m.set(y+i, x, value)
	}
}

func placeRectangle(m Matrix, y, x, height, width int, value Module) {
	placeHorizontalLine(m, y, x, width-1, value)
	placeVerticalLine(m, y, x+width-1, height-1, value)
	placeHorizontalLine(m, y+height-1, x+1, width-1, value)
	placeVerticalLine(m, y+1, x, height-1, value)
}

func placeFilledRectangle(m Matrix, y, x, height, width int, value Module) {
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			m.set(y+i, x+j, value)
		}
	}
}

func placeFinderPattern(m Matrix, y, x int) {
	placeFilledRectangle(m, y, x, 7, 7, moduleDark)
	placeRectangle(m, y+1, x+1, 5, 5, moduleLight)
}

func placeFinderPatterns(m Matrix) {
	size := m.size()
	placeFinderPattern(m, 0, 0)
	placeFinderPattern(m, 0, size-7)
	placeFinderPattern(m, size-7, 0)
}

func placeSeparators(m Matrix) {
	size := m.size()
	placeVerticalLine(m, 0, 7, 7, moduleLight)
	placeHorizontalLine(m, 7, 0, 8, moduleLight)
	placeVerticalLine(m, 0, size-8, 7, moduleLight)
	placeHorizontalLine(m, 7, size-8, 8, moduleLight)
	placeHorizontalLine(m, size-8, 0, 8, moduleLight)
	placeVerticalLine(m, size-7, 7, 7, moduleLight)
}

func placeTimingPatterns(m Matrix) {
	size := m.size()
	value := moduleDark
	for i := 8; i < size-8; i++ {
		m.set(6, i, value)
		m.set(i, 6, value)
		value ^= moduleColorBit
	}
}

func placeAlignmentPattern(m Matrix, y, x int) {
	placeFilledRectangle(m, y, x, 5, 5, moduleDark)
	placeRectangle(m, y+1, x+1, 3, 3, moduleLight)
}

func placeAlignmentPatterns(m Matrix, version int) {
	coords := alignmentPatternCoordinates[version-1]
	n := len(coords)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if (0 < i && i < n-1) || (0 < j && j < n-1) || (i == n-1 && j == n-1) {
				placeAlignmentPattern(m, coords[i]-2, coords[j]-2)
			}
		}
	}
}

func placeDarkModule(m Matrix, version int) {
	m.set(4*version+9, 8, moduleDark)
}

func reserveFormatInformation(m Matrix) {
	size := m.size()
	placeVerticalLine(m, 0, 8, 9, moduleBlank)
	placeHorizontalLine(m, 8, 0, 9, moduleBlank)
	placeHorizontalLine(m, 8, size-8, 8, moduleBlank)
	placeVerticalLine(m, size-8, 8, 8, moduleBlank)
}

func reserveVersionInformation(m Matrix, version int) {
	if version < 7 {
		return
	}
	size := m.size()
	placeFilledRectangle(m, 0, size-11, 6, 3, moduleBlank)
	placeFilledRectangle(m, size-11, 0, 3, 6, moduleBlank)
}

func placeFunctionPatterns(m Matrix, version int) {
	reserveFormatInformation(m)
	reserveVersionInformation(m, version)
	placeFinderPatterns(m)
	placeSeparators(m)
	placeTimingPatterns(m)
	placeAlignmentPatterns(m, version)
	placeDarkModule(m, version)
}

func getCodewordBit(codewords []byte, index int) Module {
	return Module(codewords[index/8]>>uint(7-index%8)) & 1
}

// placeCodewordModules streams codewords' bits, MSB first, into every
// module the function patterns left at zero, following the standard's
// two-column-wide zig-zag sweep from the bottom-right corner, skipping the
// vertical timing column at x=6.
func placeCodewordModules(m Matrix, codewords []byte) {
	size := m.size()
	x := size - 1
	y := size - 1
	vy := -1
	index := 0

	for i := 0; i < size/2; i++ {
		for j := 0; j < size; j++ {
			for k := 0; k < 2; k++ {
				cx := x - k
				cy := y + vy*j
				if m.get(cy, cx) == 0 {
					m.set(cy, cx, getCodewordBit(codewords, index))
					index++
				}
			}
		}

		if x == 8 {
			x -= 3
		} else {
			x -= 2
		}
		y ^= size - 1
		vy = -vy
	}
}

// placeModules lays out the complete, unmasked matrix for version: function
// patterns first, then the interleaved codeword bitstream zig-zagged into
// every remaining cell.
func placeModules(version int, codewords []byte) Matrix {
	m := newMatrix(symbolSize(version))
	placeFunctionPatterns(m, version)
	placeCodewordModules(m, codewords)
	return m
}
