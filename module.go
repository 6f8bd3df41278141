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

// Module is one cell of a QR symbol matrix. Bit 0 carries color (0 = light,
// 1 = dark); bit 1 marks the cell as belonging to a function pattern (finder,
// separator, timing, alignment, dark module, or reserved format/version
// area) rather than encoded data; bit 2 marks a function cell whose value is
// not yet known (reserved format/version bits, prior to BCH computation).
type Module uint8

const (
	moduleColorBit    Module = 1 << 0
	moduleFunctionBit Module = 1 << 1
	moduleBlankBit    Module = 1 << 2
)

// Combined values the function-pattern placement code writes into the matrix.
const (
	moduleLight Module = moduleFunctionBit
	moduleDark  Module = moduleFunctionBit | moduleColorBit
	moduleBlank Module = moduleFunctionBit | moduleBlankBit
)

// IsDark reports whether the module renders as a dark cell. It is only
// meaningful after masking has cleared the function bit from non-blank
// function cells; callers inspecting a matrix mid-construction should treat
// this as "was the last color bit written a 1".
func (m Module) IsDark() bool {
	return m&moduleColorBit != 0
}

// isFunction reports whether m belongs to a function pattern.
func (m Module) isFunction() bool {
	return m&moduleFunctionBit != 0
}

// isBlank reports whether m is a not-yet-resolved reserved cell.
func (m Module) isBlank() bool {
	return m&moduleBlankBit != 0
}

// Matrix is a size x size grid of Module values, indexed [y][x].
type Matrix [][]Module

// newMatrix allocates a zeroed size x size Matrix.
func newMatrix(size int) Matrix {
	m := make(Matrix, size)
	rows := make([]Module, size*size)
	for y := range m {
		m[y] = rows[y*size : (y+1)*size]
	}
	return m
}

func (m Matrix) size() int {
	return len(m)
}

func (m Matrix) get(y, x int) Module {
	return m[y][x]
}

func (m Matrix) set(y, x int, value Module) {
	m[y][x] = value
}
