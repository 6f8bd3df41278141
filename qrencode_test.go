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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeBasicNumeric(t *testing.T) {
	qr, err := Encode([]byte("01234567"), Low)
	assert.NoError(t, err)
	assert.Equal(t, 1, qr.Version)
	assert.Equal(t, symbolSize(1), qr.Size)
	assert.Len(t, qr.FlattenedBits(), qr.Size*qr.Size)
}

func TestEncodeSizeMatchesVersion(t *testing.T) {
	qr, err := Encode([]byte("HELLO, WORLD!"), Medium)
	assert.NoError(t, err)
	assert.Equal(t, symbolSize(qr.Version), qr.Size)
}

func TestEncodeRejectsOversizedData(t *testing.T) {
	data := make([]byte, MaxDataLength+1)
	_, err := Encode(data, Low)
	assert.Error(t, err)
}

func TestEncodeWithVersionForcesExactVersion(t *testing.T) {
	qr, err := Encode([]byte("hello"), Low, WithVersion(5))
	assert.NoError(t, err)
	assert.Equal(t, 5, qr.Version)
}

func TestEncodeWithVersionTooSmallFails(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte('0' + i%10)
	}
	_, err := Encode(data, High, WithVersion(1))
	assert.Error(t, err)
}

func TestEncodeWithMaskForcesPattern(t *testing.T) {
	qr, err := Encode([]byte("test payload"), Quartile, WithMask(4))
	assert.NoError(t, err)
	assert.Equal(t, 4, qr.Mask)
}

func TestEncodeRejectsInvalidMask(t *testing.T) {
	_, err := Encode([]byte("x"), Low, WithMask(8))
	assert.Error(t, err)
}

func TestEncodeRejectsInvalidVersionRange(t *testing.T) {
	_, err := Encode([]byte("x"), Low, WithMinVersion(10), WithMaxVersion(5))
	assert.Error(t, err)
}

func TestEncodeWithKanjiMode(t *testing.T) {
	data, err := EncodeShiftJIS("こんにちは")
	assert.NoError(t, err)

	qr, err := Encode(data, Medium, WithKanjiMode(true))
	assert.NoError(t, err)
	assert.NotNil(t, qr)
}

func TestEncodeWithOptimizeProducesValidSymbol(t *testing.T) {
	data := []byte("12345FGHIjkl0123456789ABCDEFGHIJKLMNOP")
	qr, err := Encode(data, Low, WithOptimize(true))
	assert.NoError(t, err)
	assert.NotNil(t, qr)
}

func TestEncodeWithBoostECLRaisesLevelWhenRoom(t *testing.T) {
	qr, err := Encode([]byte("small"), Low, WithBoostECL(true), WithVersion(10))
	assert.NoError(t, err)
	assert.Greater(t, qr.ErrorCorrectionLevel, Low)
}

func TestEncodeWithoutBoostECLKeepsRequestedLevel(t *testing.T) {
	qr, err := Encode([]byte("small"), Low, WithVersion(10))
	assert.NoError(t, err)
	assert.Equal(t, Low, qr.ErrorCorrectionLevel)
}

func TestFlattenedBitsOnlyContainsZeroOrOne(t *testing.T) {
	qr, err := Encode([]byte("0123456789"), High)
	assert.NoError(t, err)
	assert.Equal(t, len(qr.FlattenedBits()), strings.Count(qr.FlattenedBits(), "0")+strings.Count(qr.FlattenedBits(), "1"))
}

func TestQRCodeStringIncludesVersionAndSize(t *testing.T) {
	qr, err := Encode([]byte("abc"), Low)
	assert.NoError(t, err)
	s := qr.String()
	assert.Contains(t, s, "Version: 1")
	assert.Contains(t, s, "Size: 21")
}

// TestEncodeVersion7PlusIncludesVersionInformation checks that requesting a
// version of 7 or higher produces a symbol whose two version-information
// blocks agree, confirming drawVersionInfo actually ran.
func TestEncodeVersion7PlusIncludesVersionInformation(t *testing.T) {
	data := make([]byte, 50)
	for i := range data {
		data[i] = byte('0' + i%10)
	}
	qr, err := Encode(data, Low, WithVersion(7))
	assert.NoError(t, err)

	size := qr.Size
	for i := 0; i < 18; i++ {
		a := size - 11 + i%3
		b := i / 3
		assert.Equal(t, qr.Matrix.get(b, a).IsDark(), qr.Matrix.get(a, b).IsDark(), "bit %d", i)
	}
}
