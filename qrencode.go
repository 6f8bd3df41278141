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
	"fmt"
	"strings"
)

// MaxDataLength is the largest payload Encode accepts.
const MaxDataLength = 7089

// QRCode is the finished symbol: a masked Matrix plus the parameters that
// produced it.
type QRCode struct {
	Version              int
	Size                 int
	ErrorCorrectionLevel ErrorCorrectionLevel
	Mask                 int
	Matrix               Matrix
}

// deriveSegments partitions data the way Encode's optimize option asks for,
// under versionClass vc.
func deriveSegments(data []byte, useKanjiMode, optimize bool, vc VersionClass) []Segment {
	if optimize {
		return Analyze(data, useKanjiMode, vc)
	}
	return createModeSegment(data, useKanjiMode)
}

// determineVersion scans the version classes Small, then Medium, then
// Large, picking the first class whose recommended version fits
// within [minVersion, maxVersion]. A minVersion above the class's own
// recommendation (the /V override) forces that larger version, provided the
// payload still fits in it.
func determineVersion(data []byte, ecl ErrorCorrectionLevel, useKanjiMode, optimize bool, minVersion, maxVersion int) ([]Segment, int, error) {
	for _, vc := range [3]VersionClass{Small, MediumClass, Large} {
		start, end := versionClassRange(vc)
		if end < minVersion || start > maxVersion {
			continue
		}

		segments := deriveSegments(data, useKanjiMode, optimize, vc)
		recommended := recommendVersion(segments, ecl, vc)
		if recommended == -1 {
			continue
		}

		version := recommended
		if version < minVersion {
			version = minVersion
		}
		if version > maxVersion {
			return nil, 0, fmt.Errorf("qrcodegen: data does not fit in version %d or smaller", maxVersion)
		}

		forcedClass := versionClassOf(version)
		if forcedClass != vc {
			segments = deriveSegments(data, useKanjiMode, optimize, forcedClass)
		}
		if recommendVersion(segments, ecl, forcedClass) > version {
			return nil, 0, fmt.Errorf("qrcodegen: data does not fit in version %d", version)
		}

		return segments, version, nil
	}

	return nil, 0, fmt.Errorf("qrcodegen: data too long for any version")
}

// boostLevel raises ecl as high as fits segments in version, when enabled.
func boostLevel(segments []Segment, vc VersionClass, version int, ecl ErrorCorrectionLevel, enabled bool) ErrorCorrectionLevel {
	if !enabled {
		return ecl
	}
	numBits := totalEncodedBits(segments, vc)
	best := ecl
	for e := Medium; e <= High; e++ {
		if numBits <= numDataCodewords(version, e)*8 {
			best = e
		}
	}
	return best
}

// Encode builds a complete QR symbol for data at error correction level
// ecl, composing data analysis, data encoding, Reed-Solomon error
// correction, final-message interleaving, module placement, data masking,
// and format/version information, in that order. data must be at most
// MaxDataLength bytes.
func Encode(data []byte, ecl ErrorCorrectionLevel, opts ...Option) (*QRCode, error) {
	if len(data) > MaxDataLength {
		return nil, fmt.Errorf("qrcodegen: data length %d exceeds maximum of %d", len(data), MaxDataLength)
	}

	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.minVersion < 1 || o.maxVersion > 40 || o.minVersion > o.maxVersion {
		return nil, fmt.Errorf("qrcodegen: invalid version range [%d, %d]", o.minVersion, o.maxVersion)
	}
	if o.mask < -1 || o.mask > 7 {
		return nil, fmt.Errorf("qrcodegen: mask value %d out of range", o.mask)
	}

	segments, version, err := determineVersion(data, ecl, o.useKanjiMode, o.optimize, o.minVersion, o.maxVersion)
	if err != nil {
		return nil, err
	}

	vc := versionClassOf(version)
	ecl = boostLevel(segments, vc, version, ecl, o.boostECL)

	dataCodewords := encodeDataCodewords(segments, data, numDataCodewords(version, ecl), vc)
	finalMessage := buildFinalMessage(dataCodewords, version, ecl)
	unmasked := placeModules(version, finalMessage)

	var masked Matrix
	var maskPattern int
	if o.mask == -1 {
		masked, maskPattern = applyBestMask(unmasked)
	} else {
		maskPattern = o.mask
		masked = applyMask(unmasked, maskPattern)
	}

	drawFormatInfo(masked, ecl, maskPattern)
	drawVersionInfo(masked, version)

	return &QRCode{
		Version:              version,
		Size:                 masked.size(),
		ErrorCorrectionLevel: ecl,
		Mask:                 maskPattern,
		Matrix:               masked,
	}, nil
}

// FlattenedBits renders the symbol as the row-major '0'/'1' string the CLI
// writes to standard output: one character per module, light modules '0',
// dark modules '1', no separators.
func (q *QRCode) FlattenedBits() string {
	var sb strings.Builder
	sb.Grow(q.Size * q.Size)
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			if q.Matrix.get(y, x).IsDark() {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// String renders a human-readable block-character rendition of the symbol
// for debugging.
func (q *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "QRCode\n\tVersion: %d\n\tSize: %d\n\tErrorCorrectionLevel: %d\n\tMask: %d\n\tModules\n",
		q.Version, q.Size, q.ErrorCorrectionLevel, q.Mask)
	for y := 0; y < q.Size; y++ {
		sb.WriteString("\t\t")
		for x := 0; x < q.Size; x++ {
			if q.Matrix.get(y, x).IsDark() {
				sb.WriteString("█")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
