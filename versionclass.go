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

// VersionClass partitions the 40 QR versions into the three ranges the
// standard uses to size character-count indicators and, in Annex J, the
// segmentation run-length thresholds.
type VersionClass int8

// VersionClass values.
const (
	Small       VersionClass = iota // Versions 1-9.
	MediumClass                     // Versions 10-26.
	Large                           // Versions 27-40.
)

// versionClassOf returns the VersionClass containing the given version
// number.
func versionClassOf(version int) VersionClass {
	switch {
	case version <= 9:
		return Small
	case version <= 26:
		return MediumClass
	default:
		return Large
	}
}

// versionClassRange returns the inclusive [start, end] version range spanned
// by a VersionClass.
func versionClassRange(vc VersionClass) (start, end int) {
	switch vc {
	case Small:
		return 1, 9
	case MediumClass:
		return 10, 26
	default:
		return 27, 40
	}
}
