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

// ErrorCorrectionLevel represents the error correction level of the QR code.
type ErrorCorrectionLevel int8

// ErrorCorrectionLevel values, ordinal 0..3 in the order the standard defines
// them.
const (
	Low      ErrorCorrectionLevel = iota // Recovers ~7% of data.
	Medium                               // Recovers ~15% of data.
	Quartile                             // Recovers ~25% of data.
	High                                 // Recovers ~30% of data.
)

// formatBits returns the 2-bit EC-level field used by format information.
// This ordering (L=01, M=00, Q=11, H=10) differs from the ordinal index
// above; the standard derives it as (5 - ordinal) & 3.
func (e ErrorCorrectionLevel) formatBits() int {
	return (5 - int(e)) & 3
}
