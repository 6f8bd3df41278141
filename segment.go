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

// Segment describes one contiguous run of the input payload encoded in a
// single Mode. Length counts input bytes consumed; for Kanji segments this is
// twice the number of encoded characters. A []Segment partitions the payload
// in order: concatenating every segment's Length equals the payload length.
type Segment struct {
	Mode   Mode
	Length int
}
