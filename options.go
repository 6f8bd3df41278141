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

// encodeOptions collects the optional knobs Encode accepts. The defaults
// produced by defaultEncodeOptions are: no Kanji mode, no segment
// optimization, automatic mask selection, the full [1, 40] version range,
// and no EC-level boosting.
type encodeOptions struct {
	mask         int
	minVersion   int
	maxVersion   int
	boostECL     bool
	useKanjiMode bool
	optimize     bool
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{
		mask:       -1,
		minVersion: 1,
		maxVersion: 40,
	}
}

// Option configures an Encode call.
type Option func(*encodeOptions)

// WithMask forces a specific mask pattern [0, 7] instead of the
// lowest-penalty automatic choice.
func WithMask(mask int) Option {
	return func(o *encodeOptions) {
		o.mask = mask
	}
}

// WithVersion forces version exactly n: Encode fails if n is smaller than
// the minimum version the payload requires, and never chooses a version
// other than n. Equivalent to WithMinVersion(n) combined with
// WithMaxVersion(n); the CLI's /V option maps to this.
func WithVersion(n int) Option {
	return func(o *encodeOptions) {
		o.minVersion = n
		o.maxVersion = n
	}
}

// WithMinVersion sets the smallest version Encode may choose.
func WithMinVersion(version int) Option {
	return func(o *encodeOptions) {
		o.minVersion = version
	}
}

// WithMaxVersion sets the largest version Encode may choose.
func WithMaxVersion(version int) Option {
	return func(o *encodeOptions) {
		o.maxVersion = version
	}
}

// WithKanjiMode enables Kanji as a candidate mode during mode selection and
// segmentation; data must then be Shift_JIS-encoded (see EncodeShiftJIS).
func WithKanjiMode(enabled bool) Option {
	return func(o *encodeOptions) {
		o.useKanjiMode = enabled
	}
}

// WithOptimize enables Annex J mixed-mode segmentation. Without it, Encode
// emits a single segment covering the whole payload.
func WithOptimize(enabled bool) Option {
	return func(o *encodeOptions) {
		o.optimize = enabled
	}
}

// WithBoostECL raises the error correction level above the requested one,
// up to High, as long as the chosen version still has room for the
// payload at the higher level. Off by default.
func WithBoostECL(boost bool) Option {
	return func(o *encodeOptions) {
		o.boostECL = boost
	}
}
