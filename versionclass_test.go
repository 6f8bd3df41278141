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

func TestVersionClassOfBoundaries(t *testing.T) {
	assert.Equal(t, Small, versionClassOf(1))
	assert.Equal(t, Small, versionClassOf(9))
	assert.Equal(t, MediumClass, versionClassOf(10))
	assert.Equal(t, MediumClass, versionClassOf(26))
	assert.Equal(t, Large, versionClassOf(27))
	assert.Equal(t, Large, versionClassOf(40))
}

func TestVersionClassRangeCoversAllVersionsExactlyOnce(t *testing.T) {
	for version := 1; version <= 40; version++ {
		vc := versionClassOf(version)
		start, end := versionClassRange(vc)
		assert.GreaterOrEqual(t, version, start)
		assert.LessOrEqual(t, version, end)
	}
}
