/*
Copyright 2026 The Redux Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package model implements the adaptive cumulative-frequency table behind
// arithmetic coding, in two interchangeable flavors: Linear (a plain array,
// used as the correctness oracle) and Fenwick (a binary-indexed tree, used
// in production for its O(log n) query/update cost). Both satisfy
// redux.Model and must return bit-identical answers for any identical
// sequence of calls.
package model

// freeze reports whether incrementing the frequency of one symbol would
// push the table's total past freqMax. When it would, the update rule
// leaves the table unchanged instead ("freezing" the model) so that range
// arithmetic in the codec never overflows.
func freeze(total, freqMax uint64) bool {
	return total+1 > freqMax
}
