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

package model

import (
	redux "github.com/peterbudai/redux"
)

// Fenwick is an adaptive model backed by a binary-indexed tree of
// cumulative frequencies, standard 1-indexed convention: tree[0] is unused
// (CF(0) is always 0), tree[1..=SymbolCount()] each hold the partial sum
// over the index range determined by their lowest set bit. GetFrequency,
// GetSymbol and update all run in O(log alphabet) instead of Linear's
// O(alphabet).
type Fenwick struct {
	tree   []uint64
	params *redux.Parameters
}

func lowbit(x uint64) uint64 {
	return x & (-x)
}

// NewFenwick initializes a Fenwick model with every symbol, EOF included,
// starting at frequency 1: tree[i] = lowbit(i) makes a standard-descent
// prefix sum CF(i) equal i.
func NewFenwick(p *redux.Parameters) *Fenwick {
	size := p.SymbolCount() + 1
	tree := make([]uint64, size)

	for i := uint64(1); i < size; i++ {
		tree[i] = lowbit(i)
	}

	return &Fenwick{tree: tree, params: p}
}

// Parameters returns the arithmetic parameters this model was built with.
func (m *Fenwick) Parameters() *redux.Parameters {
	return m.params
}

// frequencySingle returns CF(i) by descending the tree from i.
func (m *Fenwick) frequencySingle(i uint64) uint64 {
	sum := uint64(0)

	for i > 0 {
		sum += m.tree[i]
		i -= lowbit(i)
	}

	return sum
}

// TotalFrequency returns CF(SymbolCount()).
func (m *Fenwick) TotalFrequency() uint64 {
	return m.frequencySingle(m.params.SymbolCount())
}

// frequencyRange returns (CF(s), CF(s+1)) by walking the two paths from s
// and s+1 toward their common Fenwick ancestor, adding the shared tail
// exactly once instead of performing two independent descents.
func (m *Fenwick) frequencyRange(s uint64) (uint64, uint64) {
	lo, hi := s, s+1
	sumLo, sumHi := uint64(0), uint64(0)

	for lo != hi {
		if hi > lo {
			sumHi += m.tree[hi]
			hi -= lowbit(hi)
		} else {
			sumLo += m.tree[lo]
			lo -= lowbit(lo)
		}
	}

	common := m.frequencySingle(lo)
	return sumLo + common, sumHi + common
}

func (m *Fenwick) update(symbol uint64) {
	if freeze(m.TotalFrequency(), m.params.FreqMax()) {
		return
	}

	for k := symbol + 1; k <= m.params.SymbolCount(); k += lowbit(k) {
		m.tree[k]++
	}
}

// GetFrequency returns (CF(symbol), CF(symbol+1)) and bumps the frequency
// of symbol by one, unless doing so would push the total past FreqMax.
func (m *Fenwick) GetFrequency(symbol uint64) (uint64, uint64, error) {
	if symbol > m.params.SymbolEof() {
		return 0, 0, redux.InvalidInput
	}

	lo, hi := m.frequencyRange(symbol)
	m.update(symbol)
	return lo, hi, nil
}

// GetSymbol returns the unique symbol s with CF(s) <= value < CF(s+1) and
// bumps its frequency the same way GetFrequency does. It descends the tree
// by a bit-decreasing mask starting at the largest power of two not
// exceeding SymbolEof() — which SymbolEof() always is, being 1<<symbolBits.
func (m *Fenwick) GetSymbol(value uint64) (uint64, uint64, uint64, error) {
	if value >= m.TotalFrequency() {
		return 0, 0, 0, redux.InvalidInput
	}

	i := uint64(0)
	v := value

	for mask := m.params.SymbolEof(); mask > 0 && i < m.params.SymbolEof(); mask >>= 1 {
		ti := i + mask
		tv := m.tree[ti]

		if v >= tv {
			i = ti
			v -= tv
		}
	}

	lo, hi := m.frequencyRange(i)
	m.update(i)
	return i, lo, hi, nil
}

// FrequencyTable reconstructs the full (CF(i), CF(i+1)) pair for every
// symbol in the alphabet. It is for cross-validation tests only; it need
// not be fast.
func (m *Fenwick) FrequencyTable() [][2]uint64 {
	table := make([][2]uint64, m.params.SymbolCount())

	for i := range table {
		lo, hi := m.frequencyRange(uint64(i))
		table[i] = [2]uint64{lo, hi}
	}

	return table
}
