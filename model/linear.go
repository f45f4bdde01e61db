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

// Linear is an adaptive model backed by a plain array of cumulative
// frequencies. GetFrequency is O(1); GetSymbol and the update step are
// O(alphabet). It exists as a correctness oracle for Fenwick, not for
// production use.
type Linear struct {
	cf     []uint64
	params *redux.Parameters
}

// NewLinear initializes a Linear model with every symbol, EOF included,
// starting at frequency 1.
func NewLinear(p *redux.Parameters) *Linear {
	cf := make([]uint64, p.SymbolCount()+1)

	for i := range cf {
		cf[i] = uint64(i)
	}

	return &Linear{cf: cf, params: p}
}

// Parameters returns the arithmetic parameters this model was built with.
func (m *Linear) Parameters() *redux.Parameters {
	return m.params
}

// TotalFrequency returns CF(SymbolCount()).
func (m *Linear) TotalFrequency() uint64 {
	return m.cf[m.params.SymbolCount()]
}

func (m *Linear) update(symbol uint64) {
	if freeze(m.TotalFrequency(), m.params.FreqMax()) {
		return
	}

	for i := symbol + 1; i < uint64(len(m.cf)); i++ {
		m.cf[i]++
	}
}

// GetFrequency returns (CF(symbol), CF(symbol+1)) and bumps the frequency
// of symbol by one, unless doing so would push the total past FreqMax.
func (m *Linear) GetFrequency(symbol uint64) (uint64, uint64, error) {
	if symbol > m.params.SymbolEof() {
		return 0, 0, redux.InvalidInput
	}

	lo, hi := m.cf[symbol], m.cf[symbol+1]
	m.update(symbol)
	return lo, hi, nil
}

// GetSymbol returns the unique symbol s with CF(s) <= value < CF(s+1) and
// bumps its frequency the same way GetFrequency does.
func (m *Linear) GetSymbol(value uint64) (uint64, uint64, uint64, error) {
	if value >= m.TotalFrequency() {
		return 0, 0, 0, redux.InvalidInput
	}

	for i := uint64(0); i < uint64(len(m.cf))-1; i++ {
		if value < m.cf[i+1] {
			lo, hi := m.cf[i], m.cf[i+1]
			m.update(i)
			return i, lo, hi, nil
		}
	}

	// Unreachable: value < TotalFrequency() guarantees a match above.
	return 0, 0, 0, redux.InvalidInput
}

// FrequencyTable reconstructs the full (CF(i), CF(i+1)) pair for every
// symbol in the alphabet. It is for cross-validation tests only; it need
// not be fast.
func (m *Linear) FrequencyTable() [][2]uint64 {
	table := make([][2]uint64, m.params.SymbolCount())

	for i := range table {
		table[i] = [2]uint64{m.cf[i], m.cf[i+1]}
	}

	return table
}
