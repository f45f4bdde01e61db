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

package redux

// Parameters holds the derived constants that govern one compress or
// decompress call. It is immutable once constructed; both sides of a
// compress/decompress pair must use identical Parameters, which are not
// carried in the bitstream itself.
type Parameters struct {
	symbolBits       uint
	symbolEof        uint64
	symbolCount      uint64
	freqBits         uint
	freqMax          uint64
	codeBits         uint
	codeMin          uint64
	codeMax          uint64
	codeOneFourth    uint64
	codeHalf         uint64
	codeThreeFourths uint64
}

// NewParameters validates the three user-chosen widths and derives the rest
// of the fields described in the data model. It returns InvalidInput if
// symbolBits < 1, freqBits < symbolBits+2, codeBits < freqBits+2, or
// codeBits+freqBits > 64.
func NewParameters(symbolBits, freqBits, codeBits uint) (*Parameters, error) {
	if symbolBits < 1 || freqBits < symbolBits+2 || codeBits < freqBits+2 || codeBits+freqBits > 64 {
		return nil, InvalidInput
	}

	symbolEof := uint64(1) << symbolBits

	return &Parameters{
		symbolBits:       symbolBits,
		symbolEof:        symbolEof,
		symbolCount:      symbolEof + 1,
		freqBits:         freqBits,
		freqMax:          (uint64(1) << freqBits) - 1,
		codeBits:         codeBits,
		codeMin:          0,
		codeMax:          (uint64(1) << codeBits) - 1,
		codeOneFourth:    uint64(1) << (codeBits - 2),
		codeHalf:         uint64(2) << (codeBits - 2),
		codeThreeFourths: uint64(3) << (codeBits - 2),
	}, nil
}

// SymbolBits returns the configured width of an input symbol (8 for bytes).
func (p *Parameters) SymbolBits() uint { return p.symbolBits }

// SymbolEof returns the EOF symbol code, numerically one past the alphabet.
func (p *Parameters) SymbolEof() uint64 { return p.symbolEof }

// SymbolCount returns the alphabet size including EOF.
func (p *Parameters) SymbolCount() uint64 { return p.symbolCount }

// FreqBits returns the configured width of cumulative frequency counts.
func (p *Parameters) FreqBits() uint { return p.freqBits }

// FreqMax returns the maximum total cumulative frequency the model may reach.
func (p *Parameters) FreqMax() uint64 { return p.freqMax }

// CodeBits returns the configured width of the range registers.
func (p *Parameters) CodeBits() uint { return p.codeBits }

// CodeMin returns the lower bound of the range registers (always 0).
func (p *Parameters) CodeMin() uint64 { return p.codeMin }

// CodeMax returns the upper bound of the range registers.
func (p *Parameters) CodeMax() uint64 { return p.codeMax }

// CodeOneFourth returns 1<<(codeBits-2), the E3 lower threshold.
func (p *Parameters) CodeOneFourth() uint64 { return p.codeOneFourth }

// CodeHalf returns 2<<(codeBits-2), the E1/E2 midpoint.
func (p *Parameters) CodeHalf() uint64 { return p.codeHalf }

// CodeThreeFourths returns 3<<(codeBits-2), the E3 upper threshold.
func (p *Parameters) CodeThreeFourths() uint64 { return p.codeThreeFourths }
