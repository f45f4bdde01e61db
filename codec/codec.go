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

// Package codec implements the fixed-precision arithmetic coding state
// machine: range update, E1/E2/E3 renormalization, and EOF disambiguation,
// parametric over any redux.Model.
package codec

import (
	redux "github.com/peterbudai/redux"
)

// Codec is the arithmetic coding state machine. One instance encodes or
// decodes exactly one stream; it is not safe to use for both directions at
// once, and its Model is mutated on every symbol so it cannot be shared
// across concurrent coders.
type Codec struct {
	low     uint64
	high    uint64
	pending uint64 // encoder: deferred E3 underflow-bit count. decoder: the value register.
	extra   uint   // encoder: trailing bits still owed after EOF. decoder: priming bits still to read.
	model   redux.Model
}

// New builds a Codec around the given Model, with low/high initialized to
// the model's Parameters and extra initialized to CodeBits (the encoder's
// owed trailing-bit count, the decoder's priming countdown).
func New(m redux.Model) *Codec {
	p := m.Parameters()

	return &Codec{
		low:   p.CodeMin(),
		high:  p.CodeMax(),
		extra: p.CodeBits(),
		model: m,
	}
}

func (c *Codec) putBit(bit uint64, output redux.BitWriter) error {
	if err := output.WriteBits(bit, 1); err != nil {
		return err
	}

	opposite := uint64(1) - bit

	for c.pending > 0 {
		if err := output.WriteBits(opposite, 1); err != nil {
			return err
		}
		c.pending--
	}

	return nil
}

func (c *Codec) getBit(input redux.BitReader) error {
	bit, err := input.ReadBits(1)
	if err != nil {
		return err
	}

	c.pending = (c.pending << 1) | bit
	return nil
}

// CompressSymbol encodes a single symbol (which may be Parameters().
// SymbolEof()) into output, updating the range registers, the model, and
// emitting zero or more bits through E1/E2/E3 renormalization.
func (c *Codec) CompressSymbol(symbol uint64, output redux.BitWriter) error {
	p := c.model.Parameters()
	count := c.model.TotalFrequency()
	lo, hi, err := c.model.GetFrequency(symbol)
	if err != nil {
		return err
	}

	span := c.high - c.low + 1
	c.high = c.low + (span*hi)/count - 1
	c.low = c.low + (span*lo)/count

	eof := symbol == p.SymbolEof()

	for {
		switch {
		case c.high < p.CodeHalf():
			if err := c.putBit(0, output); err != nil {
				return err
			}
			if eof && c.extra > 0 {
				c.extra--
			}
		case c.low >= p.CodeHalf():
			if err := c.putBit(1, output); err != nil {
				return err
			}
			if eof && c.extra > 0 {
				c.extra--
			}
		case c.low >= p.CodeOneFourth() && c.high < p.CodeThreeFourths():
			c.pending++
			c.low -= p.CodeOneFourth()
			c.high -= p.CodeOneFourth()
			if eof && c.extra > 0 {
				c.extra--
			}
		default:
			goto done
		}

		c.low = (c.low << 1) & p.CodeMax()
		c.high = ((c.high << 1) + 1) & p.CodeMax()
	}

done:
	if eof {
		for c.extra > 0 {
			bit := uint64(0)
			if c.low&p.CodeHalf() != 0 {
				bit = 1
			}
			if err := c.putBit(bit, output); err != nil {
				return err
			}
			c.low = (c.low << 1) & p.CodeMax()
			c.extra--
		}

		if err := output.FlushBits(); err != nil {
			return err
		}
	}

	return nil
}

// CompressBytes reads bytes from input until it is exhausted, encoding each
// one, then encodes the EOF symbol and returns. It requires SymbolBits() ==
// 8 and fails with InvalidInput otherwise.
func (c *Codec) CompressBytes(input redux.BitReader, output redux.BitWriter) error {
	p := c.model.Parameters()
	if p.SymbolBits() != 8 {
		return redux.InvalidInput
	}

	for {
		var symbol uint64

		b, err := input.ReadBits(8)
		switch {
		case err == nil:
			symbol = b
		case errIsEof(err):
			symbol = p.SymbolEof()
		default:
			return err
		}

		if err := c.CompressSymbol(symbol, output); err != nil {
			return err
		}

		if symbol == p.SymbolEof() {
			return nil
		}
	}
}

// DecompressSymbol decodes a single symbol from input, returning
// Parameters().SymbolEof() once the stream's EOF marker is reached.
func (c *Codec) DecompressSymbol(input redux.BitReader) (uint64, error) {
	p := c.model.Parameters()

	for c.extra > 0 {
		if err := c.getBit(input); err != nil {
			return 0, err
		}
		c.extra--
	}

	span := c.high - c.low + 1
	count := c.model.TotalFrequency()
	target := ((c.pending-c.low+1)*count - 1) / span

	symbol, lo, hi, err := c.model.GetSymbol(target)
	if err != nil {
		return 0, err
	}

	c.high = c.low + (span*hi)/count - 1
	c.low = c.low + (span*lo)/count

	if symbol == p.SymbolEof() {
		return symbol, nil
	}

	for {
		switch {
		case c.high < p.CodeHalf():
			// no adjustment beyond the shift below
		case c.low >= p.CodeHalf():
			c.pending -= p.CodeHalf()
			c.low -= p.CodeHalf()
			c.high -= p.CodeHalf()
		case c.low >= p.CodeOneFourth() && c.high < p.CodeThreeFourths():
			c.pending -= p.CodeOneFourth()
			c.low -= p.CodeOneFourth()
			c.high -= p.CodeOneFourth()
		default:
			goto done
		}

		c.low = c.low << 1
		c.high = (c.high << 1) + 1
		if err := c.getBit(input); err != nil {
			return 0, err
		}
	}

done:
	return symbol, nil
}

// DecompressBytes decodes symbols from input until it sees EOF, writing
// every non-EOF symbol to output. It requires SymbolBits() == 8 and fails
// with InvalidInput otherwise; if the bit stream ends before EOF is
// decoded, it fails with Eof.
func (c *Codec) DecompressBytes(input redux.BitReader, output redux.BitWriter) error {
	p := c.model.Parameters()
	if p.SymbolBits() != 8 {
		return redux.InvalidInput
	}

	for {
		symbol, err := c.DecompressSymbol(input)
		if err != nil {
			return err
		}

		if symbol == p.SymbolEof() {
			return nil
		}

		if err := output.WriteBits(symbol, 8); err != nil {
			return err
		}
	}
}

func errIsEof(err error) bool {
	re, ok := err.(*redux.Error)
	return ok && re.Kind() == redux.KindEof
}
