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

// Package stream wires BitReader/BitWriter and a Codec together into the
// two whole-stream entry points: Compress and Decompress.
package stream

import (
	"io"

	redux "github.com/peterbudai/redux"
	"github.com/peterbudai/redux/bitio"
	"github.com/peterbudai/redux/codec"
	"github.com/peterbudai/redux/model"
)

// DefaultParameters returns the (symbolBits=8, freqBits=14, codeBits=16)
// configuration used by Compress/Decompress when the caller does not supply
// a model of its own.
func DefaultParameters() (*redux.Parameters, error) {
	return redux.NewParameters(8, 14, 16)
}

// Compress reads istream to completion, encoding it with a fresh adaptive
// Fenwick model under DefaultParameters, and returns (bytesIn, bytesOut).
func Compress(istream io.Reader, ostream io.Writer) (uint64, uint64, error) {
	p, err := DefaultParameters()
	if err != nil {
		return 0, 0, err
	}

	return CompressWithModel(istream, ostream, model.NewFenwick(p))
}

// CompressWithModel is Compress parameterized over an arbitrary redux.Model,
// adaptive or not, letting a caller trade compression ratio, speed, or
// memory use for a different model implementation.
func CompressWithModel(istream io.Reader, ostream io.Writer, m redux.Model) (uint64, uint64, error) {
	input := bitio.NewReader(istream)
	output := bitio.NewWriter(ostream)
	c := codec.New(m)

	if err := c.CompressBytes(input, output); err != nil {
		return input.BytesRead(), output.BytesWritten(), err
	}

	return input.BytesRead(), output.BytesWritten(), nil
}

// Decompress reads istream to completion, decoding it with a fresh adaptive
// Fenwick model under DefaultParameters, and returns (bytesIn, bytesOut).
// The Parameters must match the ones Compress used to produce istream;
// Parameters are not carried in the bitstream.
func Decompress(istream io.Reader, ostream io.Writer) (uint64, uint64, error) {
	p, err := DefaultParameters()
	if err != nil {
		return 0, 0, err
	}

	return DecompressWithModel(istream, ostream, model.NewFenwick(p))
}

// DecompressWithModel is Decompress parameterized over an arbitrary
// redux.Model; it must be constructed with the same Parameters, and the
// same model implementation's adaptive behavior, as the Compress call that
// produced istream.
func DecompressWithModel(istream io.Reader, ostream io.Writer, m redux.Model) (uint64, uint64, error) {
	input := bitio.NewReader(istream)
	output := bitio.NewWriter(ostream)
	c := codec.New(m)

	if err := c.DecompressBytes(input, output); err != nil {
		return input.BytesRead(), output.BytesWritten(), err
	}

	if err := output.FlushBits(); err != nil {
		return input.BytesRead(), output.BytesWritten(), err
	}

	return input.BytesRead(), output.BytesWritten(), nil
}
