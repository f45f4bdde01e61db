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

// BitWriter packs variable-width values into a byte stream, MSB-first.
type BitWriter interface {
	// WriteBits writes the low n bits of v to the stream, n in [1, 64].
	// Returns InvalidInput if n is out of range or v has a bit set at a
	// position >= n.
	WriteBits(v uint64, n uint) error

	// FlushBits emits the partial staging byte, if any, zero-padded on the
	// low side. Idempotent: flushing an empty buffer writes nothing.
	FlushBits() error

	// BytesWritten returns the number of bytes that have reached the
	// underlying stream so far.
	BytesWritten() uint64
}

// BitReader consumes variable-width values from a byte stream, MSB-first,
// in the order a BitWriter produced them.
type BitReader interface {
	// ReadBits reads n bits, n in [1, 64], and returns them with the first
	// bit read in the most significant position. Returns Eof if the
	// underlying stream is exhausted mid-read, InvalidInput if n is out of
	// range, or IoError if the underlying stream fails.
	ReadBits(n uint) (uint64, error)

	// BytesRead returns the number of bytes consumed from the underlying
	// stream so far.
	BytesRead() uint64
}

// Model is the cumulative-frequency table behind arithmetic coding. Any
// implementation preserving the invariants in the data model — CF(0) = 0,
// CF non-decreasing, freq(s) >= 1, total <= FreqMax — is a valid Model,
// adaptive or not.
type Model interface {
	// Parameters returns the arithmetic parameters this model was built
	// with.
	Parameters() *Parameters

	// TotalFrequency returns the current CF(SymbolCount()).
	TotalFrequency() uint64

	// GetFrequency returns (CF(symbol), CF(symbol+1)) and then updates the
	// table. Returns InvalidInput if symbol exceeds SymbolEof().
	GetFrequency(symbol uint64) (uint64, uint64, error)

	// GetSymbol returns the unique symbol s with CF(s) <= value < CF(s+1),
	// together with that bracket, and then updates the table. Returns
	// InvalidInput if value >= TotalFrequency().
	GetSymbol(value uint64) (uint64, uint64, uint64, error)
}
