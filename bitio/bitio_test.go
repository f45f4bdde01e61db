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

package bitio

import (
	"bytes"
	"io"
	"testing"

	redux "github.com/peterbudai/redux"
	"github.com/stretchr/testify/require"
)

// scenario 4 from the testable properties: odd bit counts packed MSB first.
func TestWriterPacksExactByte(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteBits(0b1, 1))
	require.NoError(t, w.WriteBits(0b010101, 6))
	require.NoError(t, w.WriteBits(0b0, 1))
	require.NoError(t, w.FlushBits())

	require.Equal(t, []byte{0b10101010}, buf.Bytes())
	require.Equal(t, uint64(1), w.BytesWritten())
}

// scenario 5: a lone bit zero-pads on flush.
func TestWriterFlushZeroPads(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteBits(0b1, 1))
	require.NoError(t, w.FlushBits())

	require.Equal(t, []byte{0b10000000}, buf.Bytes())
}

func TestFlushEmptyBufferIsNoop(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.FlushBits())
	require.Equal(t, 0, buf.Len())
	require.Equal(t, uint64(0), w.BytesWritten())
}

func TestFlushIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteBits(0b101, 3))
	require.NoError(t, w.FlushBits())
	first := append([]byte(nil), buf.Bytes()...)

	require.NoError(t, w.FlushBits())
	require.Equal(t, first, buf.Bytes())
}

func TestWriteBitsRejectsOutOfRangeWidth(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.ErrorIs(t, w.WriteBits(0, 0), redux.InvalidInput)
	require.ErrorIs(t, w.WriteBits(0, 65), redux.InvalidInput)
}

func TestWriteBitsRejectsOverflowValue(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.ErrorIs(t, w.WriteBits(0b100, 2), redux.InvalidInput)
}

func TestRoundTripArbitraryWidths(t *testing.T) {
	widths := []uint{1, 3, 7, 8, 13, 32, 64}
	values := []uint64{0, 0b101, 0x7f, 0xff, 0x1fff, 0xdeadbeef, ^uint64(0)}

	var buf bytes.Buffer
	w := NewWriter(&buf)

	for i, n := range widths {
		require.NoError(t, w.WriteBits(values[i], n))
	}
	require.NoError(t, w.FlushBits())

	r := NewReader(&buf)
	for i, n := range widths {
		got, err := r.ReadBits(n)
		require.NoError(t, err)
		require.Equal(t, values[i], got)
	}
}

func TestReaderStickyEof(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))

	_, err := r.ReadBits(1)
	require.ErrorIs(t, err, redux.Eof)

	_, err = r.ReadBits(8)
	require.ErrorIs(t, err, redux.Eof)
}

func TestReaderEofMidByte(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff}))

	_, err := r.ReadBits(8)
	require.NoError(t, err)

	_, err = r.ReadBits(1)
	require.ErrorIs(t, err, redux.Eof)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestReaderWrapsLowLevelFailure(t *testing.T) {
	r := NewReader(errReader{})

	_, err := r.ReadBits(1)

	re, ok := err.(*redux.Error)
	require.True(t, ok)
	require.Equal(t, redux.KindIoError, re.Kind())
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriterWrapsLowLevelFailure(t *testing.T) {
	w := NewWriter(errWriter{})

	for i := 0; i < 8; i++ {
		if err := w.WriteBits(0, 1); err != nil {
			re, ok := err.(*redux.Error)
			require.True(t, ok)
			require.Equal(t, redux.KindIoError, re.Kind())
			return
		}
	}
	t.Fatal("expected a write failure within one byte")
}
