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
	"io"

	redux "github.com/peterbudai/redux"
)

// Reader consumes bits MSB-first from a single staging byte, refilling it
// one byte at a time from the wrapped io.Reader.
type Reader struct {
	input io.Reader
	next  byte
	mask  byte // 0 means the staging byte is exhausted and must be refilled
	count uint64
}

// NewReader wraps a byte input stream in a bit-based interface.
func NewReader(r io.Reader) *Reader {
	return &Reader{input: r, next: 0, mask: 0}
}

// BytesRead returns the number of bytes consumed from the underlying stream
// so far.
func (r *Reader) BytesRead() uint64 {
	return r.count
}

func (r *Reader) readNext() error {
	var buf [1]byte

	n, err := r.input.Read(buf[:])

	if n == 0 {
		if err != nil && err != io.EOF {
			return redux.NewIoError(err)
		}
		return redux.Eof
	}

	r.count++
	r.next = buf[0]
	return nil
}

func (r *Reader) readBit() (uint64, error) {
	if r.mask == 0 {
		if err := r.readNext(); err != nil {
			return 0, err
		}
		r.mask = 0x80
	}

	bit := uint64(0)
	if r.next&r.mask != 0 {
		bit = 1
	}
	r.mask >>= 1
	return bit, nil
}

// ReadBits reads n bits, n in [1, 64], MSB first, and returns them as an
// unsigned integer with the first bit read in the most significant
// position. A read that runs past the end of the stream fails with Eof,
// which remains sticky: once the underlying stream is exhausted, further
// reads keep failing with Eof.
func (r *Reader) ReadBits(n uint) (uint64, error) {
	if n < 1 || n > 64 {
		return 0, redux.InvalidInput
	}

	var v uint64

	for i := uint(0); i < n; i++ {
		bit, err := r.readBit()
		if err != nil {
			return 0, err
		}
		v = (v << 1) | bit
	}

	return v, nil
}
