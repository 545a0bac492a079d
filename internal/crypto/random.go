// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// readerRandomSource implements [RandomSource] on top of an io.Reader.
type readerRandomSource struct {
	reader io.Reader
}

// NewRandomSource returns a [RandomSource] backed by the OS CSPRNG.
func NewRandomSource() RandomSource {
	return &readerRandomSource{reader: rand.Reader}
}

// NewReaderRandomSource wraps an arbitrary reader. Only tests should pass
// anything other than crypto/rand.Reader.
func NewReaderRandomSource(r io.Reader) RandomSource {
	return &readerRandomSource{reader: r}
}

// Bytes implements [RandomSource].
func (s *readerRandomSource) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return buf, nil
}

// Uint32s implements [RandomSource]. Values are read little-endian, four
// bytes each.
func (s *readerRandomSource) Uint32s(n int) ([]uint32, error) {
	raw, err := s.Bytes(n * 4)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return out, nil
}
