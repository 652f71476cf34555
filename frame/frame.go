// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

// Package frame implements the LZJody block frame: the 2- or 4-byte
// header a stream driver writes around one compressed (or
// NOCOMPRESS-stored) block. The core codec package never reads or
// writes a frame header itself (spec.md §1, §6.2).
package frame

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/go-lzjody/lzjody"
)

// Flags occupy the top 4 bits of an extended frame header's first byte.
type Flags byte

const (
	// NoCompress marks the payload as stored raw rather than compressed.
	NoCompress Flags = 0x80
)

const (
	maxLength    = 0x0fffffff // 28 bits
	maxPayload   = lzjody.MaxBlockSize + lzjody.MaxBlockSize/16 + 64 + 3 // mirrors Compress's worst-case expansion
	legacyHeader = 2
	extHeader    = 4
)

var (
	// ErrFrameTooLarge is returned when a frame declares a payload
	// longer than the driver is willing to buffer.
	ErrFrameTooLarge = errors.New("frame: declared length exceeds maximum payload size")
	// ErrShortRead is returned when the stream ends before a declared
	// header or payload is fully read.
	ErrShortRead = errors.New("frame: short read")
	// ErrLengthOverflow is returned when WriteFrame is asked to frame
	// more than the 28-bit length field can hold.
	ErrLengthOverflow = errors.New("frame: payload exceeds 28-bit length field")
)

// WriteFrame picks the smaller of compressed and rawFallback (setting
// NoCompress when raw wins or compressed is empty) and writes it as one
// extended frame: a 4-byte big-endian header (flags in the top nibble
// of byte 0, a 28-bit length in the rest) followed by the payload.
func WriteFrame(w io.Writer, compressed []byte, rawFallback []byte, flags Flags) error {
	payload := compressed
	if len(rawFallback) > 0 && (len(compressed) == 0 || len(rawFallback) <= len(compressed)) {
		payload = rawFallback
		flags |= NoCompress
	}

	if len(payload) > maxLength {
		return ErrLengthOverflow
	}

	var header [extHeader]byte
	packed := uint32(flags&0xf0)<<24 | uint32(len(payload))&maxLength
	binary.BigEndian.PutUint32(header[:], packed)

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// ReadFrame reads one extended frame header and its payload.
func ReadFrame(r io.Reader) (payload []byte, flags Flags, err error) {
	var header [extHeader]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return nil, 0, io.EOF
		}
		return nil, 0, ErrShortRead
	}

	packed := binary.BigEndian.Uint32(header[:])
	flags = Flags(packed>>24) & 0xf0
	length := int(packed & maxLength)

	if length > maxPayload {
		return nil, 0, ErrFrameTooLarge
	}

	payload = make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, 0, ErrShortRead
	}

	return payload, flags, nil
}

// ReadLegacyFrame reads one legacy 2-byte little-endian length frame,
// with no flag bits, for read-only compatibility with older streams.
func ReadLegacyFrame(r io.Reader) (payload []byte, err error) {
	var header [legacyHeader]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, ErrShortRead
	}

	length := int(binary.LittleEndian.Uint16(header[:]))
	if length > maxPayload {
		return nil, ErrFrameTooLarge
	}

	payload = make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ErrShortRead
	}
	return payload, nil
}
