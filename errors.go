// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrOptionsRequired is returned when Decompress is called with OutLen negative.
	ErrOptionsRequired = errors.New("lzjody: options required: OutLen must be set")
	// ErrBlockTooLarge is returned when Compress is called with a block longer than MaxBlockSize.
	ErrBlockTooLarge = errors.New("lzjody: block exceeds maximum block size")
	// ErrInputOverrun is returned when the decoder would read past the end of input.
	ErrInputOverrun = errors.New("lzjody: input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the destination buffer.
	ErrOutputOverrun = errors.New("lzjody: output overrun")
	// ErrLZOffsetInvalid is returned when an LZ command's offset is >= the current output position.
	ErrLZOffsetInvalid = errors.New("lzjody: LZ back-reference offset points past current output")
	// ErrUnknownSubcommand is returned when the decoder reads an unrecognized extended subcommand.
	ErrUnknownSubcommand = errors.New("lzjody: unknown extended subcommand")
	// ErrControlValueTooLarge is returned when the encoder would write a control field > 0x1000.
	ErrControlValueTooLarge = errors.New("lzjody: control value exceeds 0x1000")
	// ErrSeqOverflow is returned when a Seq8/16/32 command's length would overflow the block capacity.
	ErrSeqOverflow = errors.New("lzjody: sequence command exceeds block capacity")
	// ErrPlaneOverflow is returned when a Plane command's nested length exceeds block capacity.
	ErrPlaneOverflow = errors.New("lzjody: plane command exceeds block capacity")

	// ErrCodecInternal is returned when an internal invariant of the codec is violated.
	// Callers can use errors.Is(err, lzjody.ErrCodecInternal).
	ErrCodecInternal = errors.New("lzjody: internal codec error")
)
