// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

/*
Package lzjody implements the LZJody block compression codec: a
byte-oriented, block-framed lossless compressor and matching
decompressor. A block of up to [MaxBlockSize] input bytes is encoded
into a stream of typed commands — literal runs, LZ back-references,
run-length runs, arithmetic sequences, and a recursive byte-plane
transform — and [Decompress] reconstructs the original bytes.

# Compress

Options may be the zero value (no flags set):

	out, err := lzjody.Compress(block, lzjody.CompressOptions{})
	out, err := lzjody.Compress(block, lzjody.CompressOptions{FastLZ: true})

# Decompress

OutLen is required (use [DefaultDecompressOptions]):

	out, err := lzjody.Decompress(compressed, lzjody.DefaultDecompressOptions(len(original)))

Compress/Decompress operate on one block at a time (at most
[MaxBlockSize] bytes); they carry no state between calls. Framing
multiple blocks into a stream, and running independent block encodes
concurrently, are the job of the frame and parallel packages.
*/
package lzjody
