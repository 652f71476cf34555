// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

import "encoding/binary"

// compressorState carries the mutable cursor pair (ipos/opos), the
// pending-literal-run bookkeeping, and the byte index for a single
// call to encodeBlock. A nested call (literal-plane recursion) gets
// its own compressorState rather than sharing one (spec.md §4.5, §4.6).
type compressorState struct {
	in     []byte
	length int
	out    []byte
	opos   int
	ipos   int

	literals     int
	literalStart int

	opts CompressOptions
	bi   *byteIndex
}

// maxCompressedSize returns the worst-case output size for a block of
// inLen bytes: every command is emitted at its most expensive width,
// plus the 2-byte length prefix.
func maxCompressedSize(inLen int) int {
	return inLen + inLen/16 + 64 + 3
}

// encodeBlock runs the full compression lifecycle over cs.in[:cs.length]
// and leaves the encoded block in cs.out[:cs.opos] (spec.md §4.6):
// reserve the length prefix, build the byte index, try each match
// finder in priority order (RLE, LZ, Seq) at every input position,
// absorbing a literal when none fire, flush any trailing literal run,
// and backfill the prefix.
func encodeBlock(cs *compressorState) error {
	if !cs.opts.NoPrefix {
		cs.opos = 2
	}

	bi := acquireByteIndex()
	bi.build(cs.in, cs.length)
	cs.bi = bi
	defer releaseByteIndex(bi)

	for cs.ipos < cs.length {
		ok, err := findRLE(cs)
		if err != nil {
			return err
		}
		if ok {
			continue
		}

		ok, err = findLZ(cs)
		if err != nil {
			return err
		}
		if ok {
			continue
		}

		ok, err = findSeq(cs)
		if err != nil {
			return err
		}
		if ok {
			continue
		}

		if cs.literals == 0 {
			cs.literalStart = cs.ipos
		}
		cs.literals++
		cs.ipos++
	}

	if err := flushLiterals(cs); err != nil {
		return err
	}

	if !cs.opts.NoPrefix {
		if cs.opos-2 > 0xffff {
			return ErrOutputOverrun
		}
		binary.LittleEndian.PutUint16(cs.out[0:], uint16(cs.opos-2))
	}

	return nil
}

// Compress encodes block as a single LZJody block, allocating its own
// output buffer sized for the worst case. block must not exceed
// MaxBlockSize; an empty block is valid and encodes to just the 2-byte
// length prefix.
func Compress(block []byte, opts CompressOptions) ([]byte, error) {
	if len(block) > MaxBlockSize {
		return nil, ErrBlockTooLarge
	}

	dst := make([]byte, maxCompressedSize(len(block)))
	n, err := CompressInto(block, dst, opts)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// CompressInto encodes block into dst and returns the number of bytes
// written. dst must be at least maxCompressedSize(len(block)) long.
func CompressInto(block []byte, dst []byte, opts CompressOptions) (int, error) {
	if len(block) > MaxBlockSize {
		return 0, ErrBlockTooLarge
	}

	cs := &compressorState{
		in:     block,
		length: len(block),
		out:    dst,
		opts:   opts,
	}
	if err := encodeBlock(cs); err != nil {
		return 0, err
	}
	return cs.opos, nil
}
