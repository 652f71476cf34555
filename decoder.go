// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

import "encoding/binary"

// decodeBlock decodes the command stream in[:] (already delimited to
// exactly one block's body by the caller) into out, starting at
// out[0], and returns the number of bytes written. Unlike encodeBlock,
// the decoded length is not known ahead of time — it falls out of
// whichever commands the body happens to contain, mirroring
// original_source/lzjb.c's lzjb_decompress() returning its own opos
// (spec.md §4.7).
func decodeBlock(in []byte, out []byte) (int, error) {
	ipos := 0
	opos := 0

	for ipos < len(in) {
		hdr, nipos, err := readControl(in, ipos)
		if err != nil {
			return 0, err
		}
		ipos = nipos

		switch hdr.class {
		case classLZ:
			offset := int(hdr.control & 0x0fff)
			if offset >= opos {
				return 0, ErrLZOffsetInvalid
			}
			if ipos >= len(in) {
				return 0, ErrInputOverrun
			}
			length := int(in[ipos])
			ipos++
			if hdr.lzl {
				if ipos >= len(in) {
					return 0, ErrInputOverrun
				}
				length |= int(in[ipos]) << 8
				ipos++
			}
			if opos+length > len(out) {
				return 0, ErrOutputOverrun
			}
			copyBackRefByteWise(out, opos, offset, length)
			opos += length

		case classRLE:
			length := int(hdr.control)
			if ipos >= len(in) {
				return 0, ErrInputOverrun
			}
			b := in[ipos]
			ipos++
			if opos+length > len(out) {
				return 0, ErrOutputOverrun
			}
			for i := 0; i < length; i++ {
				out[opos+i] = b
			}
			opos += length

		case classLit:
			length := int(hdr.control)
			if ipos+length > len(in) {
				return 0, ErrInputOverrun
			}
			if opos+length > len(out) {
				return 0, ErrOutputOverrun
			}
			copy(out[opos:opos+length], in[ipos:ipos+length])
			ipos += length
			opos += length

		case subSeq32:
			count := int(hdr.control)
			if ipos+4 > len(in) {
				return 0, ErrInputOverrun
			}
			n := binary.LittleEndian.Uint32(in[ipos:])
			ipos += 4
			if opos+count*4 > len(out) {
				return 0, ErrSeqOverflow
			}
			for i := 0; i < count; i++ {
				binary.LittleEndian.PutUint32(out[opos:], n)
				opos += 4
				n++
			}

		case subSeq16:
			count := int(hdr.control)
			if ipos+2 > len(in) {
				return 0, ErrInputOverrun
			}
			n := binary.LittleEndian.Uint16(in[ipos:])
			ipos += 2
			if opos+count*2 > len(out) {
				return 0, ErrSeqOverflow
			}
			for i := 0; i < count; i++ {
				binary.LittleEndian.PutUint16(out[opos:], n)
				opos += 2
				n++
			}

		case subSeq8:
			count := int(hdr.control)
			if ipos+1 > len(in) {
				return 0, ErrInputOverrun
			}
			n := in[ipos]
			ipos++
			if opos+count > len(out) {
				return 0, ErrSeqOverflow
			}
			for i := 0; i < count; i++ {
				out[opos] = n
				opos++
				n++
			}

		case subPlane:
			bodyLen := int(hdr.control)
			if ipos+bodyLen > len(in) {
				return 0, ErrInputOverrun
			}
			if opos > len(out) {
				return 0, ErrOutputOverrun
			}
			bpLen, err := decodeBlock(in[ipos:ipos+bodyLen], out[opos:])
			if err != nil {
				return 0, err
			}
			if bpLen > MaxBlockSize {
				return 0, ErrPlaneOverflow
			}
			ipos += bodyLen

			scratch := make([]byte, bpLen)
			if err := planeTransform(out[opos:opos+bpLen], scratch, bpLen, -PlaneCount); err != nil {
				return 0, err
			}
			copy(out[opos:opos+bpLen], scratch)
			opos += bpLen

		default:
			return 0, ErrCodecInternal
		}
	}

	return opos, nil
}

// Decompress decodes a single LZJody block produced by Compress. opts.OutLen
// must be set to the exact size of the original uncompressed data.
func Decompress(block []byte, opts DecompressOptions) ([]byte, error) {
	if opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}
	out := make([]byte, opts.OutLen)
	n, err := DecompressInto(block, out, opts)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// DecompressInto decodes a single LZJody block into dst and returns the
// number of bytes written. dst must be at least opts.OutLen long.
func DecompressInto(block []byte, dst []byte, opts DecompressOptions) (int, error) {
	if opts.OutLen < 0 {
		return 0, ErrOptionsRequired
	}
	if len(block) < 2 {
		return 0, ErrInputOverrun
	}
	bodyLen := int(binary.LittleEndian.Uint16(block[0:2]))
	if opts.MaxInputSize > 0 && 2+bodyLen > opts.MaxInputSize {
		return 0, ErrInputOverrun
	}
	if 2+bodyLen > len(block) {
		return 0, ErrInputOverrun
	}

	n, err := decodeBlock(block[2:2+bodyLen], dst)
	if err != nil {
		return 0, err
	}
	return n, nil
}
