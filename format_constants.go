// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

// LZJody wire format constants: control-byte class bits, extended
// subcommand codes, and the fixed algorithm parameters from
// SPEC_FULL.md §6.3.

// Top-bits control byte classes (standard form).
const (
	classShort = 0x80 // compact form: value/length fits in the low bits
	classLZ    = 0x60 // LZ back-reference
	classRLE   = 0x40 // RLE run
	classLit   = 0x20 // literal run
	classLZL   = 0x10 // LZ match flag: length > 255
	classExt   = 0x00 // extended; low nibble names the subcommand

	classMask = 0x60 // mask isolating LZ/RLE/Lit from the top bits
	extMask   = 0x0f // mask isolating the extended subcommand nibble
)

// Extended subcommand codes (low nibble of an extended control byte).
const (
	subSeq8  = 0x01
	subSeq16 = 0x02
	subSeq32 = 0x03
	subPlane = 0x04
)

// Maximum value a compact ("short") field may carry.
const (
	shortMax    = 0x0f // standard classes: low 4 bits
	shortExtMax = 0xff // extended classes: full trailing byte
	maxControl  = 0x1000
)

// Fixed algorithm parameters (SPEC_FULL.md §6.3).
const (
	// MaxBlockSize is the largest input block the codec accepts.
	MaxBlockSize = 4096
	// MinLZMatch is the shortest run of bytes the LZ finder will emit as a back-reference.
	MinLZMatch = 4
	// MaxLZMatch is the longest run of bytes a single LZ command can encode.
	MaxLZMatch = 4095
	// MinRLELength is the shortest run the RLE finder will emit.
	MinRLELength = 3
	// MinSeq8 is the minimum element count for an 8-bit arithmetic sequence.
	MinSeq8 = 3
	// MinSeq16 is the minimum element count for a 16-bit arithmetic sequence.
	MinSeq16 = 4
	// MinSeq32 is the minimum element count for a 32-bit arithmetic sequence.
	MinSeq32 = 8
	// MinPlaneLength is the shortest literal run for which recursive plane compression is attempted.
	MinPlaneLength = 8
	// MaxLZByteScans caps the number of offsets tracked per byte value before falling back to a linear scan.
	MaxLZByteScans = 2048
	// PlaneCount is the number of byte planes used by literal-flush recursion.
	PlaneCount = 4

	// frameSlack is the extra headroom (length prefix + worst-case expansion) callers
	// must provide beyond MaxBlockSize when sizing an output buffer.
	frameSlack = 4
)
