// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

// CompressOptions configures Compress/CompressInto.
type CompressOptions struct {
	// FastLZ makes the LZ finder accept the first match >= MinLZMatch
	// instead of searching for the longest one.
	FastLZ bool
	// NoPrefix disables reserving/writing the 2-byte length prefix;
	// the caller is framing the block itself (see package frame).
	NoPrefix bool

	// realFlush disables recursive plane compression in literal flush.
	// Only ever set by the literal-flush recursion on itself; never by
	// a caller, so it is unexported (see spec.md's REALFLUSH note and
	// SPEC_FULL.md §9 on preferring a tagged-state parameter).
	realFlush bool
}

// DecompressOptions configures Decompress/DecompressInto.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required for buffer allocation and safety).
	OutLen int
	// MaxInputSize limits the block size (length prefix plus body) DecompressInto accepts (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) DecompressOptions {
	return DecompressOptions{OutLen: outLen}
}
