// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

// copyBackRefByteWise copies length bytes from dst[srcPos:] to
// dst[dstPos:] one byte at a time, exactly as spec.md §9 requires: a
// standard memmove-style copy (forward-or-backward direction chosen by
// distance, or via a temporary) produces different output than this
// format assumes whenever the match offset is smaller than the match
// length, because newly written output bytes become valid source
// bytes for the rest of the match (e.g. offset=1 reproduces a run of
// one repeated byte). dst must already have room for dstPos+length
// bytes; callers check bounds before calling.
func copyBackRefByteWise(dst []byte, dstPos, srcPos, length int) {
	for i := 0; i < length; i++ {
		dst[dstPos+i] = dst[srcPos+i]
	}
}
