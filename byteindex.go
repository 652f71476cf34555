// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

import "sync"

// byteIndex holds, per byte value, the ascending list of offsets where
// that value occurs within the block currently being encoded. It is
// rebuilt (via reset, not reallocation) on every block. The backing
// arrays are ~1 MiB; byteIndexPool lets callers reuse one per worker
// goroutine instead of paying that allocation on every Compress call
// (SPEC_FULL.md §3, §9 — adapted from WoozyMasta-lzo's sliding-window
// dictionary pool).
type byteIndex struct {
	offsets [256][MaxLZByteScans]int32
	count   [256]uint16
}

var byteIndexPool = sync.Pool{
	New: func() any {
		return &byteIndex{}
	},
}

func acquireByteIndex() *byteIndex {
	bi := byteIndexPool.Get().(*byteIndex)
	for v := range bi.count {
		bi.count[v] = 0
	}
	return bi
}

func releaseByteIndex(bi *byteIndex) {
	if bi == nil {
		return
	}
	byteIndexPool.Put(bi)
}

// build scans in[0 : length-MinLZMatch] and records each byte's offsets,
// stopping once a value's population reaches MaxLZByteScans (spec.md §4.3).
func (bi *byteIndex) build(in []byte, length int) {
	if length < MinLZMatch {
		return
	}
	limit := length - MinLZMatch
	for pos := 0; pos < limit; pos++ {
		c := in[pos]
		if int(bi.count[c]) >= MaxLZByteScans {
			continue
		}
		bi.offsets[c][bi.count[c]] = int32(pos)
		bi.count[c]++
	}
}
