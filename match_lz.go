// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

// matchLengthAt extends a candidate match at offset against cs.in[cs.ipos:]
// byte-wise, capped at MaxLZMatch and the remaining input.
func matchLengthAt(in []byte, ipos, offset, remain int) int {
	length := 0
	for length < remain && length < MaxLZMatch && in[offset+length] == in[ipos+length] {
		length++
	}
	return length
}

// findLZ searches for the best LZ back-reference at cs.ipos using the
// byte index built for the block, falling back to a linear scan when
// the current byte is too common for the index to have kept every
// occurrence (spec.md §4.4.2).
func findLZ(cs *compressorState) (bool, error) {
	if cs.ipos+MinLZMatch > cs.length {
		return false, nil
	}

	v := cs.in[cs.ipos]
	totalScans := int(cs.bi.count[v])
	if totalScans == 0 {
		return false, nil
	}

	remain := cs.length - cs.ipos
	bestLen := 0
	bestOffset := 0

	checkCandidate := func(offset int) bool {
		if remain < MinLZMatch {
			return false // no candidate at or after this point can match; caller should stop
		}
		if cs.in[offset+MinLZMatch-1] != cs.in[cs.ipos+MinLZMatch-1] {
			return true // quick-reject failed; keep scanning other candidates
		}
		length := matchLengthAt(cs.in, cs.ipos, offset, remain)
		if length >= MinLZMatch && length > bestLen {
			bestLen = length
			bestOffset = offset
			if cs.opts.FastLZ || length >= MaxLZMatch {
				return false
			}
		}
		return true
	}

	if totalScans < MaxLZByteScans {
		offsets := &cs.bi.offsets[v]
		for i := 0; i < totalScans; i++ {
			offset := int(offsets[i])
			if offset >= cs.ipos {
				break
			}
			if !checkCandidate(offset) {
				break
			}
		}
	} else {
		for offset := 0; offset < cs.ipos; offset++ {
			if !checkCandidate(offset) {
				break
			}
		}
	}

	if bestLen < MinLZMatch {
		return false, nil
	}

	if err := flushLiterals(cs); err != nil {
		return false, err
	}

	class := byte(classLZ)
	if bestLen >= 256 {
		class |= classLZL
	}
	opos, err := writeControl(cs.out, cs.opos, class, uint16(bestOffset))
	if err != nil {
		return false, err
	}
	cs.opos = opos

	cs.out[cs.opos] = byte(bestLen)
	cs.opos++
	if bestLen >= 256 {
		cs.out[cs.opos] = byte(bestLen >> 8)
		cs.opos++
	}

	cs.ipos += bestLen
	return true, nil
}
