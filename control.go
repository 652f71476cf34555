// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

// writeControl appends the control byte(s) for a command of the given
// class with the given length/offset field, choosing the compact
// ("short") form when the field fits and the full form otherwise
// (spec.md §4.1). class must already include any extra flag bits
// (e.g. classLZL) the caller wants ORed into the control byte.
func writeControl(out []byte, opos int, class byte, value uint16) (int, error) {
	if value > maxControl {
		return opos, ErrControlValueTooLarge
	}

	if class&classMask == classExt {
		if value > shortExtMax {
			out[opos] = class
			opos++
			out[opos] = byte(value >> 8)
			opos++
			out[opos] = byte(value)
			opos++
		} else {
			out[opos] = class | classShort
			opos++
			out[opos] = byte(value)
			opos++
		}
		return opos, nil
	}

	if value > shortMax {
		out[opos] = class | byte(value>>8)
		opos++
		out[opos] = byte(value)
		opos++
	} else {
		out[opos] = class | classShort | byte(value)
		opos++
	}
	return opos, nil
}

// controlHeader describes one decoded command header: its class (top
// bits for standard commands, or the extended subcommand code), and
// the combined length/offset field.
type controlHeader struct {
	class   byte
	lzl     bool // classLZ only: LZL flag was set
	control uint16
}

// readControl parses one control byte (plus, for the full form, its
// trailing byte) starting at in[ipos] and returns the decoded header
// and the next read position.
func readControl(in []byte, ipos int) (controlHeader, int, error) {
	if ipos >= len(in) {
		return controlHeader{}, ipos, ErrInputOverrun
	}
	c := in[ipos]
	ipos++

	mode := c & classMask
	short := c&classShort != 0

	if mode == classExt {
		sub := c & extMask
		switch sub {
		case subSeq8, subSeq16, subSeq32, subPlane:
		default:
			return controlHeader{}, ipos, ErrUnknownSubcommand
		}

		if ipos >= len(in) {
			return controlHeader{}, ipos, ErrInputOverrun
		}
		value := uint16(in[ipos])
		ipos++
		if !short {
			if ipos >= len(in) {
				return controlHeader{}, ipos, ErrInputOverrun
			}
			value = value<<8 | uint16(in[ipos])
			ipos++
		}
		return controlHeader{class: sub, control: value}, ipos, nil
	}

	lzl := c&classLZL != 0
	if short {
		return controlHeader{class: mode, lzl: lzl, control: uint16(c & shortMax)}, ipos, nil
	}

	if ipos >= len(in) {
		return controlHeader{}, ipos, ErrInputOverrun
	}
	// The full form's high byte borrows bit 0x10 (classLZL's slot) as a
	// fifth value bit so a run can reach exactly MaxBlockSize (0x1000);
	// for classLZ this bit doubles as the "length >= 256" flag, which
	// the LZ dispatch masks back out of the value with & 0x0fff.
	high := uint16(c & (classLZL | shortMax))
	value := high<<8 | uint16(in[ipos])
	ipos++
	return controlHeader{class: mode, lzl: lzl, control: value}, ipos, nil
}
