// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

// Command bpxfrm applies (or reverses) the LZJody byte-plane transform
// to a file, independent of the block codec, for inspecting what the
// transform does to a given input (spec.md §4.2, SPEC_FULL.md §4.11).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-lzjody/lzjody"
)

func main() {
	if len(os.Args) != 4 {
		usage()
		os.Exit(1)
	}

	numPlanes := lzjody.PlaneCount
	switch os.Args[1] {
	case "f":
	case "r":
		numPlanes = -numPlanes
	default:
		usage()
		os.Exit(1)
	}

	in, err := os.Open(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error opening input file:", err)
		os.Exit(1)
	}
	defer in.Close()

	out, err := os.Create(os.Args[3])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error opening output file:", err)
		os.Exit(1)
	}
	defer out.Close()

	var total int64
	blk := make([]byte, lzjody.MaxBlockSize)
	xfrm := make([]byte, lzjody.MaxBlockSize)

	for {
		n, readErr := io.ReadFull(in, blk)
		if n == 0 {
			break
		}
		if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
			fmt.Fprintln(os.Stderr, "error reading input file:", readErr)
			os.Exit(1)
		}

		total += int64(n)
		if err := lzjody.PlaneTransform(blk[:n], xfrm[:n], n, numPlanes); err != nil {
			fmt.Fprintln(os.Stderr, "error: byte plane transform failed:", err)
			os.Exit(1)
		}
		if _, err := out.Write(xfrm[:n]); err != nil {
			fmt.Fprintln(os.Stderr, "error writing output file:", err)
			os.Exit(1)
		}

		if readErr == io.ErrUnexpectedEOF || readErr == io.EOF || n < len(blk) {
			break
		}
	}

	fmt.Fprintf(os.Stderr, "Success: %dx%d transformed %d bytes\n", lzjody.PlaneCount, lzjody.MaxBlockSize, total)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s f|r <input file> <output file>\n", os.Args[0])
}
