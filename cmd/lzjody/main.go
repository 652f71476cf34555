// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

// Command lzjody compresses or decompresses a stream of LZJody blocks
// between stdin and stdout, framed per the extended block header
// (spec.md §6.2), distributing block encodes/decodes across a worker
// pool (spec.md §6.4).
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/go-lzjody/lzjody"
	"github.com/go-lzjody/lzjody/frame"
	"github.com/go-lzjody/lzjody/parallel"
)

const (
	exitOK           = 0
	exitUsage        = 1
	exitReadError    = 2
	exitWriteError   = 3
	exitFramingError = 4
	exitDecodeError  = 5
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		doCompress   = flag.Bool("c", false, "compress stdin to stdout")
		doDecompress = flag.Bool("d", false, "decompress stdin to stdout")
		workers      = flag.Int("workers", parallel.DefaultNumWorkers, "number of worker goroutines (0 = GOMAXPROCS)")
		fastLZ       = flag.Bool("fast", false, "accept the first LZ match instead of the longest")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *doCompress == *doDecompress {
		logger.Error().Msg("exactly one of -c or -d is required")
		os.Exit(exitUsage)
	}

	opts := lzjody.CompressOptions{FastLZ: *fastLZ}
	d := parallel.NewDispatcher(*workers, opts)
	if err := d.Start(); err != nil {
		logger.Error().Err(err).Msg("failed to start dispatcher")
		os.Exit(exitUsage)
	}
	defer d.Stop()

	if *doCompress {
		if err := d.CompressStream(os.Stdin, os.Stdout); err != nil {
			logger.Error().Err(err).Msg("compression failed")
			os.Exit(classifyErrorExitCode(err))
		}
		logger.Debug().Msg("compression complete")
		os.Exit(exitOK)
	}

	if err := d.DecompressStream(os.Stdin, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("decompression failed")
		os.Exit(classifyErrorExitCode(err))
	}
	logger.Debug().Msg("decompression complete")
}

// classifyErrorExitCode maps a pipeline error to one of the distinct
// non-zero exit codes spec.md §7 item 4 calls for (read, write,
// framing, decode failures each get their own code).
func classifyErrorExitCode(err error) int {
	switch err {
	case lzjody.ErrInputOverrun, lzjody.ErrOutputOverrun, lzjody.ErrLZOffsetInvalid, lzjody.ErrUnknownSubcommand,
		lzjody.ErrSeqOverflow, lzjody.ErrPlaneOverflow, lzjody.ErrCodecInternal:
		return exitDecodeError
	case frame.ErrShortRead:
		return exitReadError
	case frame.ErrFrameTooLarge, frame.ErrLengthOverflow:
		return exitFramingError
	default:
		return exitWriteError
	}
}
