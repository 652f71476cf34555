// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

// Package parallel distributes independent LZJody block encodes (or
// decodes) across a fixed worker pool and restores output ordering by
// sequence number before handing frames to a single writer, the same
// shape original_source/lzjody_util.c's THREADED path uses (a
// minimum-block-number scan gates which completed block writes next).
package parallel

import (
	"errors"
	"io"
	"runtime"
	"sync"

	"github.com/go-lzjody/lzjody"
	"github.com/go-lzjody/lzjody/frame"
)

// DefaultNumWorkers is 0, meaning use runtime.GOMAXPROCS(0).
const DefaultNumWorkers = 0

// Dispatcher runs a fixed pool of worker goroutines that each
// independently call lzjody.Compress/Decompress on one block at a
// time; no per-call codec state is ever shared across workers.
type Dispatcher struct {
	numWorkers int
	opts       lzjody.CompressOptions

	jobChan chan job

	wg        sync.WaitGroup
	running   bool
	runningMu sync.Mutex
}

type job struct {
	seq      int
	data     []byte
	resultCh chan<- result
}

type result struct {
	seq        int
	compressed []byte
	decoded    []byte
	raw        []byte
	err        error
}

// NewDispatcher creates a dispatcher with the given worker count (<= 0
// uses runtime.GOMAXPROCS(0)) and compression options for CompressStream.
func NewDispatcher(numWorkers int, opts lzjody.CompressOptions) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &Dispatcher{
		numWorkers: numWorkers,
		opts:       opts,
		jobChan:    make(chan job, numWorkers*2),
	}
}

// Start launches the worker goroutines.
func (d *Dispatcher) Start() error {
	d.runningMu.Lock()
	defer d.runningMu.Unlock()

	if d.running {
		return errors.New("parallel: dispatcher already running")
	}
	return d.start()
}

// Stop closes the job channel and waits for all workers to drain.
func (d *Dispatcher) Stop() {
	d.runningMu.Lock()
	defer d.runningMu.Unlock()

	if !d.running {
		return
	}
	close(d.jobChan)
	d.wg.Wait()
	d.running = false
	d.jobChan = make(chan job, d.numWorkers*2)
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.jobChan {
		j.resultCh <- d.runJob(j)
	}
}

func (d *Dispatcher) runJob(j job) result {
	compressed, err := lzjody.Compress(j.data, d.opts)
	return result{seq: j.seq, compressed: compressed, raw: j.data, err: err}
}

// CompressStream reads fixed-size blocks from r (the last block may be
// shorter), compresses them independently across the worker pool, and
// writes each as an extended frame to w in ascending sequence order,
// regardless of which worker finished first.
func (d *Dispatcher) CompressStream(r io.Reader, w io.Writer) error {
	d.runningMu.Lock()
	if !d.running {
		if err := d.start(); err != nil {
			d.runningMu.Unlock()
			return err
		}
	}
	d.runningMu.Unlock()

	resultCh := make(chan result, d.numWorkers*2)
	totalCh := make(chan int, 1)

	var submitErr error
	go func() {
		seq := 0
		buf := make([]byte, lzjody.MaxBlockSize)
		for {
			n, err := io.ReadFull(r, buf)
			if n > 0 {
				block := make([]byte, n)
				copy(block, buf[:n])
				d.jobChan <- job{seq: seq, data: block, resultCh: resultCh}
				seq++
			}
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			if err != nil {
				submitErr = err
				break
			}
		}
		totalCh <- seq
	}()

	pending := make(map[int]result)
	next := 0
	total := -1
	var writeErr error

	for total < 0 || next < total {
		select {
		case res := <-resultCh:
			pending[res.seq] = res
		case total = <-totalCh:
			continue
		}

		for {
			res, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			if writeErr != nil {
				continue
			}
			if res.err != nil {
				writeErr = res.err
				continue
			}
			if err := frame.WriteFrame(w, res.compressed, res.raw, 0); err != nil {
				writeErr = err
			}
		}
	}

	if submitErr != nil {
		return submitErr
	}
	return writeErr
}

// start is Start without the lock acquired by the caller already holding it.
func (d *Dispatcher) start() error {
	d.wg.Add(d.numWorkers)
	for i := 0; i < d.numWorkers; i++ {
		go d.worker()
	}
	d.running = true
	return nil
}

// DecompressStream reads extended frames from r in order, decodes each
// independently on numWorkers decode goroutines started for this call
// rather than on the compression pool (order is already established
// by the frame sequence in the stream, so this bounds out-of-order
// decode buffering the same way CompressStream bounds encode
// buffering), and writes the reconstructed bytes to w.
func (d *Dispatcher) DecompressStream(r io.Reader, w io.Writer) error {
	d.runningMu.Lock()
	if !d.running {
		if err := d.start(); err != nil {
			d.runningMu.Unlock()
			return err
		}
	}
	d.runningMu.Unlock()

	type decodeJob struct {
		seq     int
		payload []byte
		raw     bool
	}
	jobs := make(chan decodeJob, d.numWorkers*2)
	resultCh := make(chan result, d.numWorkers*2)

	var wg sync.WaitGroup
	wg.Add(d.numWorkers)
	for i := 0; i < d.numWorkers; i++ {
		go func() {
			defer wg.Done()
			for dj := range jobs {
				if dj.raw {
					resultCh <- result{seq: dj.seq, decoded: dj.payload}
					continue
				}
				dst := make([]byte, lzjody.MaxBlockSize)
				n, err := lzjody.DecompressInto(dj.payload, dst, lzjody.DefaultDecompressOptions(lzjody.MaxBlockSize))
				resultCh <- result{seq: dj.seq, decoded: dst[:n], err: err}
			}
		}()
	}

	var readErr error
	go func() {
		defer close(jobs)
		seq := 0
		for {
			payload, flags, err := frame.ReadFrame(r)
			if err == io.EOF {
				return
			}
			if err != nil {
				readErr = err
				return
			}
			jobs <- decodeJob{seq: seq, payload: payload, raw: flags&frame.NoCompress != 0}
			seq++
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(resultCh)
		close(done)
	}()

	pending := make(map[int]result)
	next := 0
	var writeErr error
	for res := range resultCh {
		pending[res.seq] = res
		for {
			r2, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if writeErr != nil {
				continue
			}
			if r2.err != nil {
				writeErr = r2.err
				continue
			}
			if _, err := w.Write(r2.decoded); err != nil {
				writeErr = err
			}
		}
	}
	<-done

	if readErr != nil {
		return readErr
	}
	return writeErr
}
