// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import (
	"hash"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Server hashes whole messages submitted from any number of goroutines,
// grouping them into multi-lane batches.
type Server interface {
	// Sum returns the digest of msg.
	Sum(msg []byte) []byte
	// NewHash returns a hash.Hash backed by the server.
	NewHash() Hasher
	// Close stops the server. Sum on a closed server panics.
	Close()
}

// Hasher is a hash.Hash that can be closed.
type Hasher interface {
	hash.Hash
	Close()
}

const defaultFlushInterval = 10 * time.Microsecond

type serverOptions struct {
	logger     *zap.SugaredLogger
	flush      time.Duration
	noFallback bool
}

// Option configures NewServer.
type Option func(*serverOptions)

// WithLogger sets the logger of a server. The package logger is used
// otherwise.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *serverOptions) { o.logger = l }
}

// WithFlushInterval sets how long a partially filled batch waits for more
// messages before it is hashed.
func WithFlushInterval(d time.Duration) Option {
	return func(o *serverOptions) {
		if d > 0 {
			o.flush = d
		}
	}
}

// WithoutFallback keeps the batching server even when no vector unit was
// detected.
func WithoutFallback() Option {
	return func(o *serverOptions) { o.noFallback = true }
}

// Message to send across the request channel
type request struct {
	msg   []byte
	sumCh chan []byte
}

// laneServer - Type to implement parallel handling of hash invocations
type laneServer struct {
	alg       Algorithm
	requestCh chan request // Input channel
	done      chan struct{}
	closeOnce sync.Once
	lanes     [Lanes]request
	totalIn   int // Number of lanes waiting to be processed
	flush     time.Duration
	log       *zap.SugaredLogger
}

// NewServer creates a server for alg. Algorithms without a vector core,
// and CPUs without a vector unit, get a server that hashes every message
// on the calling goroutine.
func NewServer(alg Algorithm, opts ...Option) Server {
	o := serverOptions{flush: defaultFlushInterval}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log()
	}

	if !alg.vectorized() || (NativeLanes() == 1 && !o.noFallback) {
		o.logger.Debugw("simdhash: using scalar server", "algorithm", alg, "vector", vectorUnit())
		return &fallbackServer{alg: alg}
	}

	s := &laneServer{
		alg:       alg,
		requestCh: make(chan request),
		done:      make(chan struct{}),
		flush:     o.flush,
		log:       o.logger,
	}
	s.log.Debugw("simdhash: starting lane server", "algorithm", alg, "lanes", Lanes,
		"layout", vectorName, "width", vectorWidth, "vector", vectorUnit(), "flush", o.flush)

	// Start a single thread for reading from the input channel
	go s.process()
	return s
}

func (s *laneServer) Sum(msg []byte) []byte {
	sumCh := make(chan []byte, 1)
	select {
	case s.requestCh <- request{msg: msg, sumCh: sumCh}:
	case <-s.done:
		panic("simdhash: Sum on closed server")
	}
	return <-sumCh
}

func (s *laneServer) NewHash() Hasher {
	return newDigest(s.alg, s.Sum)
}

func (s *laneServer) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// process - Sole handler for reading from the input channel
// Requests already received when the server closes are still answered.
func (s *laneServer) process() {
	for {
		select {
		case req := <-s.requestCh:
			s.enqueue(req)
		case <-s.done:
			return
		}

		for busy := true; busy; {
			select {
			case req := <-s.requestCh:
				s.enqueue(req)

			case <-s.done:
				s.blocks()
				return

			case <-time.After(s.flush):
				if s.totalIn == 0 {
					// no work to do, go back to the blocking receive
					busy = false
					break
				}
				s.blocks()
			}
		}
	}
}

func (s *laneServer) enqueue(req request) {
	s.lanes[s.totalIn] = req
	s.totalIn++
	if s.totalIn == len(s.lanes) {
		// if all lanes are filled, process all lanes
		s.blocks()
	}
}

// hash the waiting lanes and send results back
func (s *laneServer) blocks() {
	if s.totalIn == 0 {
		return
	}
	size := s.alg.Size()
	inputs := make([][]byte, s.totalIn)
	for i := range inputs {
		inputs[i] = s.lanes[i].msg
	}
	out := make([]byte, len(inputs)*size)
	Hash(s.alg, inputs, out)

	for i := range inputs {
		s.lanes[i].sumCh <- out[i*size : (i+1)*size : (i+1)*size]
		s.lanes[i] = request{}
	}
	s.totalIn = 0
}
