// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import (
	"sort"

	"github.com/remeh/sizedwaitgroup"
)

// Helper struct for sorting messages based on length
type lane struct {
	len int
	pos int
}

type lanes []lane

func (lns lanes) Len() int           { return len(lns) }
func (lns lanes) Swap(i, j int)      { lns[i], lns[j] = lns[j], lns[i] }
func (lns lanes) Less(i, j int) bool { return lns[i].len < lns[j].len }

// batchByLength orders message indices by length and cuts them into
// batches of at most Lanes, so that messages sharing a batch need about
// the same number of transforms.
func batchByLength(msgs [][]byte) (batches [][]int) {
	sorted := make(lanes, len(msgs))
	for i, m := range msgs {
		sorted[i] = lane{len(m), i}
	}
	sort.Sort(sorted)

	for start := 0; start < len(sorted); start += Lanes {
		end := start + Lanes
		if end > len(sorted) {
			end = len(sorted)
		}
		batch := make([]int, 0, end-start)
		for _, s := range sorted[start:end] {
			batch = append(batch, s.pos)
		}
		batches = append(batches, batch)
	}
	return
}

// HashMany returns the digests of any number of messages, in input order.
// Batches of Lanes messages are hashed on up to workers goroutines, each
// with its own Context.
func HashMany(alg Algorithm, msgs [][]byte, workers int) [][]byte {
	out := make([][]byte, len(msgs))
	size := alg.Size()
	if size == 0 {
		return out
	}
	if workers < 1 {
		workers = 1
	}

	swg := sizedwaitgroup.New(workers)
	for _, batch := range batchByLength(msgs) {
		swg.Add()
		go func(batch []int) {
			defer swg.Done()
			buffers := make([][]byte, len(batch))
			for i, idx := range batch {
				buffers[i] = msgs[idx]
			}
			sums := make([]byte, len(batch)*size)
			Hash(alg, buffers, sums)
			for i, idx := range batch {
				out[idx] = sums[i*size : (i+1)*size : (i+1)*size]
			}
		}(batch)
	}
	swg.Wait()
	return out
}
