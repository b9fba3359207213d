package normalize

import (
	"runtime"
	"sync"

	"github.com/logust79/varnorm/internal/variant"
)

// WorkItem holds a raw variant identifier queued for normalization.
type WorkItem struct {
	Seq int
	ID  string
}

// WorkResult holds the normalization output for a single identifier.
type WorkResult struct {
	Seq        int
	ID         string
	Original   variant.Variant
	Normalized variant.Variant
	Err        error
}

// ParallelNormalize normalizes work items using a pool of workers.
// Results are sent to the returned channel in arrival order (not sequence
// order). Use OrderedCollect to consume results in sequence-number order.
// If workers is 0, runtime.NumCPU() is used.
//
// Normalize is pure apart from the reference fetch, so the workers share
// the Normalizer without locking.
func (n *Normalizer) ParallelNormalize(items <-chan WorkItem, leftAlign bool, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				r := WorkResult{Seq: item.Seq, ID: item.ID}
				r.Original, r.Err = variant.Parse(item.ID)
				if r.Err == nil {
					r.Normalized, r.Err = n.NormalizeVariant(r.Original, leftAlign)
				}
				results <- r
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// It buffers out-of-order results in a pending map and emits them
// as soon as the next expected sequence number is available.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
