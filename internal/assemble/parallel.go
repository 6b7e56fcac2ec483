package assemble

import (
	"runtime"
	"sync"

	"github.com/inodb/vibe-germlines/internal/imgt"
)

// WorkItem holds an interpreted record, or the error that replaced it.
type WorkItem struct {
	Seq      int
	Item     *imgt.DataItem
	ParseErr error
}

// WorkResult holds the finished genes of one record.
type WorkResult struct {
	Seq      int
	Item     *imgt.DataItem
	ParseErr error
	Finished []*Finished
	Failures []error
}

// finishItem finishes every gene draft of a record.
func finishItem(w WorkItem) WorkResult {
	res := WorkResult{Seq: w.Seq, Item: w.Item, ParseErr: w.ParseErr}
	if w.Item == nil {
		return res
	}
	for _, d := range w.Item.Genes {
		f, err := Finish(d)
		if err != nil {
			res.Failures = append(res.Failures, err)
			continue
		}
		res.Finished = append(res.Finished, f)
	}
	return res
}

// ParallelFinish finishes work items using a pool of workers.
// Results are sent to the returned channel in arrival order (not sequence order).
// Use OrderedCollect to consume results in sequence-number order.
// If workers is 0, runtime.NumCPU() is used.
func ParallelFinish(items <-chan WorkItem, workers int) <-chan WorkResult {
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
				results <- finishItem(item)
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
