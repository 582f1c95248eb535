package worker

import (
	"context"
	"runtime"
	"sort"
	"sync"

	gv "github.com/gogltf/validator"
)

// BatchValidator provides a simple interface for validating a fixed set
// of documents in parallel. Results come back in submission order, so a
// batch run is deterministic even though execution is not.
type BatchValidator struct {
	validator BatchValidatorFunc
	workers   int
}

// BatchValidatorFunc is the function signature for validating a single
// document.
type BatchValidatorFunc func(ctx context.Context, document []byte) (*gv.Result, error)

// NewBatchValidator creates a new batch validator.
func NewBatchValidator(validateFunc BatchValidatorFunc, workers int) *BatchValidator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchValidator{
		validator: validateFunc,
		workers:   workers,
	}
}

// ValidateBatch validates multiple documents in parallel.
func (bv *BatchValidator) ValidateBatch(ctx context.Context, documents [][]byte) *BatchResult {
	if len(documents) == 0 {
		return &BatchResult{Results: make([]*JobResult, 0)}
	}

	// For small batches, parallelism is not worth the setup
	if len(documents) <= 2 {
		return bv.validateSequential(ctx, documents)
	}

	return bv.validateParallel(ctx, documents)
}

func (bv *BatchValidator) validateSequential(ctx context.Context, documents [][]byte) *BatchResult {
	results := make([]*JobResult, 0, len(documents))

	for _, document := range documents {
		select {
		case <-ctx.Done():
			return batchResultOf(results, len(documents))
		default:
		}

		result, err := bv.validator(ctx, document)
		results = append(results, &JobResult{
			Result: result,
			Error:  err,
		})
	}

	return batchResultOf(results, len(documents))
}

func (bv *BatchValidator) validateParallel(ctx context.Context, documents [][]byte) *BatchResult {
	numWorkers := bv.workers
	if numWorkers > len(documents) {
		numWorkers = len(documents)
	}

	jobs := make(chan indexedDocument, len(documents))
	resultsChan := make(chan *indexedResult, len(documents))

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				result, err := bv.validator(ctx, job.document)
				resultsChan <- &indexedResult{
					index:  job.index,
					result: result,
					err:    err,
				}
			}
		}()
	}

	for i, document := range documents {
		jobs <- indexedDocument{index: i, document: document}
	}
	close(jobs)

	wg.Wait()
	close(resultsChan)

	// Restore submission order
	indexed := make([]*indexedResult, 0, len(documents))
	for r := range resultsChan {
		indexed = append(indexed, r)
	}
	sort.Slice(indexed, func(a, b int) bool {
		return indexed[a].index < indexed[b].index
	})

	results := make([]*JobResult, 0, len(indexed))
	for _, r := range indexed {
		results = append(results, &JobResult{
			Result: r.result,
			Error:  r.err,
		})
	}

	return batchResultOf(results, len(documents))
}

func batchResultOf(results []*JobResult, total int) *BatchResult {
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		}
	}
	return &BatchResult{
		Results:       results,
		TotalJobs:     total,
		CompletedJobs: len(results),
		FailedJobs:    failed,
	}
}

type indexedDocument struct {
	index    int
	document []byte
}

type indexedResult struct {
	index  int
	result *gv.Result
	err    error
}
