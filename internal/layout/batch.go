package layout

import (
	"runtime"
	"sync"

	"layout-visualizer/internal/specs"
)

// Result is the outcome of one profile in a batch.
type Result struct {
	Profile  specs.Profile
	Markings Markings
	Err      error
}

// ComputeAll lays out every profile on up to workers goroutines (NumCPU when
// workers <= 0). Results are in the same order as profiles.
func ComputeAll(profiles []specs.Profile, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(profiles) {
		workers = len(profiles)
	}

	results := make([]Result, len(profiles))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each index is written by exactly one worker.
			for i := range jobs {
				m, err := ComputeProfile(profiles[i])
				results[i] = Result{Profile: profiles[i], Markings: m, Err: err}
			}
		}()
	}
	for i := range profiles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
