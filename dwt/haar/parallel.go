package haar

import "sync"

// transformRowsParallel splits the batch into contiguous row chunks and runs
// the pyramid for each chunk on its own goroutine. Stages within a row stay
// strictly sequential; rows are independent, so the final join is the only
// synchronization point.
func transformRowsParallel(dst, signals [][]float64, norm float64, workers int) {
	rows := len(signals)
	if workers > rows {
		workers = rows
	}

	trunc := len(dst[0])
	chunk := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < rows; start += chunk {
		end := start + chunk
		if end > rows {
			end = rows
		}

		wg.Add(1)

		go func(start, end int) {
			defer wg.Done()

			work := make([]float64, trunc)
			for i := start; i < end; i++ {
				copy(work, signals[i][:trunc])
				transformRow(dst[i], work, norm)
			}
		}(start, end)
	}

	wg.Wait()
}
