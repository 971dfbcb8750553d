package pipeline

import (
	"sync"
)

// NewAnalysisSplitter copies every analysis to n output channels.
func NewAnalysisSplitter(n int) func(in <-chan Analysis) []chan Analysis {

	return func(in <-chan Analysis) []chan Analysis {
		outs := make([]chan Analysis, n)
		// init channels
		for i := 0; i < n; i++ {
			outs[i] = make(chan Analysis)
		}

		go func() {
			defer closeAllChannels(outs)
			var wg sync.WaitGroup

			for analysis := range in {
				wg.Add(1)
				go func(analysis Analysis) {
					defer wg.Done()
					for _, out := range outs {
						out <- analysis
					}
				}(analysis)

			}

			wg.Wait()
		}()
		return outs
	}
}

func closeAllChannels(outs []chan Analysis) {
	for _, out := range outs {
		close(out)
	}
}
