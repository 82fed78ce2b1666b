package bytetest

import (
	"sync"
	"testing"
)

// Stress runs f from workers goroutines simultaneously and waits for
// all of them to finish. A start barrier ensures the goroutines
// actually overlap rather than running one after another.
//
// Use it to verify that shared immutable values (buffers, digests)
// read identically under concurrent access; run such tests with the
// race detector enabled.
func Stress(t *testing.T, workers int, f func(worker int)) {
	t.Helper()

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			f(i)
		}()
	}
	close(start)
	wg.Wait()
}
