package async

import "sync"

// WaitAll waits for all the given errables to finish, and returns
// the first error reported by any of them, if any.
func WaitAll(chans ...<-chan error) error {
	var (
		wg    sync.WaitGroup
		once  sync.Once
		first error
	)
	wg.Add(len(chans))

	for _, ch := range chans {
		go func(ch <-chan error) {
			defer wg.Done()
			if err, open := <-ch; open && err != nil {
				once.Do(func() {
					first = err
				})
			}
		}(ch)
	}

	wg.Wait()
	return first
}
