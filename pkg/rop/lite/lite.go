package lite

import (
	"context"
	"sync"

	"github.com/ib-77/almanac/pkg/rop"
	"github.com/ib-77/almanac/pkg/rop/solo"
)

// Run applies step to every result read from inputCh on the given number of
// lines. Failed inputs are forwarded unchanged. The returned channel is
// closed once every line has stopped.
func Run[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	step func(ctx context.Context, in In) rop.Result[Out], lines int) <-chan rop.Result[Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, step, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	step func(ctx context.Context, in In) rop.Result[Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case outCh <- solo.Switch(ctx, in, step):
			}
		}
	}
}
