// Package signal turns process signals into stats requests and cancellation.
package signal

import (
	"context"
	"os"
	gosignal "os/signal"
	"syscall"
	"time"

	"github.com/ydkadri/finders/internal/constants"
)

// Hint is sent on the stats channel after the first Ctrl+C.
const Hint = "Hint: Hit Ctrl+C again to exit"

// InterruptCh returns a channel for "please print stats" signalling. A
// second Ctrl+C within constants.InterruptTimeout, or any of SIGHUP, SIGTERM
// and SIGQUIT, calls cancel. Listening stops once ctx is done.
func InterruptCh(ctx context.Context, cancel context.CancelFunc) <-chan string {
	sigIntCh := make(chan os.Signal, 10)
	gosignal.Notify(sigIntCh, os.Interrupt)
	sigOtherCh := make(chan os.Signal, 10)
	gosignal.Notify(sigOtherCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)

	return watch(ctx, cancel, sigIntCh, sigOtherCh, func() {
		gosignal.Stop(sigIntCh)
		gosignal.Stop(sigOtherCh)
	})
}

func watch(ctx context.Context, cancel context.CancelFunc, sigIntCh, sigOtherCh <-chan os.Signal,
	stop func()) <-chan string {

	statsCh := make(chan string)

	go func() {
		defer stop()
		for {
			select {
			case <-sigIntCh:
				select {
				case statsCh <- Hint:
					select {
					case <-sigIntCh:
						cancel()
					case <-time.After(constants.InterruptTimeout):
					case <-ctx.Done():
						return
					}
				default:
					// Stats already requested.
				}
			case <-sigOtherCh:
				cancel()
			case <-ctx.Done():
				return
			}
		}
	}()
	return statsCh
}
