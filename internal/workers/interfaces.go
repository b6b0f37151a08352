// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts
// and stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Start launches the worker's processing and must not block; Stop signals
// the worker to finish and blocks until it has terminated.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // launch background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // wait for background processing to finish
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
