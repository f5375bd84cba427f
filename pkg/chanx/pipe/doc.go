// Package pipe connects chanx channels to Go channels and to worker
// goroutines. It does not change channel semantics; it provides the
// scaffolding for producer and consumer stages with controlled concurrency.
//
// Common usage:
// - Feed / FeedChan: push values or a Go channel into a Channel
// - ToChan / Collect: read a Channel as a Go channel or a slice
// - Run / Turnout: run an engine over a Channel with a fixed number of lines,
//   sealing the output once every line has stopped
//
// Behaviour is tuned through the context: WithSendPolicy picks how stages
// send, WithCancelPolicy decides whether a cancelled context seals or closes
// the channels a stage is blocked on, WithLines sets the default worker count
// and WithProcessRemaining controls whether unsent input is reported after a
// rejection.
package pipe
