// Package chanx provides Channel, a bounded FIFO of messages shared by any
// number of producer and consumer goroutines.
//
// A channel is guarded by one mutex and one condition variable. It starts
// Open, can be Sealed (no new sends, queued messages still drain) and ends
// Closed (no sends, no receives). A receive that finds a sealed channel empty
// performs the Sealed -> Closed transition itself, so draining consumers end
// gracefully.
//
// Policies are chosen per call:
// - Send / SendWait: drop-oldest on overflow vs. block while full
// - Recv / TryRecv: wait for a message vs. poll
// - SendWith / RecvWith / Push / Pull: the same, with the policy as a parameter
//
// Capacity 0 makes the channel unbounded: it is never full and never drops.
//
// A Channel must not be copied after first use; share the *Channel.
// Call Close when the channel is no longer needed so that no goroutine stays
// blocked in SendWait or Recv.
package chanx
