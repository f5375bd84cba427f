// Package msg provides fixed-arity tuple messages for chanx channels.
//
// A message carrying several values of different types travels as one unit:
// it is copied into the queue on send and copied out on receive, so readers
// never observe a partially written message.
//
// Key constructs:
// - Pair, Triple, Quad: tuple value types with Of2/Of3/Of4 and Unpack
// - New2/New3/New4: construct channels of tuples
// - Send2/SendWait2/Recv2/TryRecv2 and the 3- and 4-ary forms: spread the
//   tuple over plain arguments and results
package msg
