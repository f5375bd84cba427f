package chanx

// Stats holds cumulative counters since the channel was created.
type Stats struct {
	// Sent counts accepted messages.
	Sent uint64
	// Received counts delivered messages.
	Received uint64
	// Dropped counts messages evicted by overflow.
	Dropped uint64
	// Rejected counts sends refused because the channel was sealed or closed.
	Rejected uint64
}

// Pending is the number of accepted messages that were neither delivered nor
// evicted.
func (s Stats) Pending() uint64 {
	return s.Sent - s.Received - s.Dropped
}
