package arena

// SizeInUse returns the total number of bytes currently allocated across
// the chain, including padding introduced by alignment.
func (a *Arena) SizeInUse() int {
	if a.closed {
		return 0
	}
	sum := 0
	for b := a.head; b != nil; b = b.next {
		sum += int(b.off)
	}
	return sum
}

// Capacity returns the total reserved capacity of all blocks in the chain.
func (a *Arena) Capacity() int {
	if a.closed {
		return 0
	}
	sum := 0
	for b := a.head; b != nil; b = b.next {
		sum += int(b.capacity())
	}
	return sum
}

// NumBlocks returns the number of blocks in the chain.
func (a *Arena) NumBlocks() int {
	if a.closed {
		return 0
	}
	n := 0
	for b := a.head; b != nil; b = b.next {
		n++
	}
	return n
}

// BlockSize returns the configured minimum block capacity.
func (a *Arena) BlockSize() int {
	return int(a.blockSize)
}

// Utilization returns the ratio of bytes in use to reserved capacity, in
// [0.0, 1.0]. Returns 0 for a closed arena.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Stats is a point-in-time snapshot of arena accounting.
type Stats struct {
	SizeInUse   int     // bytes currently allocated, padding included
	Capacity    int     // total reserved capacity in bytes
	NumBlocks   int     // blocks in the chain
	BlockSize   int     // configured minimum block capacity
	Utilization float64 // SizeInUse / Capacity
}

// Metrics returns a snapshot of the arena's accounting counters.
func (a *Arena) Metrics() Stats {
	return Stats{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumBlocks:   a.NumBlocks(),
		BlockSize:   a.BlockSize(),
		Utilization: a.Utilization(),
	}
}
