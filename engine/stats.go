package engine

import "fmt"

// Stats counts simulation activity since start
type Stats struct {
	Ticks    uint64
	Launched uint64
	Exploded uint64
	Born     uint64 // Inert pellets created by bursts
	Vanished uint64 // Removed pellets, bursts included
	Live     int
}

func (s Stats) String() string {
	return fmt.Sprintf("tick=%d live=%d launched=%d exploded=%d born=%d vanished=%d",
		s.Ticks, s.Live, s.Launched, s.Exploded, s.Born, s.Vanished)
}
