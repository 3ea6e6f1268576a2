package stats

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Slots of the plain counters.
const (
	statAllocs = iota
	statDeallocs
	statGrows
	statShrinks
	statOwns
	numStats
)

// Slots of the filtered counters. Each kind occupies a contiguous range
// indexed by its classification, outcome last:
//
//	allocs   [init][result]            4 slots
//	deallocs                           1 slot
//	grows    [placement][init][result] 8 slots
//	shrinks  [placement][result]       4 slots
//	owns     [result]                  2 slots
const (
	fAllocs     = 0
	fDeallocs   = fAllocs + 4
	fGrows      = fDeallocs + 1
	fShrinks    = fGrows + 8
	fOwns       = fShrinks + 4
	numFiltered = fOwns + 2
)

// reader is the read side shared by live counters and snapshots.
type reader interface {
	get(slot int) uint64
}

// store is a fixed set of counter slots.
type store interface {
	reader
	inc(slot int)
}

// outcome maps an error to its result index.
func outcome(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

type counts [numStats]uint64

func (c *counts) inc(slot int)        { c[slot]++ }
func (c *counts) get(slot int) uint64 { return c[slot] }

type filteredCounts [numFiltered]uint64

func (c *filteredCounts) inc(slot int)        { c[slot]++ }
func (c *filteredCounts) get(slot int) uint64 { return c[slot] }

// paddedUint64 keeps each atomic slot on its own cache line so that
// concurrent increments of different kinds do not contend.
type paddedUint64 struct {
	v atomic.Uint64
	_ cpu.CacheLinePad
}

type atomicCounts [numStats]paddedUint64

func (c *atomicCounts) inc(slot int)        { c[slot].v.Add(1) }
func (c *atomicCounts) get(slot int) uint64 { return c[slot].v.Load() }

type atomicFilteredCounts [numFiltered]paddedUint64

func (c *atomicFilteredCounts) inc(slot int)        { c[slot].v.Add(1) }
func (c *atomicFilteredCounts) get(slot int) uint64 { return c[slot].v.Load() }
