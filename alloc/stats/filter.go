package stats

// AllocInitFilter selects allocations and grows by whether zeroing was requested.
type AllocInitFilter uint8

const (
	AllocInitNone AllocInitFilter = iota // any
	AllocInitUninitialized
	AllocInitZeroed
)

func (f AllocInitFilter) String() string {
	switch f {
	case AllocInitNone:
		return "none"
	case AllocInitUninitialized:
		return "uninitialized"
	case AllocInitZeroed:
		return "zeroed"
	default:
		return "AllocInitFilter(?)"
	}
}

func (f AllocInitFilter) indices() []int {
	switch f {
	case AllocInitNone:
		return []int{0, 1}
	case AllocInitUninitialized:
		return []int{0}
	case AllocInitZeroed:
		return []int{1}
	default:
		return nil
	}
}

// ReallocPlacementFilter selects grows and shrinks by whether the block was
// allowed to move.
type ReallocPlacementFilter uint8

const (
	PlacementNone ReallocPlacementFilter = iota // any
	PlacementMayMove
	PlacementInPlace
)

func (f ReallocPlacementFilter) String() string {
	switch f {
	case PlacementNone:
		return "none"
	case PlacementMayMove:
		return "may-move"
	case PlacementInPlace:
		return "in-place"
	default:
		return "ReallocPlacementFilter(?)"
	}
}

func (f ReallocPlacementFilter) indices() []int {
	switch f {
	case PlacementNone:
		return []int{0, 1}
	case PlacementMayMove:
		return []int{0}
	case PlacementInPlace:
		return []int{1}
	default:
		return nil
	}
}

// ResultFilter selects calls by outcome. For Owns, ResultOk means the block
// was owned.
type ResultFilter uint8

const (
	ResultNone ResultFilter = iota // any
	ResultOk
	ResultErr
)

func (f ResultFilter) String() string {
	switch f {
	case ResultNone:
		return "none"
	case ResultOk:
		return "ok"
	case ResultErr:
		return "err"
	default:
		return "ResultFilter(?)"
	}
}

func (f ResultFilter) indices() []int {
	switch f {
	case ResultNone:
		return []int{0, 1}
	case ResultOk:
		return []int{0}
	case ResultErr:
		return []int{1}
	default:
		return nil
	}
}
