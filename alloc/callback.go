package alloc

// CallbackRef receives a hook before and after every call a Proxy delegates.
// After-hooks get the call's arguments plus its outcome. Implementations embed
// NopCallbacks and override only the hooks they care about.
//
// Hooks observe; they must not retain or modify the blocks they are shown.
type CallbackRef interface {
	BeforeAlloc(l Layout)
	AfterAlloc(l Layout, b []byte, err error)
	BeforeAllocZeroed(l Layout)
	AfterAllocZeroed(l Layout, b []byte, err error)
	BeforeDealloc(b []byte, l Layout)
	AfterDealloc(b []byte, l Layout)

	BeforeGrow(b []byte, old, new Layout)
	AfterGrow(b []byte, old, new Layout, result []byte, err error)
	BeforeGrowZeroed(b []byte, old, new Layout)
	AfterGrowZeroed(b []byte, old, new Layout, result []byte, err error)
	BeforeShrink(b []byte, old, new Layout)
	AfterShrink(b []byte, old, new Layout, result []byte, err error)

	BeforeAllocateAll()
	AfterAllocateAll(b []byte, err error)
	BeforeAllocateAllZeroed()
	AfterAllocateAllZeroed(b []byte, err error)
	BeforeDeallocateAll()
	AfterDeallocateAll()

	BeforeGrowInPlace(b []byte, old, new Layout)
	AfterGrowInPlace(b []byte, old, new Layout, result []byte, err error)
	BeforeGrowInPlaceZeroed(b []byte, old, new Layout)
	AfterGrowInPlaceZeroed(b []byte, old, new Layout, result []byte, err error)
	BeforeShrinkInPlace(b []byte, old, new Layout)
	AfterShrinkInPlace(b []byte, old, new Layout, result []byte, err error)

	BeforeOwns(b []byte)
	AfterOwns(b []byte, owned bool)
}

// NopCallbacks implements every CallbackRef hook as a no-op.
type NopCallbacks struct{}

var _ CallbackRef = NopCallbacks{}

func (NopCallbacks) BeforeAlloc(Layout)                                           {}
func (NopCallbacks) AfterAlloc(Layout, []byte, error)                             {}
func (NopCallbacks) BeforeAllocZeroed(Layout)                                     {}
func (NopCallbacks) AfterAllocZeroed(Layout, []byte, error)                       {}
func (NopCallbacks) BeforeDealloc([]byte, Layout)                                 {}
func (NopCallbacks) AfterDealloc([]byte, Layout)                                  {}
func (NopCallbacks) BeforeGrow([]byte, Layout, Layout)                            {}
func (NopCallbacks) AfterGrow([]byte, Layout, Layout, []byte, error)              {}
func (NopCallbacks) BeforeGrowZeroed([]byte, Layout, Layout)                      {}
func (NopCallbacks) AfterGrowZeroed([]byte, Layout, Layout, []byte, error)        {}
func (NopCallbacks) BeforeShrink([]byte, Layout, Layout)                          {}
func (NopCallbacks) AfterShrink([]byte, Layout, Layout, []byte, error)            {}
func (NopCallbacks) BeforeAllocateAll()                                           {}
func (NopCallbacks) AfterAllocateAll([]byte, error)                               {}
func (NopCallbacks) BeforeAllocateAllZeroed()                                     {}
func (NopCallbacks) AfterAllocateAllZeroed([]byte, error)                         {}
func (NopCallbacks) BeforeDeallocateAll()                                         {}
func (NopCallbacks) AfterDeallocateAll()                                          {}
func (NopCallbacks) BeforeGrowInPlace([]byte, Layout, Layout)                     {}
func (NopCallbacks) AfterGrowInPlace([]byte, Layout, Layout, []byte, error)       {}
func (NopCallbacks) BeforeGrowInPlaceZeroed([]byte, Layout, Layout)               {}
func (NopCallbacks) AfterGrowInPlaceZeroed([]byte, Layout, Layout, []byte, error) {}
func (NopCallbacks) BeforeShrinkInPlace([]byte, Layout, Layout)                   {}
func (NopCallbacks) AfterShrinkInPlace([]byte, Layout, Layout, []byte, error)     {}
func (NopCallbacks) BeforeOwns([]byte)                                            {}
func (NopCallbacks) AfterOwns([]byte, bool)                                       {}
