package stats

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups digits so large counts stay readable in logs.
var printer = message.NewPrinter(language.English)

// String renders the counts on one line, e.g.
//
//	allocs=1,024 deallocs=1,000 grows=12 shrinks=0 owns=3
func (s Stats) String() string {
	return printer.Sprintf("allocs=%d deallocs=%d grows=%d shrinks=%d owns=%d",
		s.NumAllocs(), s.NumDeallocs(), s.NumGrows(), s.NumShrinks(), s.NumOwns())
}

// String renders each total followed by its failed share, e.g.
//
//	allocs=1,024 (err 2, zeroed 10) deallocs=1,000 grows=12 (err 1, in-place 4) shrinks=0 (err 0, in-place 0) owns=3 (foreign 1)
func (s FilteredStats) String() string {
	return printer.Sprintf(
		"allocs=%d (err %d, zeroed %d) deallocs=%d grows=%d (err %d, in-place %d) shrinks=%d (err %d, in-place %d) owns=%d (foreign %d)",
		s.NumAllocs(), s.NumAllocsFilter(AllocInitNone, ResultErr), s.NumAllocsFilter(AllocInitZeroed, ResultNone),
		s.NumDeallocs(),
		s.NumGrows(), s.NumGrowsFilter(PlacementNone, AllocInitNone, ResultErr),
		s.NumGrowsFilter(PlacementInPlace, AllocInitNone, ResultNone),
		s.NumShrinks(), s.NumShrinksFilter(PlacementNone, ResultErr),
		s.NumShrinksFilter(PlacementInPlace, ResultNone),
		s.NumOwns(), s.NumOwnsFilter(ResultErr),
	)
}
