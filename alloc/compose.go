package alloc

// Embedding the exported interfaces directly would make each field name shadow
// the method of the same name (Owns.Owns, AllocateAll.AllocateAll), so the
// composites embed these renamed copies instead.
type (
	core    interface{ Allocator }
	bulk    interface{ AllocateAll }
	inPlace interface{ ReallocateInPlace }
	owner   interface{ Owns }
)

// expose returns an Allocator whose dynamic type implements exactly the optional
// capabilities that are non-nil. Decorators use it so that type assertions on
// their result reflect what the wrapped allocator can actually do.
func expose(a Allocator, all AllocateAll, rip ReallocateInPlace, o Owns) Allocator {
	switch {
	case all != nil && rip != nil && o != nil:
		return struct {
			core
			bulk
			inPlace
			owner
		}{a, all, rip, o}
	case all != nil && rip != nil:
		return struct {
			core
			bulk
			inPlace
		}{a, all, rip}
	case all != nil && o != nil:
		return struct {
			core
			bulk
			owner
		}{a, all, o}
	case rip != nil && o != nil:
		return struct {
			core
			inPlace
			owner
		}{a, rip, o}
	case all != nil:
		return struct {
			core
			bulk
		}{a, all}
	case rip != nil:
		return struct {
			core
			inPlace
		}{a, rip}
	case o != nil:
		return struct {
			core
			owner
		}{a, o}
	default:
		return struct{ core }{a}
	}
}
