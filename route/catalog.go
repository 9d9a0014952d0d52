package route

import "sort"

// Catalog is the priority ordered list of route kinds registered with a resolver.
// Earlier entries are preferred: fastest and cheapest for stablecoins first, most general last.
type Catalog []RouteKind

// DefaultCatalog registers every known kind in priority order.
var DefaultCatalog = Catalog{
	AutomaticFast,
	ManualFast,
	AutomaticGeneric,
	ManualGeneric,
}

// Kinds returns a copy of the registered kinds.
func (c Catalog) Kinds() []RouteKind {
	return append([]RouteKind(nil), c...)
}

func (c Catalog) Contains(kind RouteKind) bool {
	return c.priority(kind) >= 0
}

func (c Catalog) priority(kind RouteKind) int {
	for i, k := range c {
		if k == kind {
			return i
		}
	}
	return -1
}

// Order drops routes whose kind is not registered and orders the rest by registration priority.
// Routes of the same kind keep their relative order.
func (c Catalog) Order(routes []Route) []Route {
	ordered := make([]Route, 0, len(routes))
	for _, r := range routes {
		if r != nil && c.Contains(r.Kind()) {
			ordered = append(ordered, r)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return c.priority(ordered[i].Kind()) < c.priority(ordered[j].Kind())
	})

	return ordered
}
