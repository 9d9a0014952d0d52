package route

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// RouteKind is the closed set of bridging paths. The zero value is not a valid kind.
type RouteKind int

const (
	RouteKindUnspecified RouteKind = iota
	// AutomaticFast is relayed through the fast transfer bridge and charges a relay fee.
	AutomaticFast
	// ManualFast uses the fast transfer bridge without a relayer; the receiver claims on the destination chain.
	ManualFast
	// AutomaticGeneric is relayed through the general purpose token bridge.
	AutomaticGeneric
	// ManualGeneric uses the general purpose token bridge without a relayer. Free, but can take days.
	ManualGeneric
)

var routeKindNames = map[RouteKind]string{
	AutomaticFast:    "automatic-fast",
	ManualFast:       "manual-fast",
	AutomaticGeneric: "automatic-generic",
	ManualGeneric:    "manual-generic",
}

func (k RouteKind) String() string {
	if name, ok := routeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("RouteKind(%d)", int(k))
}

func (k RouteKind) IsValid() bool {
	_, ok := routeKindNames[k]
	return ok
}

// IsAutomatic reports whether a relayer completes delivery on the destination chain.
func (k RouteKind) IsAutomatic() bool {
	return k == AutomaticFast || k == AutomaticGeneric
}

// IsFast reports whether the kind goes through the fast transfer bridge.
func (k RouteKind) IsFast() bool {
	return k == AutomaticFast || k == ManualFast
}

func ParseRouteKind(s string) (RouteKind, error) {
	for kind, name := range routeKindNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return kind, nil
		}
	}
	return RouteKindUnspecified, errors.Errorf("unknown route kind: %q", s)
}
