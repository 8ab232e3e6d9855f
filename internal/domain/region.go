package domain

import "strings"

// Region is a platform shard identifier such as "na1" or "euw1".
type Region string

// Regional routes group platforms for the account and match endpoints.
const (
	RouteAmericas = "americas"
	RouteEurope   = "europe"
	RouteAsia     = "asia"
	RouteSEA      = "sea"
)

var regionRoutes = map[Region]string{
	"na1":  RouteAmericas,
	"br1":  RouteAmericas,
	"la1":  RouteAmericas,
	"la2":  RouteAmericas,
	"euw1": RouteEurope,
	"eun1": RouteEurope,
	"tr1":  RouteEurope,
	"ru":   RouteEurope,
	"me1":  RouteEurope,
	"kr":   RouteAsia,
	"jp1":  RouteAsia,
	"oc1":  RouteSEA,
	"ph2":  RouteSEA,
	"sg2":  RouteSEA,
	"th2":  RouteSEA,
	"tw2":  RouteSEA,
	"vn2":  RouteSEA,
}

const DefaultRegion Region = "na1"

func ParseRegion(s string) (Region, bool) {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	_, ok := regionRoutes[r]
	return r, ok
}

func (r Region) Valid() bool {
	_, ok := regionRoutes[r]
	return ok
}

// Route returns the regional routing value, falling back to americas.
func (r Region) Route() string {
	if route, ok := regionRoutes[r]; ok {
		return route
	}
	return RouteAmericas
}

func (r Region) String() string { return string(r) }

// RegionFromMatchID reads the platform prefix of ids like "NA1_5012345678".
func RegionFromMatchID(matchID string) Region {
	prefix, _, found := strings.Cut(matchID, "_")
	if !found {
		return DefaultRegion
	}
	if r, ok := ParseRegion(prefix); ok {
		return r
	}
	return DefaultRegion
}
