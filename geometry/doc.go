// Package geometry defines the coordinate primitives shared by every
// AnnounceNet package: grid coordinates, their time-stamped counterparts,
// and the 4-connected adjacency and Manhattan-distance rules that every
// downstream component (schedules, announcements, the time-expanded graph,
// both attacker simulators) builds on.
//
// Everything here is a pure, stateless value type. There is nothing to
// configure and nothing that allocates beyond the values themselves.
package geometry
