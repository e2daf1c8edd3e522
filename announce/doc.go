// Package announce computes per-agent announcement horizons: the sequence
// h[t] of the first future timestep not yet disclosed by the announcement
// an agent makes at time t. Three strategies are provided.
//
//   - KAhead:    a rolling, fixed-size disclosure window.
//   - KGrouped:  a piecewise-constant disclosure that jumps forward in
//     blocks of k timesteps.
//   - Robust:    derives the minimal safe disclosure from the solved
//     schedule itself, announcing only as far as the next
//     position at which some other agent would currently occupy
//     the announced cell.
//
// Robust is the one strategy that reads the solved schedule; it encodes
// the conflict semantics every simulator in this module relies on, so its
// carry-forward rule is specified exactly and should not be "simplified."
package announce
