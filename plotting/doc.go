// Package plotting renders populations of bold/cautious result documents
// into SVG charts, grounded on gonum.org/v1/plot in place of the original
// analysis's plotters crate.
package plotting
