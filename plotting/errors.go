package plotting

import "errors"

// ErrUnimplemented is returned by Render for the one named plot that the
// original analysis left unimplemented: secure-vs-robust. There is no
// natural single x-axis for "robust" announcements paired with the
// cautious analyzer's binary secured/not-secured outcome, and the upstream
// tool never built one either.
var ErrUnimplemented = errors.New("plotting: secure-vs-robust is not implemented")

// ErrUnknownPlot is returned by Render when plot does not name one of the
// eight known plots.
var ErrUnknownPlot = errors.New("plotting: unknown plot name")

// ErrOutputExists is returned by Render when plotPath already exists and
// force was not set.
var ErrOutputExists = errors.New("plotting: output path already exists, use force to overwrite")

// ErrEmptyPopulation is returned by Render when no result documents were
// supplied, since a mean over zero samples has no value to plot.
var ErrEmptyPopulation = errors.New("plotting: no result documents to plot")
