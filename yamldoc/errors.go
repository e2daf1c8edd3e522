package yamldoc

import "errors"

// ErrOutputExists is returned by the Save* functions when the destination
// path already exists and force was not set; callers must pass force=true
// to intentionally overwrite a prior result document.
var ErrOutputExists = errors.New("yamldoc: output path already exists, use force to overwrite")
