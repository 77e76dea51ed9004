package digest

import "errors"

// ErrNothingToDigest indicates that neither articles nor tweets exist yet.
var ErrNothingToDigest = errors.New("nothing to digest")
