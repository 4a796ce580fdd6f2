package report

import "errors"

// Failure kinds the pipeline can surface. Callers classify with
// errors.Is; every returned error wraps exactly one of these.
var (
	// ErrMalformedRecord marks a scan record that cannot be normalized:
	// a missing required field, an unparsable timestamp, or a language
	// reference the registry does not know. The run aborts rather than
	// silently undercounting, unless lenient mode was requested.
	ErrMalformedRecord = errors.New("malformed scan record")

	// ErrOutputConflict marks an existing output artifact when
	// overwriting was not permitted. Detected before anything is built.
	ErrOutputConflict = errors.New("output file already exists")

	// ErrOutputWriteFailure marks a failure to stage, flush, or commit
	// the output artifact.
	ErrOutputWriteFailure = errors.New("unable to write output file")
)
