// Package errors provides coded, structured errors for stop-nagging.
//
// Every error carries a stable ErrorCode so callers and tests can match on
// the category of failure rather than on message text:
//
//	if errors.IsErrorCode(err, errors.ErrConfigParse) {
//	    // fall back to the embedded configuration
//	}
package errors
