// Package classify maps arbitrary failures onto a closed error taxonomy so the
// rest of the application can match on what went wrong instead of how the
// transport happened to report it.
//
// Classification is total: Classify accepts any error (including nil) and
// always returns a well-formed *Error, never panicking. It is also idempotent,
// so it is safe to call at every layer boundary without double-wrapping.
//
// # Decision order
//
//  1. An already classified *Error is returned unchanged.
//  2. A *ResponseError (non-2xx HTTP response) maps through a fixed status
//     table: 400 validation, 401 unauthorized, 403 forbidden, 404 not found,
//     408 timeout, 500/502/503/504 server, anything else KindAPI with the
//     original status attached.
//  3. A transport failure with no response (connection refused, DNS failure,
//     deadline exceeded) classifies as KindNetwork or KindTimeout.
//  4. Everything else classifies as KindUnknown with the concrete error type
//     preserved in Details.
//
// # Usage
//
//	cerr := classify.Classify(err)
//	switch cerr.Kind {
//	case classify.KindUnauthorized:
//	    // re-authenticate
//	case classify.KindNetwork:
//	    // wait for connectivity
//	}
//
// Message is the only user-facing field; Code, StatusCode and Details exist
// for logging and programmatic recovery matching.
package classify
