// Package errs holds the error vocabulary shared by the domain, the use cases and
// the HTTP edge.
//
// Every typed error unwraps to one sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrAccessDenied, ErrInvalidTransition),
// so callers classify with errors.Is and read details with errors.As:
//
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) && notFound.Cause != nil {
//	    // notFound.Cause carries the client-facing message
//	}
package errs
