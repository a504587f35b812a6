/*
Package errors provides semantic error types for sqlrecord.

The package defines the failure modes of the mapping layer as sentinel errors
that can be checked with the standard errors.Is() function or the provided
helper functions.

Common Errors:

	var (
	    ErrNotFound      = errors.New("record not found")
	    ErrInvalidField  = errors.New("invalid field")
	    ErrMissingColumn = errors.New("missing column")
	    ErrInvalidMeta   = errors.New("invalid record metadata")
	)

Usage:

	err := items.Delete(ctx, cur, 1)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Nothing to delete
	        return nil
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("Item", "1")
	err := errors.NewValidationError("id", "cannot change the primary key")
	err := errors.NewMissingColumnError("Item", "price")

Unregistered value types are not errors: the type registry passes such values
through unchanged.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
