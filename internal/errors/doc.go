// Package errors provides structured errors for the item builder.
//
// Every failure in a batch run is fatal and has to reach the user with
// enough context to fix the input and re-run. Errors therefore carry:
//   - a Code classifying the failure (bad input, broken template asset,
//     missing destination, ...)
//   - a human readable Message
//   - Meta entries such as the source file, record index or destination path
//   - the wrapped Cause
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("%s has %d lines", source, n).
//	    WithMeta("source", source).
//	    WithMeta("block_size", 16)
//
// Wrapping errors:
//
//	if err := os.WriteFile(path, data, 0o644); err != nil {
//	    return errors.WrapFSf(err, "failed to write %s", path).
//	        WithMeta("destination", path)
//	}
//
// Wrap keeps the code of an existing *Error and defaults to Internal for
// plain errors. WrapFS maps fs.ErrNotExist to NotFound and fs.ErrPermission
// to PermissionDenied.
//
// # Error Checking
//
//	if errors.IsInvalidArgument(err) {
//	    // input file needs fixing
//	}
//	code := errors.GetCode(err)
//	os.Exit(code.ExitCode())
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("folder", input.Folder, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Error Codes
//
//   - InvalidArgument: malformed input records or arguments
//   - NotFound: a file or directory does not exist
//   - PermissionDenied: a file cannot be read or written
//   - FailedPrecondition: a template or destination document is malformed
//   - Internal: anything else
package errors
