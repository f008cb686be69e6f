// Package errors provides coded errors for the rpg-sheet service layers.
//
// Errors carry a Code, a short message, an optional cause and metadata:
//
//	err := errors.NotFoundf("character %s not found", id).
//	    WithMeta("character_id", id)
//
// Wrapping keeps the code of an existing *Error:
//
//	if err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// Input validation goes through the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("id", input.ID, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Repositories return NotFound and AlreadyExists. Orchestrators return
// InvalidArgument and FailedPrecondition and wrap repository errors. The
// CLI turns the final code into an exit status with Code.ExitCode.
//
// The rules engine itself never returns errors; it reports problems as
// warnings on the derived stats.
package errors
