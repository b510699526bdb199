// Package validation provides input validation for request payloads
// and configuration structs.
//
// It supports both struct tag validation (using the validator library)
// and programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type ProcessRequest struct {
//	    URL string `validate:"omitempty,url"`
//	}
//	err := validation.ValidateStruct(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("content", req.Content)
//	err := v.Err()
package validation
