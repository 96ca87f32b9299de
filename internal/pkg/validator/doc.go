// Package validator provides a small validation abstraction for dependency
// and input structs.
//
// Callers depend on the Validator interface; V10Validator is the
// go-playground/validator v10 implementation with English messages.
package validator
