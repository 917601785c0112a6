// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Validator is the generic interface injected into services. The default
// implementation, [StructValidator], reads `validate` struct tags through
// go-playground/validator and reports failing fields by their JSON names.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to the named struct fields (Go field names).
	Validate(context.Context, any, ...string) error
}
