// Package domain contains the core domain model for the program engine.
//
// This package defines:
//   - Entities: the persisted state document and its records (ProgramState,
//     ProgramUser, TimeLog, Submission, RedemptionRequest)
//   - Catalogs: the compiled-in lesson and badge reference data
//   - Derivation: pure eligibility and badge computation
//   - Domain Errors: business rule violation errors
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (storage, HTTP, etc.)
//   - Derived values (badges, eligibility) are computed here and only here
package domain
