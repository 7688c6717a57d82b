// Package sanitizer provides input normalization functions for ledger data.
//
// All normalization functions are idempotent - applying them multiple times produces
// the same result. Functions handle invalid input gracefully, typically by returning
// empty strings rather than errors.
//
// Normalization includes:
//   - Strings: Collapse whitespace, trim leading/trailing spaces
//   - Names: Whitespace normalization plus removal of the field delimiter
//   - Codes: Uppercase flight/route/seat identifiers with all spaces removed
package sanitizer
