// Package timezone centralizes time handling in the configured application
// timezone so booking dates and invoice timestamps render consistently for
// the workshop's locale.
package timezone
