// Package pkguid provides helpers for generating unique identifiers.
//
// The codebase uses these interfaces to avoid hard-coding a specific UID
// strategy. Depending on the use case you can generate:
//   - String IDs (for example UUIDs, used for correlation IDs and output names).
//   - Numeric IDs (Snowflake-style time-ordered IDs, used for uploaded files).
package pkguid
