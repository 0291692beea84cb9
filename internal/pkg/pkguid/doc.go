// Package pkguid generates identifiers: UUID strings for correlation ids and
// snowflake numbers for stored records.
package pkguid
