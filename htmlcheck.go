// Package htmlcheck reports which CSS selectors from a checks file match
// elements in an HTML document read from disk or fetched from a URL.
//
// This package contains domain types, interfaces and the pure evaluation
// core following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency (e.g., goquery/,
// http/, rod/).
package htmlcheck
