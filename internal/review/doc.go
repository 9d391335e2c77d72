// Package review provides the data model shared by every critic package.
//
// This package contains type definitions and the error taxonomy only. All
// other internal packages import review; review imports nothing internal.
//
// Key design constraints:
//   - Review values are immutable once inserted into a store
//   - Predicted is assigned before a Review becomes visible to queries
//   - Labels serialize through their canonical names only
package review
