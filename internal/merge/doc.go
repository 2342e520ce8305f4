// Package merge folds parsed clipboard rows into a record.
//
// Merge always works on a clone: the caller's record is never modified, and
// the result is either the fully merged copy or nothing. In Append mode a
// row whose code already has an entry is joined to the existing text with a
// single space; in Overwrite mode the row replaces it. Rows are applied in
// paste order, so a later row for the same code builds on (or replaces) the
// earlier one.
package merge
