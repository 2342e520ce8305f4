// Package record holds the multilingual value set edited by the input: one
// default language that is always present plus any number of additional
// language → text entries.
//
// Language codes are stored in canonical lowercase form. Entries are
// reported default-first and then in insertion order so rendering and
// clipboard export see the same stable sequence.
package record
