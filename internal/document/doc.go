// Package document stores multilingual records as TOML files.
//
// A document keeps the default language and the values in display order:
//
//	default_language = "fa"
//
//	[[values]]
//	code = "fa"
//	text = "سلام"
//
// Read-modify-write cycles hold an advisory lock on a sibling ".lock" file so
// concurrent CLI invocations cannot lose each other's edits.
package document
