// Package clipboard converts records to and from the tab-separated text
// that spreadsheets put on the clipboard.
//
// Export writes one "<code>\t<text>\n" line per entry, default language
// first. Import recognizes line-terminated lines that start with a run of
// letters or hyphens followed by whitespace and the value; every other line
// is skipped. Values are not escaped in either direction, so text that
// itself contains a tab or line break does not survive a round trip.
package clipboard
