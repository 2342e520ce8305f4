// Package main hosts the mlinput CLI entrypoint and command graph.
//
// The Cobra-based command tree edits multilingual record documents: it
// creates and shows records, sets and removes single values, and moves whole
// records through the tab-separated clipboard format. Every edit goes through
// the same editor controller a graphical host would use, so paste merging,
// read-only handling and change notification behave identically.
//
// Keep this package lean: add behaviour to the internal packages first, then
// surface it through dedicated commands or flags here.
package main
