// Package editor is the headless controller behind a multilingual text
// input. A host UI forwards focus, key, copy and paste events to an Editor
// and renders the rows it reports; every data change leaves the Editor
// through a notify.Notifier.
//
// The default language row is always visible. The remaining languages are
// shown while the input has focus and for a short delay after focus leaves,
// so moving between fields does not make them flicker. Each Editor owns its
// add-language Modal and its collapse timer, so several editors can coexist.
package editor
