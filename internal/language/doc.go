// Package language is the read-only catalog of language codes and their
// human-readable names used by the multilingual editor.
//
// Codes are looked up case-insensitively by ISO 639-1, ISO 639-2 (both the
// terminology and bibliographic variants) or the English word form. Region
// or script subtags ("en-US", "zh-Hant") resolve through their base
// language. Unknown codes are never an error: NameOf reports false and the
// display helpers fall back to the raw code.
package language
