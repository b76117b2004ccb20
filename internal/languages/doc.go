// Package languages lists the target languages supported by the translation
// API, so users can find the right code to pass on the command line.
package languages
