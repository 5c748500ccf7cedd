// Package editor provides the Bubble Tea model of a quill editing session.
//
// The package decodes key events into intents, applies them to a
// buffer.Document, keeps the cursor inside the viewport and renders the
// visible rows together with a status bar and a message bar.
package editor
