// Package buffer implements the grapheme-accurate document model for quill.
//
// Coordinates are 0-based (Col, Line) in grapheme clusters. Every Row and
// Document operation is total: out-of-range coordinates are clamped or
// ignored, never reported as errors.
package buffer
