// Package template defines the renderer interfaces used to embed form markup
// in page templates. The pongo subpackage provides a pongo2 implementation
// that exposes the markup builders as template functions.
package template
