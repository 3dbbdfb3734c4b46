// Package trace provides interpreter observers for diagnostics: a
// structured logger that records the interpreter state, and a Starlark
// watch expression that selects which observations are recorded.
package trace
