// Package interpreter implements a tree-walking interpreter for a tape
// language of eight symbols.
//
// The machine has an integer tape that grows to the right on demand, a
// cursor into the tape, and an output buffer. Programs are plain text; any
// byte that is not one of the symbols below is a comment.
//
//	'+'  increment the current cell
//	'-'  decrement the current cell
//	'>'  move the cursor right, growing the tape if needed
//	'<'  move the cursor left
//	'.'  append the low byte of the current cell as a character
//	'?'  append the current cell as a decimal number
//	'['  run the loop body up to the matching ], repeating while the
//	     current cell is non-zero at the end of the body
//	']'  end of a loop body
//
// A loop body always runs at least once; the current cell is only tested
// when the end of the body is reached.
//
// An optional Observer is called with a read-only State at the start of
// every pass over the program or a loop body, and after every +, -, > and <.
package interpreter
