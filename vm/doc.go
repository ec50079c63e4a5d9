// Package vm implements the virtual machine of the tape language.
//
// The machine owns a tape of byte cells that grows to the right as the
// cursor advances, and a console for byte I/O. A compiled Program is run
// by walking its instruction tree; each loop body is executed by a nested
// call, so the call depth follows the loop nesting of the program.
//
// Cell arithmetic wraps modulo 256 in both directions. Moving the cursor
// left of the first cell is the only runtime error.
package vm
