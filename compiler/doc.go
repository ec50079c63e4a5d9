// Package compiler turns tape language source text into a Program.
//
// The language has eight symbols. Six of them are primitive instructions
// that move the tape cursor, change the current cell, or perform console
// I/O. The remaining two, '[' and ']', delimit a loop whose body is itself
// a Program. Every other character is a comment.
//
// Compilation is a single recursive pass; bracket matching is validated
// completely before a Program is returned.
package compiler
