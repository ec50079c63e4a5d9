// Package io provides the console of the virtual machine: single byte
// input from an io.Reader, and single byte output to an io.Writer.
package io
