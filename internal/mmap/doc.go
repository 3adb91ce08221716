// Package mmap reserves and releases the raw memory behind an arena.
//
// On linux and darwin the memory is an anonymous private mapping obtained
// with mmap(2); on windows it is committed with VirtualAlloc. Other
// platforms fall back to an unzeroed Go heap buffer. Mapped memory is not
// visible to the garbage collector and must be released exactly once.
package mmap
