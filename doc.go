/*
Command einrt inspects the runtime value layer of compiled ein programs.

It reads literal forms, one per line, builds the runtime value each one
describes, and prints it back in constructor notation:

	42              => 42
	(1 2 3)         => Cons(1, Cons(2, Cons(3, Nil)))
	((1) ())        => Cons(Cons(1, Nil), Cons(Nil, Nil))

A number becomes a Number, a list of numbers a List of Numbers, and a list of
such lists a List of Lists of Numbers. Numbers are read in full double
precision, so 0.1, 1e300 and 16777217 print back unchanged. Each line holds
exactly one form, optionally followed by a ';' comment. Every element and every list node is
placed through the installed allocator, exactly as compiled code places them
through core_alloc.

Usage:

	einrt [flags] [file ...]

With no files, forms are read from standard input; when standard input is a
terminal, an interactive line editor is used instead.

Flags:

	-heap arena|go   place values in an mmap arena (default) or the Go heap
	-page-size N     arena page size in bytes
	-mem-limit N     panic once the arena holds more than N bytes
	-trace           log every form, value, page and allocation
	-color MODE      color the match error: auto, always, or never
	-tee FILE        also write printed values to FILE

Lines starting with ';' are comments. Lines starting with ':' are commands:

	:heap    dump allocator statistics, and for an arena its pages and blocks
	:match   report a match error, exactly as compiled code would, and exit 1
	:quit    stop reading input
*/
package main
