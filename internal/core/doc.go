/*
Package core defines the uniform runtime value shape shared by compiled
programs and the runtime: a two-word closure pairing an entry function with
a payload.

A closure is either a thunk, whose entry computes a result from a captured
environment, or a forced value, whose entry is the identity on its payload.
Only the static type of the entry tells them apart; nothing is tagged at run
time. Forcing an already forced value is therefore just an identity call, and
a forced value may be passed wherever a thunk of the same result is expected
(see AsThunk).

Layout

All offsets are for 64-bit targets; every field is naturally aligned and no
field is reordered or hidden.

	Closure[E, P]   0: Entry    8 bytes, a Go func value
	                8: Payload  sizeof(P)

	ListValue[T]    0: Tag      4 bytes, Cons = 0, Nil = 1
	                4: padding  4 bytes
	                8: Head     8 bytes, *T (nil for Nil)
	               16: Tail     8 bytes, *List[T] (nil for Nil)

	List[T]         0: Entry, 8: ListValue[T]   32 bytes
	Number          0: Entry, 8: float64        16 bytes

A thunk is allocated sized, as Closure[F, E] with its concrete environment
record E inline, but handed around unsized, as Closure[F, Environment]: the
environment begins at offset 8 either way, and EnvOf recovers it.

Entry convention

An Entry word is a Go func value: a pointer to a function descriptor whose
first word is the code address. Entries are invoked with Go's internal
register calling convention, which passes the descriptor itself in a fixed
context register and the payload pointer followed by any arguments in the
integer argument registers. Entries stored in off-heap memory, such as an
mem.Arena, must have descriptors the Go collector never reclaims: top-level
functions, or the shared entries this package hands out.
*/
package core
