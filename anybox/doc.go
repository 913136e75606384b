// Package anybox provides Box, a single-owner cell holding one value of a
// caller chosen type.
//
// A Box records the type it was created for and checks every access
// against it:
//
//	b := anybox.New(conn)
//	c := anybox.Borrow[*Conn](b) // *(*Conn), mutable in place
//	owned := anybox.Take[*Conn](b)
//	anybox.Take[*Conn](b) // panics: value already moved out
//
// Misuse (wrong type, empty box, second Take) is a programming error and
// is reported by panicking with an *Error.
//
// A Box performs no synchronization. Callers sharing a Box between
// goroutines must serialize Replace, Take and Drop themselves.
package anybox
