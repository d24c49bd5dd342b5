// Package grammar holds the character and verb model and resolves macro
// descriptors against it.
//
// Cast and Dictionary are built once and then only read. A Resolver never
// mutates them, so any number of goroutines may resolve against the same pair
// as long as nobody writes to them concurrently.
package grammar
