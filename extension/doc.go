// Package extension provides run-time registries that let applications plug
// their own suggestion providers and boundary Go types into the allocator.
//
// The registries are normally populated through the options on the root
// allocator package, therefore most applications do not need to import this
// package directly.
package extension
