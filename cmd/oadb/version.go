package main

// Version and Build are set at link time via -ldflags.
var (
	Version = "v0.3.2"
	Build   = "n/a"
)
