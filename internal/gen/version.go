package gen

// Version of core-resolve.
const Version = "v0.1.0"
