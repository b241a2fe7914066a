// Package zeckcode implements the Zeckendorf decomposition and its
// self-delimiting Fibonacci bit-code: BigNat <-> ZIL (Decompose/Recompose)
// and ZIL <-> bit stream (Encode/Decode), plus the LSB-first byte packing
// (Pack/Unpack) the container layer in package zeck builds on.
package zeckcode
