// Package shape defines the shape vocabulary for raw info buffers.
//
// A Kind names one interpretation of the bytes an OpenCL info query
// returns: a scalar of a given width, a vector of fixed-stride elements,
// text, a byte-blob sequence, or a fixed-size identifier. The width table
// here drives the decoder's size validation.
//
// This package is internal to infotype; the public aliases live there.
package shape
