package clruntime

// InfoSource answers introspection queries for a single native object
// (a platform, device, context, etc). Implementations wrap one
// clGet*Info entry point bound to one handle.
type InfoSource interface {
	// InfoSize reports the byte size the native call needs for param.
	InfoSize(param uint32) (int, error)
	// ReadInfo fills buf with the value of param and returns the number
	// of bytes written. buf must be at least InfoSize(param) bytes.
	ReadInfo(param uint32, buf []byte) (int, error)
}
