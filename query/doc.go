// Package query retrieves raw OpenCL info values and decodes them.
//
// Every clGet*Info entry point follows the same two-call protocol: call
// once with no buffer to learn the value's byte size, then call again
// with a buffer of exactly that size. ReadRaw implements the protocol
// against the clruntime.InfoSource interface; GetInfo adds the decode
// step using this package's table of known params and their shapes.
//
//	src := clnative.DeviceSource(dev)
//	info, err := query.GetInfo(src, query.DeviceGlobalMemSize)
//	if err != nil {
//	    return err
//	}
//	size, err := info.AsUlong()
//
// Params outside the table decode through GetInfoShaped with a
// caller-declared shape. The table is deliberately not the full OpenCL
// catalogue; it carries the introspection params an inspector needs while
// covering every decoder shape.
//
// The package logs size probes and decode failures at debug level through
// a zap logger that is a no-op unless SetLogger installs one.
package query
