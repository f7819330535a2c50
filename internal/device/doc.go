// Package device delivers encoded layouts to a BlUSB controller over its
// serial configuration channel.
//
// The channel carries simple framed commands: a sync byte, a command byte, a
// 16-bit little-endian payload length, and the payload. Writing a layout
// sends the encoded blob and waits for a one-byte status; reading the
// flashed layout sends an empty read command and receives the blob back in a
// reply frame.
//
// The layout blob itself is opaque to this package: it is produced and
// consumed by the layout package, and this package only moves it across the
// wire. Transport failures are surfaced to the caller as errors; nothing is
// retried.
package device
