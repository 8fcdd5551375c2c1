package szl

// Stream is the uniform façade over pluggable transports (files,
// sockets, pipes, ...), specified only as a contract with no concrete
// backend shipped here. The core owns the Streams registry map; it
// allocates no handles and implements no transport itself. A method a particular backend does
// not support should be omitted by returning ErrUnsupported; a method
// called after Close should return ErrClosed.
type Stream interface {
	// Read fills buf and reports how much was read and whether EOF
	// was reached.
	Read(buf []byte) (n int, eof bool, err error)
	// Write reports how much of buf was written.
	Write(buf []byte) (n int, err error)
	Flush() error
	// Accept is valid only for server streams.
	Accept() (Stream, error)
	Close() error
	// Handle exposes the OS-level file descriptor/handle, if any.
	Handle() (uintptr, error)
	// Unblock switches a blocking stream to non-blocking mode.
	Unblock() error
	Rewind() error
	SetOpt(key, value string) error
}

// ErrClosed is returned by any Stream operation invoked after Close.
var ErrClosed = NewError(Unsupported, "stream is closed")

// UnsupportedStream embeds into a partial Stream implementation so
// unimplemented methods fail uniformly with Unsupported (the
// corresponding user-facing command then fails with that error)
// rather than a nil-pointer panic.
type UnsupportedStream struct{}

func (UnsupportedStream) Read(buf []byte) (int, bool, error) { return 0, false, ErrUnsupported }
func (UnsupportedStream) Write(buf []byte) (int, error)      { return 0, ErrUnsupported }
func (UnsupportedStream) Flush() error                       { return ErrUnsupported }
func (UnsupportedStream) Accept() (Stream, error)            { return nil, ErrUnsupported }
func (UnsupportedStream) Close() error                       { return ErrUnsupported }
func (UnsupportedStream) Handle() (uintptr, error)           { return 0, ErrUnsupported }
func (UnsupportedStream) Unblock() error                     { return ErrUnsupported }
func (UnsupportedStream) Rewind() error                      { return ErrUnsupported }
func (UnsupportedStream) SetOpt(key, value string) error     { return ErrUnsupported }
