// Package wiseio provides positional file I/O: a cursor-tracking [Stream]
// over raw descriptor reads and writes, and two caller-owned buffers to read
// into and write from, a raw [ByteBuffer] and a line-oriented [TextBuffer]
// that can drop comments and blank lines.
//
// A Stream never buffers on its own. Every read and write goes straight to
// the descriptor with pread(2), pwrite(2) or write(2), retrying EINTR and
// continuing after short transfers until the request is satisfied, the end
// of the file is reached, or a hard error occurs.
//
// # Drivers
//
// Files are opened through a [Driver]:
//
//   - Local filesystem ([LocalDriver], registered as "local")
//   - In-memory with fault injection (github.com/gobeaver/wiseio/driver/memory, registered as "memory")
//
// [NewReadOnlyDriver] wraps any driver so that only [ModeRead] opens succeed.
//
// # Basic Usage
//
//	s, err := wiseio.OpenStream(wiseio.LocalDriver{}, "data.bin", wiseio.ModeReadAndWrite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	// Write at the cursor; the cursor advances
//	n, err := s.CWriteString("header")
//
//	// Write at an explicit offset; the cursor stays put
//	n, err = s.CustomWriteString("trailer", 1024)
//
//	// Read the whole file
//	data, err := s.ReadAll()
//
// # Read Families
//
// Each transfer comes in three flavours, taking a []byte, a [Buffer] or a
// string:
//
//   - CRead, CWrite: at the cursor, which advances by the bytes moved
//   - CustomRead, CustomWrite: at a caller-given offset, cursor untouched
//   - AWrite: at the end of the file ([ModeAppend] only)
//   - ReadAll: the whole file from offset 0
//
// A cursor-relative read that comes back short has hit the end of the file.
// The Stream remembers it: [Stream.EOF] reports true and later
// cursor-relative reads return 0 without touching the descriptor.
// Explicit-offset reads neither consult nor set this flag.
//
// # Open Modes
//
// The [OpenMode] fixes which operations a Stream accepts:
//
//	ModeRead          CRead, CustomRead, ReadAll, Checksum
//	ModeWrite         CWrite, CustomWrite
//	ModeAppend        AWrite
//	ModeReadAndWrite  everything except AWrite
//
// Anything else fails with [ErrModeMismatch] before any syscall is made.
//
// # Lines
//
//	b := wiseio.NewTextBuffer(0)
//	b.SetIgnoreComments(true)
//	b.SetIgnoreBlank(true)
//	_, err := s.ReadAllBuffer(b)
//
//	for line, ok := b.NextLine(); ok; line, ok = b.NextLine() {
//	    fmt.Println(line)
//	}
//
// A '#' opens a comment only at the start of a line or after whitespace, so
// "key = value # note" yields "key = value " and "url#frag" is kept as is.
//
// # Error Handling
//
// Ordinary failures are returned as errors, usually a [*PathError] wrapping
// a sentinel or the underlying errno:
//
//	_, err := s.CWrite(p)
//	if wiseio.IsModeMismatch(err) {
//	    // Stream was not opened for writing
//	}
//
//	var pathErr *wiseio.PathError
//	if errors.As(err, &pathErr) {
//	    fmt.Printf("Operation: %s, Path: %s\n", pathErr.Op, pathErr.Path)
//	}
//
// Broken preconditions, such as a negative offset or a nil buffer, are
// programming errors: they are logged and then panic with a [*ContractError].
//
// # Configuration
//
// An [Opener] bundles a driver with logging, metrics and defaults. It can be
// configured via environment variables with the WISEIO_ prefix (behind the
// beaver-kit BEAVER_ prefix), or programmatically via the [Config] struct:
//
//	cfg := wiseio.Config{
//	    Driver:    "local",
//	    ChunkSize: 64 * 1024,
//	    LogLevel:  "debug",
//	}
//	o, err := wiseio.New(&cfg)
//	s, err := o.Open("app.log", wiseio.ModeAppend)
package wiseio
