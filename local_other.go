//go:build !unix

package wiseio

import (
	"errors"
	"io"
	"os"
)

var openFlags = [...]int{
	ModeRead:         os.O_RDONLY,
	ModeWrite:        os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
	ModeAppend:       os.O_WRONLY | os.O_APPEND | os.O_CREATE,
	ModeReadAndWrite: os.O_RDWR | os.O_CREATE,
}

// LocalDriver opens files on the host filesystem. Platforms without
// golang.org/x/sys/unix go through *os.File.
type LocalDriver struct{}

// Open implements Driver
func (LocalDriver) Open(path string, mode OpenMode, perm os.FileMode) (File, error) {
	if !mode.valid() {
		return nil, ErrInvalidMode
	}
	f, err := os.OpenFile(path, openFlags[mode], perm)
	if err != nil {
		return nil, err
	}
	return &osFile{f: f}, nil
}

type osFile struct {
	f *os.File
}

func (o *osFile) Pread(p []byte, off int64) (int, error) {
	n, err := o.f.ReadAt(p, off)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return n, err
}

func (o *osFile) Pwrite(p []byte, off int64) (int, error) {
	return o.f.WriteAt(p, off)
}

func (o *osFile) Write(p []byte) (int, error) {
	return o.f.Write(p)
}

func (o *osFile) Size() (int64, error) {
	info, err := o.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (o *osFile) Close() error {
	return o.f.Close()
}
