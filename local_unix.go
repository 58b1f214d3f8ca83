//go:build unix

package wiseio

import (
	"os"

	"golang.org/x/sys/unix"
)

// openFlags holds the open(2) strategy for each mode.
var openFlags = [...]int{
	ModeRead:         unix.O_RDONLY,
	ModeWrite:        unix.O_WRONLY | unix.O_CREAT | unix.O_TRUNC,
	ModeAppend:       unix.O_WRONLY | unix.O_APPEND | unix.O_CREAT,
	ModeReadAndWrite: unix.O_RDWR | unix.O_CREAT,
}

// LocalDriver opens real file descriptors on the host filesystem.
type LocalDriver struct{}

// Open implements Driver
func (LocalDriver) Open(path string, mode OpenMode, perm os.FileMode) (File, error) {
	if !mode.valid() {
		return nil, ErrInvalidMode
	}
	flags := openFlags[mode] | unix.O_CLOEXEC

	for {
		fd, err := unix.Open(path, flags, uint32(perm.Perm()))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &localFile{fd: fd}, nil
	}
}

// localFile is a raw descriptor. Every method is one syscall.
type localFile struct {
	fd int
}

func (f *localFile) Pread(p []byte, off int64) (int, error) {
	return unix.Pread(f.fd, p, off)
}

func (f *localFile) Pwrite(p []byte, off int64) (int, error) {
	return unix.Pwrite(f.fd, p, off)
}

func (f *localFile) Write(p []byte) (int, error) {
	return unix.Write(f.fd, p)
}

func (f *localFile) Size() (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(f.fd, &st); err != nil {
		return 0, err
	}
	return st.Size, nil
}

func (f *localFile) Close() error {
	return unix.Close(f.fd)
}
