package memory

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/gobeaver/wiseio"
)

func TestNew(t *testing.T) {
	t.Run("creates adapter with default config", func(t *testing.T) {
		a := New()
		if a == nil {
			t.Fatal("expected adapter to be created")
		}
		if a.maxSize != 0 {
			t.Errorf("expected maxSize=0, got %d", a.maxSize)
		}
	})

	t.Run("creates adapter with max size", func(t *testing.T) {
		a := New(Config{MaxSize: 1024})
		if a.maxSize != 1024 {
			t.Errorf("expected maxSize=1024, got %d", a.maxSize)
		}
	})
}

func TestOpen(t *testing.T) {
	t.Run("read on missing file fails", func(t *testing.T) {
		a := New()
		_, err := a.Open("missing.txt", wiseio.ModeRead, wiseio.DefaultPerm)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected fs.ErrNotExist, got %v", err)
		}
		if a.FileCount() != 0 {
			t.Errorf("expected no files, got %d", a.FileCount())
		}
	})

	t.Run("write truncates", func(t *testing.T) {
		a := New()
		if err := a.WriteFile("data.bin", []byte("hello")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f, err := a.Open("data.bin", wiseio.ModeWrite, wiseio.DefaultPerm)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer f.Close()

		if size, _ := f.Size(); size != 0 {
			t.Errorf("expected size 0 after truncate, got %d", size)
		}
		if a.Size() != 0 {
			t.Errorf("expected adapter size 0, got %d", a.Size())
		}
	})

	t.Run("append and read-write create", func(t *testing.T) {
		a := New()
		for _, mode := range []wiseio.OpenMode{wiseio.ModeAppend, wiseio.ModeReadAndWrite} {
			name := mode.String() + ".txt"
			f, err := a.Open(name, mode, wiseio.DefaultPerm)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", mode, err)
			}
			f.Close()
			if _, ok := a.Contents(name); !ok {
				t.Errorf("%s: expected file to be created", mode)
			}
		}
	})

	t.Run("rejects traversal", func(t *testing.T) {
		a := New()
		_, err := a.Open("../etc/passwd", wiseio.ModeReadAndWrite, wiseio.DefaultPerm)
		if !errors.Is(err, fs.ErrInvalid) {
			t.Fatalf("expected fs.ErrInvalid, got %v", err)
		}
	})

	t.Run("normalizes paths", func(t *testing.T) {
		a := New()
		if err := a.WriteFile("/dir/./file.txt", []byte("x")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, ok := a.Contents("dir/file.txt"); !ok || string(got) != "x" {
			t.Errorf("expected %q, got %q (found=%v)", "x", got, ok)
		}
	})
}

func TestHandleIO(t *testing.T) {
	t.Run("pwrite past end fills gap with zeros", func(t *testing.T) {
		a := New()
		f, _ := a.Open("gap.bin", wiseio.ModeReadAndWrite, wiseio.DefaultPerm)
		defer f.Close()

		if n, err := f.Pwrite([]byte("ab"), 3); err != nil || n != 2 {
			t.Fatalf("Pwrite = %d, %v", n, err)
		}
		got, _ := a.Contents("gap.bin")
		if want := "\x00\x00\x00ab"; string(got) != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("pread at end returns zero", func(t *testing.T) {
		a := New()
		_ = a.WriteFile("f.txt", []byte("abc"))
		f, _ := a.Open("f.txt", wiseio.ModeRead, wiseio.DefaultPerm)
		defer f.Close()

		p := make([]byte, 8)
		n, err := f.Pread(p, 3)
		if err != nil || n != 0 {
			t.Errorf("Pread at end = %d, %v", n, err)
		}
		n, err = f.Pread(p, 1)
		if err != nil || n != 2 || string(p[:n]) != "bc" {
			t.Errorf("Pread = %d %q, %v", n, p[:n], err)
		}
	})

	t.Run("write appends", func(t *testing.T) {
		a := New()
		_ = a.WriteFile("log.txt", []byte("one\n"))
		f, _ := a.Open("log.txt", wiseio.ModeAppend, wiseio.DefaultPerm)
		defer f.Close()

		if _, err := f.Write([]byte("two\n")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := a.Contents("log.txt")
		if string(got) != "one\ntwo\n" {
			t.Errorf("unexpected contents %q", got)
		}
	})

	t.Run("mode gates calls", func(t *testing.T) {
		a := New()
		_ = a.WriteFile("r.txt", []byte("abc"))
		r, _ := a.Open("r.txt", wiseio.ModeRead, wiseio.DefaultPerm)
		defer r.Close()
		if _, err := r.Pwrite([]byte("x"), 0); !errors.Is(err, syscall.EBADF) {
			t.Errorf("expected EBADF writing read-only handle, got %v", err)
		}

		w, _ := a.Open("w.txt", wiseio.ModeWrite, wiseio.DefaultPerm)
		defer w.Close()
		if _, err := w.Pread(make([]byte, 1), 0); !errors.Is(err, syscall.EBADF) {
			t.Errorf("expected EBADF reading write-only handle, got %v", err)
		}
	})

	t.Run("closed handle", func(t *testing.T) {
		a := New()
		f, _ := a.Open("c.txt", wiseio.ModeReadAndWrite, wiseio.DefaultPerm)
		if err := f.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.Close(); err == nil {
			t.Error("expected error on second close")
		}
		if _, err := f.Size(); !errors.Is(err, syscall.EBADF) {
			t.Errorf("expected EBADF, got %v", err)
		}
	})

	t.Run("max size", func(t *testing.T) {
		a := New(Config{MaxSize: 4})
		f, _ := a.Open("big.bin", wiseio.ModeWrite, wiseio.DefaultPerm)
		defer f.Close()

		if _, err := f.Pwrite([]byte("abcd"), 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.Pwrite([]byte("e"), 4); !errors.Is(err, syscall.ENOSPC) {
			t.Errorf("expected ENOSPC, got %v", err)
		}
		if _, err := f.Pwrite([]byte("z"), 0); err != nil {
			t.Errorf("overwrite inside the file should succeed, got %v", err)
		}
	})
}

func TestFaults(t *testing.T) {
	t.Run("interrupts are consumed one per call", func(t *testing.T) {
		a := New()
		_ = a.WriteFile("f.txt", []byte("abc"))
		a.SetFault("f.txt", Fault{Interrupts: 2})
		f, _ := a.Open("f.txt", wiseio.ModeRead, wiseio.DefaultPerm)
		defer f.Close()

		p := make([]byte, 3)
		for i := 0; i < 2; i++ {
			if _, err := f.Pread(p, 0); !errors.Is(err, syscall.EINTR) {
				t.Fatalf("call %d: expected EINTR, got %v", i, err)
			}
		}
		if n, err := f.Pread(p, 0); err != nil || n != 3 {
			t.Errorf("Pread = %d, %v", n, err)
		}
		if a.Interrupts("f.txt") != 0 {
			t.Errorf("expected no pending interrupts, got %d", a.Interrupts("f.txt"))
		}
	})

	t.Run("hard errors", func(t *testing.T) {
		a := New()
		boom := errors.New("boom")
		a.SetFault("f.txt", Fault{FailReads: syscall.EIO, FailWrites: boom})
		f, _ := a.Open("f.txt", wiseio.ModeReadAndWrite, wiseio.DefaultPerm)
		defer f.Close()

		if _, err := f.Pread(make([]byte, 1), 0); !errors.Is(err, syscall.EIO) {
			t.Errorf("expected EIO, got %v", err)
		}
		if _, err := f.Write([]byte("x")); !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}

		a.ClearFault("f.txt")
		if _, err := f.Write([]byte("x")); err != nil {
			t.Errorf("expected success after ClearFault, got %v", err)
		}
	})

	t.Run("max transfer", func(t *testing.T) {
		a := New()
		_ = a.WriteFile("f.txt", []byte("abcdef"))
		a.SetFault("f.txt", Fault{MaxTransfer: 2})
		f, _ := a.Open("f.txt", wiseio.ModeReadAndWrite, wiseio.DefaultPerm)
		defer f.Close()

		if n, _ := f.Pread(make([]byte, 6), 0); n != 2 {
			t.Errorf("expected short read of 2, got %d", n)
		}
		if n, _ := f.Pwrite([]byte("xyz"), 0); n != 2 {
			t.Errorf("expected short write of 2, got %d", n)
		}
	})
}

func TestStreamOverMemory(t *testing.T) {
	a := New()
	a.SetFault("data.txt", Fault{Interrupts: 3, MaxTransfer: 4})

	w, err := wiseio.OpenStream(a, "data.txt", wiseio.ModeWrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, err := w.CWriteString("hello, world"); err != nil || n != 12 {
		t.Fatalf("CWriteString = %d, %v", n, err)
	}
	w.Close()

	a.SetFault("data.txt", Fault{Interrupts: 3, MaxTransfer: 5})
	r, err := wiseio.OpenStream(a, "data.txt", wiseio.ModeRead)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer r.Close()

	got, err := r.ReadAllString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello, world" {
		t.Errorf("expected %q, got %q", "hello, world", got)
	}
}

func TestRegisteredDriver(t *testing.T) {
	d, err := wiseio.CreateDriver(&wiseio.Config{Driver: "memory"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := d.(*Adapter); !ok {
		t.Errorf("expected *Adapter, got %T", d)
	}
}
