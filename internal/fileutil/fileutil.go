package fileutil

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the output lock past the
// configured timeout.
var ErrLocked = errors.New("file is locked by another writer")

const defaultRetryDelay = 50 * time.Millisecond

// WriteOptions controls WriteFileLocked.
type WriteOptions struct {
	// Mode applies when the file is created. Zero means 0o644.
	Mode os.FileMode
	// LockTimeout bounds the wait for the advisory lock. Zero tries once.
	LockTimeout time.Duration
	RetryDelay  time.Duration
}

// WriteFileLocked creates or truncates path and hands a buffered writer to
// write while holding an advisory lock on the file. The file is flushed and
// closed before returning, whatever write does.
func WriteFileLocked(ctx context.Context, path string, opts WriteOptions, write func(io.Writer) error) error {
	mode := opts.Mode
	if mode == 0 {
		mode = 0o644
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	lock := flock.New(path)
	if err := acquire(ctx, lock, opts); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := out.Truncate(0); err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return out.Close()
}

func acquire(ctx context.Context, lock *flock.Flock, opts WriteOptions) error {
	if opts.LockTimeout <= 0 {
		locked, err := lock.TryLock()
		if err != nil {
			return err
		}
		if !locked {
			return ErrLocked
		}
		return nil
	}

	delay := opts.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	lockCtx, cancel := context.WithTimeout(ctx, opts.LockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, delay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrLocked
		}
		return err
	}
	if !locked {
		return ErrLocked
	}
	return nil
}

// ReplaceExt swaps the extension of path for ext. A path without an
// extension gets ext appended.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
