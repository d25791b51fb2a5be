package renameio

import (
	"bufio"
	"io"
	"os"
	"runtime"

	"github.com/hectane/go-acl"

	"github.com/safing/taxglobe/base/utils"
)

// WriteFile mirrors os.WriteFile, replacing an existing file with the same
// name atomically.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return Encode(filename, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// Encode streams the output of encode into filename, replacing an existing
// file atomically. Missing parent directories are created. If encode fails,
// the destination is left untouched.
func Encode(filename string, perm os.FileMode, encode func(w io.Writer) error) error {
	if err := utils.EnsureParent(filename); err != nil {
		return err
	}

	t, err := TempFile(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = t.Cleanup()
	}()

	if runtime.GOOS == "windows" {
		err = acl.Chmod(t.Name(), perm)
	} else {
		err = t.Chmod(perm)
	}
	if err != nil {
		return err
	}

	buf := bufio.NewWriter(t)
	if err := encode(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}

	return t.CloseAtomicallyReplace()
}
