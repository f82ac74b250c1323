package fsutil

import (
	"io"
	"os"
)

func Copy(input string, output string) error {
	src, err := os.Open(input)
	if err != nil {
		return err
	}
	defer src.Close()
	dest, err := NewOutputFile(output)
	if err != nil {
		return err
	}
	defer dest.Close()
	_, err = io.Copy(dest, src)
	return err
}

func NewOutputFile(dest string) (*os.File, error) {
	return os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0777)
}

// Recreate removes dir and everything under it, then makes it fresh. The
// generated site is always a full replacement, never an incremental update.
func Recreate(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0777)
}
