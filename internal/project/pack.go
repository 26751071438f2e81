package project

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// readPacked reads and decompresses a .tcrz archive.
func readPacked(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("not a packed project: %w", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompressing: %w", err)
	}
	return data, nil
}

// writePacked compresses data into a .tcrz archive.
func writePacked(path string, data []byte) error {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return err
	}
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("compressing: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing packed project %s: %w", path, err)
	}
	return nil
}

// Pack converts a plain project file into a .tcrz archive.
func Pack(src, dst string) error {
	if !strings.EqualFold(filepath.Ext(dst), PackedExt) {
		return fmt.Errorf("pack destination %s must end in %s", dst, PackedExt)
	}
	p, err := Load(src)
	if err != nil {
		return err
	}
	return p.Save(dst)
}

// Unpack converts a .tcrz archive back into a plain YAML project file.
func Unpack(src, dst string) error {
	if !strings.EqualFold(filepath.Ext(src), PackedExt) {
		return fmt.Errorf("unpack source %s must end in %s", src, PackedExt)
	}
	if strings.EqualFold(filepath.Ext(dst), PackedExt) {
		return fmt.Errorf("unpack destination %s must not end in %s", dst, PackedExt)
	}
	p, err := Load(src)
	if err != nil {
		return err
	}
	return p.Save(dst)
}
