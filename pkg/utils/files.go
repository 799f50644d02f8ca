// Package utils provides helpers for loading program images from disk.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("utils: archive is empty")

// Extensions lists the compressed formats understood by LoadFile.
var Extensions = []string{".gz", ".zip", ".7z", ".xz", ".zst", ".lz4", ".br"}

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	data, err = Decompress(filepath.Ext(filename), data)
	if err != nil {
		return nil, fmt.Errorf("utils: loading %s: %w", filename, err)
	}
	return data, nil
}

// Decompress decodes data according to the file extension ext. Data
// with an unknown extension, or none, is returned as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var (
		decoder io.Reader
		err     error
	)
	r := bytes.NewReader(data)

	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(r)
	case ".xz":
		decoder, err = xz.NewReader(r)
	case ".zst":
		var d *zstd.Decoder
		if d, err = zstd.NewReader(r); err == nil {
			defer d.Close()
			decoder = d
		}
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".br":
		decoder = brotli.NewReader(r)
	case ".zip":
		var zr *zip.Reader
		if zr, err = zip.NewReader(r, int64(len(data))); err != nil {
			return nil, err
		}
		if len(zr.File) == 0 {
			return nil, ErrEmptyArchive
		}
		return readArchived(zr.File[0].Open)
	case ".7z":
		var sr *sevenzip.Reader
		if sr, err = sevenzip.NewReader(r, int64(len(data))); err != nil {
			return nil, err
		}
		if len(sr.File) == 0 {
			return nil, ErrEmptyArchive
		}
		return readArchived(sr.File[0].Open)
	default:
		return data, nil
	}

	if err != nil {
		return nil, err
	}
	return io.ReadAll(decoder)
}

// readArchived reads the whole of an archived file.
func readArchived(open func() (io.ReadCloser, error)) ([]byte, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
