package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

var program = []byte{0x3E, 0x05, 0x06, 0x03, 0x80, 0x76}

// compress encodes program with a writer from the given constructor.
func compress(t *testing.T, newWriter func(w io.Writer) (io.WriteCloser, error)) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := newWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(program)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	encoders := map[string]func(w io.Writer) (io.WriteCloser, error){
		".gz":  func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil },
		".xz":  func(w io.Writer) (io.WriteCloser, error) { return xz.NewWriter(w) },
		".zst": func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) },
		".lz4": func(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil },
		".br":  func(w io.Writer) (io.WriteCloser, error) { return brotli.NewWriter(w), nil },
	}
	for ext, newWriter := range encoders {
		t.Run(ext, func(t *testing.T) {
			data, err := Decompress(ext, compress(t, newWriter))
			require.NoError(t, err)
			require.Equal(t, program, data)
		})
	}
}

func TestDecompress_Zip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("program.gb")
	require.NoError(t, err)
	_, err = f.Write(program)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	data, err := Decompress(".ZIP", buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, program, data)

	buf.Reset()
	require.NoError(t, zip.NewWriter(&buf).Close())
	_, err = Decompress(".zip", buf.Bytes())
	require.ErrorIs(t, err, ErrEmptyArchive)
}

func TestDecompress_Invalid(t *testing.T) {
	for _, ext := range []string{".gz", ".xz", ".zip", ".7z"} {
		_, err := Decompress(ext, program)
		require.Error(t, err, ext)
	}
}

func TestDecompress_Plain(t *testing.T) {
	for _, ext := range []string{"", ".gb", ".bin"} {
		data, err := Decompress(ext, program)
		require.NoError(t, err)
		require.Equal(t, program, data)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "program.bin")
	require.NoError(t, os.WriteFile(plain, program, 0o644))
	data, err := LoadFile(plain)
	require.NoError(t, err)
	require.Equal(t, program, data)

	compressed := filepath.Join(dir, "program.bin.gz")
	require.NoError(t, os.WriteFile(compressed, compress(t, func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriter(w), nil
	}), 0o644))
	data, err = LoadFile(compressed)
	require.NoError(t, err)
	require.Equal(t, program, data)

	_, err = LoadFile(filepath.Join(dir, "missing.gb"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
