package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressor compresses and decompresses whole blobs.
// Implementations must be safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// CompressedStore is a Store middleware that transparently compresses blobs
// before handing them to the inner store.
//
// Because the inner representation is compressed, Append degrades to a full
// read-modify-write of the blob. Use an uncompressed LocalStore when
// concurrent-append safety matters more than disk footprint.
type CompressedStore struct {
	inner      Store
	compressor Compressor
}

// NewCompressedStore wraps inner with whole-blob compression.
func NewCompressedStore(inner Store, compressor Compressor) *CompressedStore {
	return &CompressedStore{inner: inner, compressor: compressor}
}

// ReadAll returns the decompressed content of the named blob.
func (s *CompressedStore) ReadAll(ctx context.Context, name string) ([]byte, error) {
	data, err := s.inner.ReadAll(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.compressor.Decompress(data)
}

// WriteAll compresses data and replaces the named blob.
func (s *CompressedStore) WriteAll(ctx context.Context, name string, data []byte) error {
	compressed, err := s.compressor.Compress(data)
	if err != nil {
		return err
	}
	return s.inner.WriteAll(ctx, name, compressed)
}

// Append appends rows by rewriting the whole blob.
func (s *CompressedStore) Append(ctx context.Context, name string, header, rows []byte) error {
	data, err := s.ReadAll(ctx, name)
	if errors.Is(err, ErrNotFound) {
		data = append([]byte(nil), header...)
	} else if err != nil {
		return err
	}
	return s.WriteAll(ctx, name, append(data, rows...))
}

// Delete removes the named blob.
func (s *CompressedStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List returns the names of all blobs in the inner store.
func (s *CompressedStore) List(ctx context.Context) ([]string, error) {
	return s.inner.List(ctx)
}

// ZstdCompressor compresses blobs with zstd.
type ZstdCompressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstdCompressor creates a zstd Compressor at the default level.
func NewZstdCompressor() (*ZstdCompressor, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &ZstdCompressor{encoder: encoder, decoder: decoder}, nil
}

// Compress compresses data.
func (c *ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return c.encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses data.
func (c *ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	return c.decoder.DecodeAll(data, nil)
}

// Name returns the unique name of the compressor ("zstd").
func (c *ZstdCompressor) Name() string { return "zstd" }

// LZ4Compressor compresses blobs with the lz4 frame format.
type LZ4Compressor struct{}

// NewLZ4Compressor creates an lz4 Compressor.
func NewLZ4Compressor() *LZ4Compressor { return &LZ4Compressor{} }

// Compress compresses data.
func (c *LZ4Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decompresses data.
func (c *LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

// Name returns the unique name of the compressor ("lz4").
func (c *LZ4Compressor) Name() string { return "lz4" }
