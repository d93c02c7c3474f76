package slot

import (
	"bytes"
	"context"
	"fmt"
	"errors"
	"io"
	"sync"

	"hrdesk/internal/core"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

var errCompressedClosed = errors.New("compressed backend closed")

var (
	zstdMagic   = []byte{0x28, 0xB5, 0x2F, 0xFD}
	brotliMagic = []byte("BR1\x00")
)

// Compressed 寫入時依設定壓縮，讀取時依 magic number 判斷格式，
// 所以切換壓縮方式後舊資料仍可讀
type Compressed struct {
	Backend
	algo    core.Compression
	minSize int
	encoder *zstd.Encoder
	decoder *zstd.Decoder

	mu     sync.RWMutex
	closed bool
}

func NewCompressed(inner Backend, algo core.Compression, minSize int) (*Compressed, error) {
	switch algo {
	case core.CompressionNone, core.CompressionZstd, core.CompressionBrotli:
	case "":
		algo = core.CompressionNone
	default:
		return nil, fmt.Errorf("unsupported compression %q", algo)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = enc.Close()
		return nil, err
	}
	return &Compressed{Backend: inner, algo: algo, minSize: minSize, encoder: enc, decoder: dec}, nil
}

// Close 釋放 zstd encoder/decoder 的 goroutine，可重複呼叫；不會關閉內層 Backend
func (c *Compressed) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.decoder.Close()
	return c.encoder.Close()
}

func (c *Compressed) Get(ctx context.Context, name core.SlotName) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, errCompressedClosed
	}
	raw, err := c.Backend.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return c.decode(raw)
}

func (c *Compressed) Set(ctx context.Context, name core.SlotName, value []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errCompressedClosed
	}
	encoded, err := c.encode(value)
	if err != nil {
		return fmt.Errorf("compress slot %s: %w", name, err)
	}
	return c.Backend.Set(ctx, name, encoded)
}

func (c *Compressed) encode(value []byte) ([]byte, error) {
	if len(value) < c.minSize {
		return value, nil
	}
	switch c.algo {
	case core.CompressionZstd:
		return c.encoder.EncodeAll(value, make([]byte, 0, len(value)/2)), nil
	case core.CompressionBrotli:
		var buf bytes.Buffer
		buf.Write(brotliMagic)
		w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
		if _, err := w.Write(value); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return value, nil
	}
}

func (c *Compressed) decode(raw []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(raw, zstdMagic):
		return c.decoder.DecodeAll(raw, nil)
	case bytes.HasPrefix(raw, brotliMagic):
		return io.ReadAll(brotli.NewReader(bytes.NewReader(raw[len(brotliMagic):])))
	default:
		return raw, nil
	}
}
