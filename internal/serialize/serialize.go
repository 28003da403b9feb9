// Package serialize provides the compressed MessagePack codec used for
// catalog snapshots.
package serialize

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Shared zstd coders, created on first use. EncodeAll and DecodeAll are
// safe for concurrent use, so one of each serves the whole process.
var (
	encOnce sync.Once
	enc     *zstd.Encoder
	encErr  error

	decOnce sync.Once
	dec     *zstd.Decoder
	decErr  error
)

func encoder() (*zstd.Encoder, error) {
	encOnce.Do(func() {
		enc, encErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	})
	return enc, encErr
}

func decoder() (*zstd.Decoder, error) {
	decOnce.Do(func() {
		dec, decErr = zstd.NewReader(nil)
	})
	return dec, decErr
}

// Encode serializes v with MessagePack and compresses it with ZStandard.
func Encode(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	e, err := encoder()
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	return e.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decode decompresses data produced by Encode and deserializes it into v,
// which must be a pointer to the target structure.
func Decode(data []byte, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("decode snapshot: empty data")
	}

	d, err := decoder()
	if err != nil {
		return fmt.Errorf("create zstd decoder: %w", err)
	}

	raw, err := d.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("decompress snapshot: %w", err)
	}

	if err := msgpack.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	return nil
}
