package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/klauspost/compress/zstd"
)

// DefaultCompressionThreshold is the canonical JSON size (bytes) from which
// payloads are compressed.
const DefaultCompressionThreshold = 1024

// ErrCorruptPayload indicates that a stored payload cannot be decoded
var ErrCorruptPayload = errors.New("corrupt payload")

// Encoded is the storable form of a JSON value
type Encoded struct {
	Payload        []byte // canonical JSON or zstd frame
	Checksum       string // FNV-1a 32 over the uncompressed canonical JSON
	RawSize        int    // size of the canonical JSON
	CompressedSize int    // size of Payload
	Compressed     bool
}

// Codec serializes JSON values to canonical text and compresses large ones.
// A Codec is safe for concurrent use.
type Codec struct {
	encoder   *zstd.Encoder
	decoder   *zstd.Decoder
	threshold int
}

// New creates a codec. threshold <= 0 selects DefaultCompressionThreshold.
func New(threshold int) (*Codec, error) {
	if threshold <= 0 {
		threshold = DefaultCompressionThreshold
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		_ = encoder.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}

	return &Codec{
		encoder:   encoder,
		decoder:   decoder,
		threshold: threshold,
	}, nil
}

// Threshold returns the compression threshold in bytes
func (c *Codec) Threshold() int {
	return c.threshold
}

// Close releases compressor resources
func (c *Codec) Close() error {
	c.decoder.Close()
	return c.encoder.Close()
}

// Encode serializes v to canonical JSON, computes its checksum and
// compresses it when it reaches the threshold and compression pays off.
func (c *Codec) Encode(v any) (*Encoded, error) {
	canonical, err := Canonical(v)
	if err != nil {
		return nil, err
	}

	enc := &Encoded{
		Payload:        canonical,
		Checksum:       Checksum(canonical),
		RawSize:        len(canonical),
		CompressedSize: len(canonical),
	}

	if len(canonical) < c.threshold {
		return enc, nil
	}

	compressed := c.encoder.EncodeAll(canonical, make([]byte, 0, len(canonical)/2))
	// Сжатие сохраняем только если оно действительно уменьшило размер
	if len(compressed) < len(canonical) {
		enc.Payload = compressed
		enc.CompressedSize = len(compressed)
		enc.Compressed = true
	}

	return enc, nil
}

// Decode inverts Encode and returns the generic JSON value
func (c *Codec) Decode(payload []byte, compressed bool) (any, error) {
	raw, err := c.Raw(payload, compressed)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	return v, nil
}

// Raw returns the uncompressed canonical JSON held by payload
func (c *Codec) Raw(payload []byte, compressed bool) ([]byte, error) {
	if !compressed {
		return payload, nil
	}

	raw, err := c.decoder.DecodeAll(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	return raw, nil
}

// Canonical returns the canonical JSON text of v: object keys sorted,
// numbers kept in their literal form, no HTML escaping.
func Canonical(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	// Перечитываем в generic форму: map[string]any сериализуется с отсортированными ключами
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("failed to normalize value: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(generic); err != nil {
		return nil, fmt.Errorf("failed to encode canonical value: %w", err)
	}

	// json.Encoder добавляет перевод строки
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Checksum returns the FNV-1a 32-bit hash of canonical as 8 hex digits.
// It detects drift and corruption only; it is not a security primitive.
func Checksum(canonical []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(canonical)
	return fmt.Sprintf("%08x", h.Sum32())
}

// ChecksumOf canonicalizes v and returns its checksum
func ChecksumOf(v any) (string, error) {
	canonical, err := Canonical(v)
	if err != nil {
		return "", err
	}
	return Checksum(canonical), nil
}
