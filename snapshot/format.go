package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/spatialgo"
	"github.com/hupe1980/spatialgo/blobstore"
	"github.com/hupe1980/spatialgo/codec"
)

// Blob layout: magic, format version, codec name, compression name, then
// the compressed payload. The header is uncompressed so a reader can
// select codec and compression before touching the payload.
var magic = [4]byte{'S', 'G', 'E', 'O'}

const formatVersion = 1

// Compression names the payload compression. The name is persisted in the
// snapshot header.
type Compression string

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = "none"

	// CompressionLZ4 uses the lz4 frame format: fast with modest ratios,
	// a good default for coordinate-heavy payloads.
	CompressionLZ4 Compression = "lz4"

	// CompressionS2 uses the s2 stream format: faster compression than
	// lz4 at comparable ratios on repetitive data.
	CompressionS2 Compression = "s2"
)

// Options configures snapshot encoding and store access.
type Options struct {
	// Codec encodes the snapshot record. Defaults to codec.Default.
	Codec codec.Codec

	// Compression names the payload compression. Defaults to
	// CompressionLZ4.
	Compression Compression

	// Logger receives save/load events. Defaults to a noop logger.
	Logger *spatialgo.Logger

	// Metrics receives save/load measurements. Defaults to noop.
	Metrics spatialgo.MetricsCollector
}

func defaultOptions() Options {
	return Options{
		Codec:       codec.Default,
		Compression: CompressionLZ4,
		Logger:      spatialgo.NoopLogger(),
		Metrics:     spatialgo.NoopMetricsCollector{},
	}
}

// WithCodec sets the payload codec.
func WithCodec(c codec.Codec) func(*Options) {
	return func(o *Options) {
		if c != nil {
			o.Codec = c
		}
	}
}

// WithCompression sets the payload compression.
func WithCompression(c Compression) func(*Options) {
	return func(o *Options) { o.Compression = c }
}

// WithLogger sets the logger for store access. If nil is passed, logging
// is disabled.
func WithLogger(logger *spatialgo.Logger) func(*Options) {
	return func(o *Options) {
		if logger == nil {
			logger = spatialgo.NoopLogger()
		}
		o.Logger = logger
	}
}

// WithMetrics sets the metrics collector for store access.
// If nil is passed, spatialgo.NoopMetricsCollector is used.
func WithMetrics(collector spatialgo.MetricsCollector) func(*Options) {
	return func(o *Options) {
		if collector == nil {
			collector = spatialgo.NoopMetricsCollector{}
		}
		o.Metrics = collector
	}
}

// Encode serializes the snapshot into the self-describing blob format.
func Encode(snap *Snapshot, optFns ...func(*Options)) ([]byte, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	payload, err := opts.Codec.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("snapshot: marshal: %w", err)
	}

	compressed, err := compress(payload, opts.Compression)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(formatVersion)
	writeString(&buf, opts.Codec.Name())
	writeString(&buf, string(opts.Compression))
	buf.Write(compressed)

	return buf.Bytes(), nil
}

// Decode parses a snapshot blob, selecting codec and compression from the
// header.
func Decode(data []byte) (*Snapshot, error) {
	r := bytes.NewReader(data)

	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil || m != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrBadSnapshot)
	}

	version, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrBadSnapshot)
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, version)
	}

	codecName, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrBadSnapshot)
	}
	compName, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrBadSnapshot)
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown codec %q", ErrBadSnapshot, codecName)
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	payload, err := decompress(compressed, Compression(compName))
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := c.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if err := snap.validate(); err != nil {
		return nil, err
	}

	return &snap, nil
}

// Save encodes the snapshot and writes it to the store under name.
func Save(ctx context.Context, store blobstore.BlobStore, name string, snap *Snapshot, optFns ...func(*Options)) error {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()

	data, err := Encode(snap, optFns...)
	if err == nil {
		err = store.Put(ctx, name, data)
	}

	opts.Metrics.RecordSnapshotSave(len(data), time.Since(start), err)
	opts.Logger.LogSnapshotSave(ctx, name, len(data), err)

	return err
}

// Load reads and decodes the snapshot stored under name.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...func(*Options)) (*Snapshot, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()

	snap, n, err := load(ctx, store, name)

	opts.Metrics.RecordSnapshotLoad(n, time.Since(start), err)
	opts.Logger.LogSnapshotLoad(ctx, name, n, err)

	return snap, err
}

func load(ctx context.Context, store blobstore.BlobStore, name string) (*Snapshot, int, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, 0, err
	}
	defer blob.Close()

	data, err := blobstore.ReadAll(blob)
	if err != nil {
		return nil, 0, err
	}

	snap, err := Decode(data)
	return snap, len(data), err
}

func compress(payload []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return payload, nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(payload); err != nil {
			return nil, fmt.Errorf("snapshot: lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("snapshot: lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	case CompressionS2:
		var buf bytes.Buffer
		w := s2.NewWriter(&buf)
		if _, err := w.Write(payload); err != nil {
			return nil, fmt.Errorf("snapshot: s2 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("snapshot: s2 compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("snapshot: unknown compression %q", comp)
	}
}

func decompress(data []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return data, nil
	case CompressionLZ4:
		payload, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("snapshot: lz4 decompress: %w", err)
		}
		return payload, nil
	case CompressionS2:
		payload, err := io.ReadAll(s2.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("snapshot: s2 decompress: %w", err)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("%w: unknown compression %q", ErrBadSnapshot, comp)
	}
}

func writeString(buf *bytes.Buffer, s string) {
	var n [2]byte
	binary.LittleEndian.PutUint16(n[:], uint16(len(s)))
	buf.Write(n[:])
	buf.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	var n [2]byte
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return "", err
	}
	b := make([]byte, binary.LittleEndian.Uint16(n[:]))
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}
