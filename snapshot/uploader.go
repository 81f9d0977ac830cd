package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/spatialgo/blobstore"
	"github.com/hupe1980/spatialgo/resource"
)

// copyChunkSize is the streaming chunk size. It must fit the controller's
// IO burst, so limits below it would starve the copy.
const copyChunkSize = 32 * 1024

// onlyReader and onlyWriter hide WriteTo/ReadFrom so io.CopyBuffer moves
// data chunk by chunk instead of in one shot, keeping each IO charge
// within the controller's burst.
type onlyReader struct{ io.Reader }

type onlyWriter struct{ io.Writer }

// Uploader moves snapshots between a blob store and memory under the
// budgets of a resource controller: a bounded number of concurrent
// transfers, each streamed through the controller's IO rate limit.
type Uploader struct {
	store blobstore.BlobStore
	rc    *resource.Controller
}

// NewUploader creates a new Uploader.
func NewUploader(store blobstore.BlobStore, rc *resource.Controller) *Uploader {
	return &Uploader{
		store: store,
		rc:    rc,
	}
}

// Upload encodes the snapshot and writes it under name, blocking until a
// transfer slot is free. The encoded bytes are paced through the
// controller's IO limit before the store write.
func (u *Uploader) Upload(ctx context.Context, name string, snap *Snapshot, optFns ...func(*Options)) error {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()

	n, err := u.upload(ctx, name, snap, optFns)

	opts.Metrics.RecordSnapshotSave(n, time.Since(start), err)
	opts.Logger.LogSnapshotSave(ctx, name, n, err)

	return err
}

func (u *Uploader) upload(ctx context.Context, name string, snap *Snapshot, optFns []func(*Options)) (int, error) {
	data, err := Encode(snap, optFns...)
	if err != nil {
		return 0, err
	}

	if err := u.rc.AcquireBackground(ctx); err != nil {
		return 0, fmt.Errorf("snapshot: acquire upload slot: %w", err)
	}
	defer u.rc.ReleaseBackground()

	var buf bytes.Buffer
	buf.Grow(len(data))

	w := resource.NewRateLimitedWriter(ctx, &buf, u.rc)
	if _, err := io.CopyBuffer(w, onlyReader{bytes.NewReader(data)}, make([]byte, copyChunkSize)); err != nil {
		return 0, fmt.Errorf("snapshot: throttle upload: %w", err)
	}

	return len(data), u.store.Put(ctx, name, buf.Bytes())
}

// Download reads and decodes the snapshot stored under name, pacing the
// blob bytes through the controller's IO limit.
func (u *Uploader) Download(ctx context.Context, name string, optFns ...func(*Options)) (*Snapshot, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()

	snap, n, err := u.download(ctx, name)

	opts.Metrics.RecordSnapshotLoad(n, time.Since(start), err)
	opts.Logger.LogSnapshotLoad(ctx, name, n, err)

	return snap, err
}

func (u *Uploader) download(ctx context.Context, name string) (*Snapshot, int, error) {
	blob, err := u.store.Open(ctx, name)
	if err != nil {
		return nil, 0, err
	}
	defer blob.Close()

	if err := u.rc.AcquireBackground(ctx); err != nil {
		return nil, 0, fmt.Errorf("snapshot: acquire download slot: %w", err)
	}
	defer u.rc.ReleaseBackground()

	var buf bytes.Buffer
	buf.Grow(int(blob.Size()))

	r := resource.NewRateLimitedReader(ctx, io.NewSectionReader(blob, 0, blob.Size()), u.rc)
	if _, err := io.CopyBuffer(onlyWriter{&buf}, r, make([]byte, copyChunkSize)); err != nil {
		return nil, 0, fmt.Errorf("snapshot: throttle download: %w", err)
	}

	snap, err := Decode(buf.Bytes())
	return snap, buf.Len(), err
}
