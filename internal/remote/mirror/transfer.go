package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/openneighborhood/neighborhood/internal/constants"
	"github.com/openneighborhood/neighborhood/internal/diskspace"
	"github.com/openneighborhood/neighborhood/internal/events"
	"github.com/openneighborhood/neighborhood/internal/localfs"
	"github.com/openneighborhood/neighborhood/internal/remote"
)

func (c *Console) ReceiveFile(ctx context.Context, remotePath remote.Path, localPath string) error {
	src, err := c.resolve(ctx, remotePath)
	if err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return notFound(remotePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", remotePath)
	}
	if err := diskspace.CheckAvailableSpace(filepath.Dir(localPath), uint64(info.Size())); err != nil {
		return err
	}

	t := c.startTransfer(events.Download, remotePath, localPath, info.Size())
	err = localfs.CopyFile(ctx, src, localPath, constants.TransferChunkSize, t.progress)
	t.finish(err)
	return err
}

func (c *Console) ReceiveDirectory(ctx context.Context, remotePath remote.Path, localPath string) error {
	src, err := c.resolve(ctx, remotePath)
	if err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return notFound(remotePath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", remotePath)
	}
	size, err := localfs.TreeSize(src, c.showHidden)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}
	if err := diskspace.CheckAvailableSpace(filepath.Dir(localPath), uint64(size)); err != nil {
		return err
	}

	t := c.startTransfer(events.Download, remotePath, localPath, size)
	err = localfs.CopyTree(ctx, src, localPath, c.showHidden, constants.TransferChunkSize, t.progress)
	t.finish(err)
	return err
}

func (c *Console) SendFile(ctx context.Context, localPath string, remotePath remote.Path) error {
	dst, err := c.resolve(ctx, remotePath)
	if err != nil {
		return err
	}
	info, err := os.Stat(localPath)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", localPath)
	}
	if _, err := os.Stat(filepath.Dir(dst)); err != nil {
		return notFound(remotePath.Parent(), err)
	}

	t := c.startTransfer(events.Upload, remotePath, localPath, info.Size())
	err = localfs.CopyFile(ctx, localPath, dst, constants.TransferChunkSize, t.progress)
	t.finish(err)
	return err
}

// transfer publishes the lifecycle of one copy on the event bus.
type transfer struct {
	bus  *events.EventBus
	base events.TransferEvent
}

func (c *Console) startTransfer(dir events.TransferDirection, remotePath remote.Path, localPath string, size int64) *transfer {
	t := &transfer{
		bus: c.bus,
		base: events.TransferEvent{
			ID:         fmt.Sprintf("%s-%d", dir, transferSeq.Add(1)),
			Direction:  dir,
			Name:       remotePath.Base(),
			RemotePath: remotePath.String(),
			LocalPath:  localPath,
			Size:       size,
		},
	}
	t.publish(events.EventTransferStarted, 0, nil)
	return t
}

func (t *transfer) progress(copied int64) {
	t.publish(events.EventTransferProgress, copied, nil)
}

func (t *transfer) finish(err error) {
	if err != nil {
		t.publish(events.EventTransferFailed, 0, err)
		return
	}
	t.publish(events.EventTransferCompleted, t.base.Size, nil)
}

func (t *transfer) publish(eventType events.EventType, bytes int64, err error) {
	if t.bus == nil {
		return
	}
	ev := t.base
	ev.BaseEvent = events.BaseEvent{EventType: eventType, Time: time.Now()}
	ev.Bytes = bytes
	ev.Error = err
	t.bus.Publish(&ev)
}
