// Package remotetest provides an in-memory remote.Console that records every
// call, for tests of code that drives a console.
package remotetest

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/openneighborhood/neighborhood/internal/remote"
)

// Call is one recorded method invocation.
type Call struct {
	Method string
	Args   []string
}

func (c Call) String() string {
	return c.Method + "(" + strings.Join(c.Args, ", ") + ")"
}

type node struct {
	file     remote.File
	children map[string]*node
}

// Console is a fake console holding an in-memory file tree.
type Console struct {
	mu      sync.Mutex
	name    string
	address string
	drives  []remote.Drive
	roots   map[string]*node
	calls   []Call
	failOn  map[string]error
	failArg map[string]error
	closed  bool
}

// NewConsole returns an empty console with the given name and address.
func NewConsole(name, address string) *Console {
	return &Console{
		name:    name,
		address: address,
		roots:   make(map[string]*node),
		failOn:  make(map[string]error),
		failArg: make(map[string]error),
	}
}

// AddDrive registers a drive with an empty root directory.
func (c *Console) AddDrive(name string) *Console {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := remote.NewDrive(name, 1<<30, 4<<30, 1<<30)
	c.drives = append(c.drives, d)
	c.roots[strings.ToUpper(d.Name)] = &node{
		file:     remote.File{Name: d.Name, IsDirectory: true},
		children: make(map[string]*node),
	}
	return c
}

// AddDir creates a directory and its missing parents. p is parsed with remote.ParsePath.
func (c *Console) AddDir(p string) *Console {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mkdirAll(remote.MustParsePath(p))
	return c
}

// AddFile creates a file of the given size, creating missing parents.
func (c *Console) AddFile(p string, size uint64) *Console {
	c.mu.Lock()
	defer c.mu.Unlock()
	path := remote.MustParsePath(p)
	parent := c.mkdirAll(path.Parent())
	now := time.Date(2010, 6, 1, 12, 0, 0, 0, time.UTC)
	parent.children[strings.ToLower(path.Base())] = &node{file: remote.NewFile(path.Base(), size, false, now, now)}
	return c
}

// FailOn makes every later call to method return err. A nil err clears it.
func (c *Console) FailOn(method string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.failOn, method)
		return
	}
	c.failOn[method] = err
}

// FailOnArg makes later calls to method fail with err when their first
// argument is arg. A nil err clears it.
func (c *Console) FailOnArg(method, arg string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := method + "\x00" + arg
	if err == nil {
		delete(c.failArg, key)
		return
	}
	c.failArg[key] = err
}

// Calls returns the recorded calls in order.
func (c *Console) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

// CallCount returns how many times method was called.
func (c *Console) CallCount(method string) int {
	n := 0
	for _, call := range c.Calls() {
		if call.Method == method {
			n++
		}
	}
	return n
}

// ResetCalls forgets recorded calls.
func (c *Console) ResetCalls() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = nil
}

// Exists reports whether p is present in the tree.
func (c *Console) Exists(p string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup(remote.MustParsePath(p)) != nil
}

// Closed reports whether Close was called.
func (c *Console) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Console) Name() string    { return c.name }
func (c *Console) Address() string { return c.address }

func (c *Console) GetDrives(ctx context.Context) ([]remote.Drive, error) {
	if err := c.record("GetDrives"); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]remote.Drive(nil), c.drives...), nil
}

func (c *Console) GetDirectoryContents(ctx context.Context, dir remote.Path) ([]remote.File, error) {
	if err := c.record("GetDirectoryContents", dir.String()); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.lookup(dir)
	if n == nil || !n.file.IsDirectory {
		return nil, fmt.Errorf("%s: %w", dir, remote.ErrNotFound)
	}
	files := make([]remote.File, 0, len(n.children))
	for _, child := range n.children {
		files = append(files, child.file)
	}
	remote.SortFiles(files)
	return files, nil
}

func (c *Console) LaunchXex(ctx context.Context, path remote.Path) error {
	if err := c.record("LaunchXex", path.String()); err != nil {
		return err
	}
	if !remote.IsXexName(path.Base()) {
		return remote.ErrNotXex
	}
	return nil
}

func (c *Console) DeleteFile(ctx context.Context, path remote.Path, isDirectory bool) error {
	if err := c.record("DeleteFile", path.String(), fmt.Sprint(isDirectory)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	parent := c.lookup(path.Parent())
	key := strings.ToLower(path.Base())
	if parent == nil || parent.children[key] == nil {
		return fmt.Errorf("%s: %w", path, remote.ErrNotFound)
	}
	delete(parent.children, key)
	return nil
}

func (c *Console) RenameFile(ctx context.Context, oldPath, newPath remote.Path) error {
	if err := c.record("RenameFile", oldPath.String(), newPath.String()); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	oldParent := c.lookup(oldPath.Parent())
	newParent := c.lookup(newPath.Parent())
	oldKey := strings.ToLower(oldPath.Base())
	newKey := strings.ToLower(newPath.Base())
	if oldParent == nil || oldParent.children[oldKey] == nil || newParent == nil {
		return fmt.Errorf("%s: %w", oldPath, remote.ErrNotFound)
	}
	if newParent.children[newKey] != nil {
		return fmt.Errorf("%s: %w", newPath, remote.ErrAlreadyExists)
	}
	n := oldParent.children[oldKey]
	delete(oldParent.children, oldKey)
	n.file.Name = newPath.Base()
	n.file.IsXex = !n.file.IsDirectory && remote.IsXexName(n.file.Name)
	newParent.children[newKey] = n
	return nil
}

func (c *Console) ReceiveFile(ctx context.Context, remotePath remote.Path, localPath string) error {
	if err := c.record("ReceiveFile", remotePath.String(), localPath); err != nil {
		return err
	}
	c.mu.Lock()
	n := c.lookup(remotePath)
	c.mu.Unlock()
	if n == nil || n.file.IsDirectory {
		return fmt.Errorf("%s: %w", remotePath, remote.ErrNotFound)
	}
	return os.WriteFile(localPath, make([]byte, n.file.Size), 0o644)
}

func (c *Console) ReceiveDirectory(ctx context.Context, remotePath remote.Path, localPath string) error {
	if err := c.record("ReceiveDirectory", remotePath.String(), localPath); err != nil {
		return err
	}
	c.mu.Lock()
	n := c.lookup(remotePath)
	c.mu.Unlock()
	if n == nil || !n.file.IsDirectory {
		return fmt.Errorf("%s: %w", remotePath, remote.ErrNotFound)
	}
	return os.MkdirAll(localPath, 0o755)
}

func (c *Console) SendFile(ctx context.Context, localPath string, remotePath remote.Path) error {
	if err := c.record("SendFile", localPath, remotePath.String()); err != nil {
		return err
	}
	info, err := os.Stat(localPath)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	parent := c.lookup(remotePath.Parent())
	if parent == nil {
		return fmt.Errorf("%s: %w", remotePath.Parent(), remote.ErrNotFound)
	}
	parent.children[strings.ToLower(remotePath.Base())] = &node{
		file: remote.NewFile(remotePath.Base(), uint64(info.Size()), false, info.ModTime(), info.ModTime()),
	}
	return nil
}

func (c *Console) CreateDirectory(ctx context.Context, path remote.Path) error {
	if err := c.record("CreateDirectory", path.String()); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lookup(path) != nil {
		return fmt.Errorf("%s: %w", path, remote.ErrAlreadyExists)
	}
	if c.lookup(path.Parent()) == nil {
		return fmt.Errorf("%s: %w", path.Parent(), remote.ErrNotFound)
	}
	c.mkdirAll(path)
	return nil
}

func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *Console) record(method string, args ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, Call{Method: method, Args: args})
	if c.closed {
		return remote.ErrClosed
	}
	if len(args) > 0 {
		if err := c.failArg[method+"\x00"+args[0]]; err != nil {
			return err
		}
	}
	return c.failOn[method]
}

func (c *Console) lookup(p remote.Path) *node {
	n := c.roots[strings.ToUpper(p.Drive())]
	for _, seg := range p.Segments() {
		if n == nil {
			return nil
		}
		n = n.children[strings.ToLower(seg)]
	}
	return n
}

func (c *Console) mkdirAll(p remote.Path) *node {
	n := c.roots[strings.ToUpper(p.Drive())]
	if n == nil {
		panic("remotetest: unknown drive " + p.Drive())
	}
	for _, seg := range p.Segments() {
		child := n.children[strings.ToLower(seg)]
		if child == nil {
			child = &node{
				file:     remote.File{Name: seg, IsDirectory: true},
				children: make(map[string]*node),
			}
			n.children[strings.ToLower(seg)] = child
		}
		n = child
	}
	return n
}

// Dialer hands out registered consoles by address.
type Dialer struct {
	mu       sync.Mutex
	consoles map[string]*Console
	dials    []string
}

// NewDialer returns a dialer that knows the given consoles.
func NewDialer(consoles ...*Console) *Dialer {
	d := &Dialer{consoles: make(map[string]*Console)}
	for _, c := range consoles {
		d.consoles[c.Address()] = c
	}
	return d
}

// Dial returns the console registered for address. A closed console is
// reopened so tests can reconnect.
func (d *Dialer) Dial(ctx context.Context, address string) (remote.Console, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dials = append(d.dials, address)
	c, ok := d.consoles[address]
	if !ok {
		return nil, fmt.Errorf("dial %s: connection refused", address)
	}
	c.mu.Lock()
	c.closed = false
	c.mu.Unlock()
	return c, nil
}

// Dials returns the addresses dialed so far.
func (d *Dialer) Dials() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.dials...)
}
