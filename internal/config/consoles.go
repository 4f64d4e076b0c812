package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/openneighborhood/neighborhood/internal/remote"
)

var (
	// ErrDuplicateConsole is returned when adding an address already listed.
	ErrDuplicateConsole = errors.New("console already exists")

	// ErrConsoleNotFound is returned when removing an unknown address.
	ErrConsoleNotFound = errors.New("console not found")
)

// KnownConsole is a console the user has added.
type KnownConsole struct {
	Name      string
	IPAddress string
}

// KnownConsoles persists the console list as name,ip_address rows.
// It is safe for concurrent use.
type KnownConsoles struct {
	mu   sync.Mutex
	path string
}

// NewKnownConsoles returns a store backed by path.
func NewKnownConsoles(path string) *KnownConsoles {
	return &KnownConsoles{path: path}
}

// Path returns the backing file.
func (k *KnownConsoles) Path() string { return k.path }

// List returns the saved consoles in insertion order. A missing file is an
// empty list.
func (k *KnownConsoles) List() ([]KnownConsole, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.read()
}

// Find returns the console saved under address.
func (k *KnownConsoles) Find(address string) (KnownConsole, bool, error) {
	consoles, err := k.List()
	if err != nil {
		return KnownConsole{}, false, err
	}
	for _, c := range consoles {
		if c.IPAddress == address {
			return c, true, nil
		}
	}
	return KnownConsole{}, false, nil
}

// Add appends a console. Invalid or already listed addresses are rejected.
func (k *KnownConsoles) Add(c KnownConsole) error {
	if !remote.IsValidIPv4(c.IPAddress) {
		return fmt.Errorf("%w: %q", remote.ErrInvalidAddress, c.IPAddress)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	consoles, err := k.read()
	if err != nil {
		return err
	}
	for _, existing := range consoles {
		if existing.IPAddress == c.IPAddress {
			return fmt.Errorf("%w: %s", ErrDuplicateConsole, c.IPAddress)
		}
	}
	if c.Name == "" {
		c.Name = c.IPAddress
	}
	return k.write(append(consoles, c))
}

// Remove deletes the console saved under address.
func (k *KnownConsoles) Remove(address string) error {
	if !remote.IsValidIPv4(address) {
		return fmt.Errorf("%w: %q", remote.ErrInvalidAddress, address)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	consoles, err := k.read()
	if err != nil {
		return err
	}
	for i, c := range consoles {
		if c.IPAddress == address {
			return k.write(append(consoles[:i], consoles[i+1:]...))
		}
	}
	return fmt.Errorf("%w: %s", ErrConsoleNotFound, address)
}

func (k *KnownConsoles) read() ([]KnownConsole, error) {
	file, err := os.Open(k.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open consoles file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read consoles CSV: %w", err)
	}

	var consoles []KnownConsole
	for i, record := range records {
		if i == 0 && len(record) >= 1 && strings.ToLower(record[0]) == "name" {
			continue
		}
		if len(record) < 2 {
			continue
		}
		consoles = append(consoles, KnownConsole{
			Name:      strings.TrimSpace(record[0]),
			IPAddress: strings.TrimSpace(record[1]),
		})
	}
	return consoles, nil
}

func (k *KnownConsoles) write(consoles []KnownConsole) error {
	if err := os.MkdirAll(filepath.Dir(k.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp := k.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create consoles file: %w", err)
	}

	writer := csv.NewWriter(file)
	records := [][]string{{"name", "ip_address"}}
	for _, c := range consoles {
		records = append(records, []string{c.Name, c.IPAddress})
	}
	if err := writer.WriteAll(records); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write consoles: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, k.path)
}
