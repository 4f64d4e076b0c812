package constants

import (
	"time"
)

// Application identity
const (
	// AppID is the fyne application ID (preferences, storage root).
	AppID = "com.openneighborhood.neighborhood"

	// AppTitle is the window title and the label of the root path node.
	AppTitle = "Neighborhood"

	// ConfigDirName is the directory created under the user config directory.
	ConfigDirName = "neighborhood"
)

// Remote operation limits
const (
	// DefaultConnectTimeout bounds a single connection attempt.
	DefaultConnectTimeout = 5 * time.Second

	// DefaultOperationTimeout bounds every other remote call (listing, rename, delete, transfers).
	DefaultOperationTimeout = 30 * time.Second

	// TransferChunkSize is the copy buffer used by mirror transfers (1 MB).
	// Progress events are published once per chunk.
	TransferChunkSize = 1024 * 1024
)

// Event bus configuration
const (
	// EventBusDefaultBuffer - default buffer size for event channels (1000)
	EventBusDefaultBuffer = 1000

	// EventBusMaxBuffer - maximum buffer size for high-throughput scenarios (5000)
	EventBusMaxBuffer = 5000
)

// Window defaults
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720

	// ElementTileWidth is the width of one contents tile in the grid.
	ElementTileWidth = 140
)

// Default address prefilled in the add-console dialog.
var DefaultConsoleAddress = [4]int{192, 168, 1, 100}
