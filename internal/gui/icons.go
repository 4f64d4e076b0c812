package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/openneighborhood/neighborhood/internal/elements"
)

func iconResource(icon elements.Icon) fyne.Resource {
	switch icon {
	case elements.IconConsole:
		return theme.ComputerIcon()
	case elements.IconDrive:
		return theme.StorageIcon()
	case elements.IconFolder:
		return theme.FolderIcon()
	case elements.IconExecutable:
		return theme.FileApplicationIcon()
	case elements.IconAdd:
		return theme.ContentAddIcon()
	case elements.IconParent:
		return theme.NavigateBackIcon()
	case elements.IconPathNode:
		return theme.NavigateNextIcon()
	default:
		return theme.FileIcon()
	}
}
