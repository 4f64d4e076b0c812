package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NewPrimaryButton creates a high-importance button, which fyne draws with
// the primary colour.
func NewPrimaryButton(label string, tapped func()) *widget.Button {
	btn := widget.NewButton(label, tapped)
	btn.Importance = widget.HighImportance
	return btn
}

// sizeWatcher stretches its objects over the whole area and reports size
// changes. fyne has no window resize callback.
type sizeWatcher struct {
	last     fyne.Size
	onResize func(fyne.Size)
}

func (s *sizeWatcher) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
	if size != s.last {
		s.last = size
		if s.onResize != nil {
			s.onResize(size)
		}
	}
}

func (s *sizeWatcher) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := fyne.NewSize(0, 0)
	for _, o := range objects {
		size = size.Max(o.MinSize())
	}
	return size
}
