package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	// Fyne scrolls about 12px per wheel step; native file managers move ~36px.
	scrollMultiplier = 3.0

	scrollBarMinLength = 20
	scrollBarWidth     = 12
)

// tileScroll scrolls the tile grid vertically at native wheel speed.
// It receives wheel events itself because it does not wrap a fyne.Scrollable.
type tileScroll struct {
	widget.BaseWidget
	content fyne.CanvasObject
	offset  float32

	// onScrolled receives the raw wheel delta.
	onScrolled func(dx, dy float32)
}

func newTileScroll(content fyne.CanvasObject, onScrolled func(dx, dy float32)) *tileScroll {
	s := &tileScroll{content: content, onScrolled: onScrolled}
	s.ExtendBaseWidget(s)
	return s
}

func (s *tileScroll) MinSize() fyne.Size {
	return fyne.NewSize(scrollBarWidth*3, scrollBarWidth*3)
}

func (s *tileScroll) Scrolled(e *fyne.ScrollEvent) {
	if s.onScrolled != nil {
		s.onScrolled(e.Scrolled.DX, e.Scrolled.DY)
	}
	s.scrollTo(s.offset - e.Scrolled.DY*scrollMultiplier)
}

// ScrollToTop shows the first row.
func (s *tileScroll) ScrollToTop() {
	s.scrollTo(0)
}

func (s *tileScroll) scrollTo(y float32) {
	s.offset = s.clamp(y)
	s.Refresh()
}

func (s *tileScroll) maxOffset() float32 {
	return s.content.MinSize().Height - s.Size().Height
}

func (s *tileScroll) clamp(y float32) float32 {
	limit := s.maxOffset()
	if limit <= 0 || y < 0 {
		return 0
	}
	if y > limit {
		return limit
	}
	return y
}

func (s *tileScroll) Resize(size fyne.Size) {
	s.BaseWidget.Resize(size)
	s.offset = s.clamp(s.offset)
}

func (s *tileScroll) CreateRenderer() fyne.WidgetRenderer {
	s.ExtendBaseWidget(s)
	return &tileScrollRenderer{
		scroll:     s,
		background: canvas.NewRectangle(color.Transparent),
		bar:        newScrollBar(s),
	}
}

type tileScrollRenderer struct {
	scroll     *tileScroll
	background *canvas.Rectangle
	bar        *scrollBar
}

func (r *tileScrollRenderer) Layout(size fyne.Size) {
	content := r.scroll.content
	width := size.Width - scrollBarWidth
	// The grid's height depends on its width, so size the width first.
	content.Resize(fyne.NewSize(width, content.Size().Height))
	height := content.MinSize().Height
	if height < size.Height {
		height = size.Height
	}
	content.Resize(fyne.NewSize(width, height))
	content.Move(fyne.NewPos(0, -r.scroll.offset))

	r.background.Resize(size)

	if height <= size.Height {
		r.bar.Hide()
		return
	}
	r.bar.Show()
	r.bar.Resize(fyne.NewSize(scrollBarWidth, size.Height))
	r.bar.Move(fyne.NewPos(size.Width-scrollBarWidth, 0))
	r.bar.update(r.scroll.offset, height, size.Height)
}

func (r *tileScrollRenderer) MinSize() fyne.Size { return r.scroll.MinSize() }

func (r *tileScrollRenderer) Refresh() {
	r.Layout(r.scroll.Size())
	r.scroll.content.Refresh()
	r.bar.Refresh()
	canvas.Refresh(r.scroll)
}

func (r *tileScrollRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.scroll.content, r.bar}
}

func (r *tileScrollRenderer) Destroy() {}

// scrollBar is the draggable thumb track on the right edge.
type scrollBar struct {
	widget.BaseWidget
	parent    *tileScroll
	thumbPos  float32
	thumbSize float32
}

func newScrollBar(parent *tileScroll) *scrollBar {
	b := &scrollBar{parent: parent}
	b.ExtendBaseWidget(b)
	return b
}

func (b *scrollBar) update(offset, contentLength, viewportLength float32) {
	b.thumbSize = viewportLength / contentLength * viewportLength
	if b.thumbSize < scrollBarMinLength {
		b.thumbSize = scrollBarMinLength
	}
	b.thumbPos = 0
	if limit := contentLength - viewportLength; limit > 0 {
		b.thumbPos = offset / limit * (viewportLength - b.thumbSize)
	}
}

func (b *scrollBar) Dragged(e *fyne.DragEvent) {
	limit := b.parent.maxOffset()
	track := b.parent.Size().Height - b.thumbSize
	if limit <= 0 || track <= 0 {
		return
	}
	b.parent.scrollTo(b.parent.offset + e.Dragged.DY/track*limit)
}

func (b *scrollBar) DragEnd() {}

func (b *scrollBar) CreateRenderer() fyne.WidgetRenderer {
	return &scrollBarRenderer{
		bar:   b,
		track: canvas.NewRectangle(theme.Color(theme.ColorNameScrollBar)),
		thumb: canvas.NewRectangle(theme.Color(theme.ColorNameForeground)),
	}
}

type scrollBarRenderer struct {
	bar   *scrollBar
	track *canvas.Rectangle
	thumb *canvas.Rectangle
}

func (r *scrollBarRenderer) Layout(size fyne.Size) {
	r.track.Resize(size)
	thumbWidth := size.Width * 0.6
	r.thumb.Resize(fyne.NewSize(thumbWidth, r.bar.thumbSize))
	r.thumb.Move(fyne.NewPos((size.Width-thumbWidth)/2, r.bar.thumbPos))
}

func (r *scrollBarRenderer) MinSize() fyne.Size {
	return fyne.NewSize(scrollBarWidth, scrollBarWidth)
}

func (r *scrollBarRenderer) Refresh() {
	r.track.FillColor = theme.Color(theme.ColorNameScrollBar)
	r.thumb.FillColor = theme.Color(theme.ColorNameForeground)
	r.Layout(r.bar.Size())
	r.track.Refresh()
	r.thumb.Refresh()
}

func (r *scrollBarRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.track, r.thumb}
}

func (r *scrollBarRenderer) Destroy() {}
