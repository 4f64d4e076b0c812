package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/openneighborhood/neighborhood/internal/constants"
	"github.com/openneighborhood/neighborhood/internal/elements"
	"github.com/openneighborhood/neighborhood/internal/events"
)

// elementTile draws one element. Double tap clicks it, secondary tap opens
// its context menu.
type elementTile struct {
	widget.BaseWidget
	ui   *UI
	elem elements.Element
}

func newElementTile(ui *UI, elem elements.Element) *elementTile {
	t := &elementTile{ui: ui, elem: elem}
	t.ExtendBaseWidget(t)
	return t
}

func (t *elementTile) CreateRenderer() fyne.WidgetRenderer {
	icon := widget.NewIcon(iconResource(t.elem.Icon()))
	iconBox := container.NewGridWrap(fyne.NewSize(48, 48), icon)
	label := widget.NewLabel(t.elem.Label())
	label.Alignment = fyne.TextAlignCenter
	label.Truncation = fyne.TextTruncateEllipsis
	return widget.NewSimpleRenderer(container.NewVBox(container.NewCenter(iconBox), label))
}

func (t *elementTile) Tapped(*fyne.PointEvent) {}

func (t *elementTile) DoubleTapped(*fyne.PointEvent) {
	t.elem.OnClick()
	t.ui.requestFrame()
}

func (t *elementTile) TappedSecondary(e *fyne.PointEvent) {
	t.ui.showMenu(t.elem.ContextMenu(), e.AbsolutePosition)
}

// showMenu pops up actions at pos; each runs and then a frame follows.
func (ui *UI) showMenu(actions []elements.Action, pos fyne.Position) {
	if len(actions) == 0 {
		return
	}
	items := make([]*fyne.MenuItem, 0, len(actions))
	for _, a := range actions {
		run := a.Run
		item := fyne.NewMenuItem(a.Label, func() {
			run()
			ui.requestFrame()
		})
		if a.Destructive {
			item.Icon = theme.DeleteIcon()
		}
		items = append(items, item)
	}
	widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), ui.window.Canvas(), pos)
}

// backgroundLayer sits behind the tiles: it turns mouse input into app
// events and offers the location actions on empty space.
type backgroundLayer struct {
	widget.BaseWidget
	ui *UI
}

func newBackgroundLayer(ui *UI) *backgroundLayer {
	b := &backgroundLayer{ui: ui}
	b.ExtendBaseWidget(b)
	return b
}

func (b *backgroundLayer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (b *backgroundLayer) Tapped(*fyne.PointEvent) {}

func (b *backgroundLayer) TappedSecondary(e *fyne.PointEvent) {
	b.ui.showMenu(b.ui.layer.Contents.Actions(), e.AbsolutePosition)
}

func (b *backgroundLayer) MouseDown(e *desktop.MouseEvent) {
	b.ui.Dispatch(&events.MouseButtonPressedEvent{Button: mouseButton(e.Button), X: e.Position.X, Y: e.Position.Y})
}

func (b *backgroundLayer) MouseUp(e *desktop.MouseEvent) {
	b.ui.Dispatch(&events.MouseButtonReleasedEvent{Button: mouseButton(e.Button), X: e.Position.X, Y: e.Position.Y})
}

func (b *backgroundLayer) MouseIn(*desktop.MouseEvent) {}
func (b *backgroundLayer) MouseOut()                   {}

func (b *backgroundLayer) MouseMoved(e *desktop.MouseEvent) {
	b.ui.layer.OnEvent(&events.MouseMovedEvent{X: e.Position.X, Y: e.Position.Y})
}

// contentsView is the grid of element tiles.
type contentsView struct {
	ui     *UI
	grid   *fyne.Container
	scroll *tileScroll
	object fyne.CanvasObject
}

func newContentsView(ui *UI) *contentsView {
	v := &contentsView{ui: ui}
	v.grid = container.NewGridWrap(fyne.NewSize(constants.ElementTileWidth, constants.ElementTileWidth*3/4))
	v.scroll = newTileScroll(v.grid, func(dx, dy float32) {
		ui.layer.OnEvent(&events.MouseScrolledEvent{DX: dx, DY: dy})
	})
	v.object = container.NewStack(newBackgroundLayer(ui), v.scroll)
	return v
}

func (v *contentsView) Object() fyne.CanvasObject { return v.object }

// Update replaces the tiles. parent is drawn first when not nil.
func (v *contentsView) Update(parent *elements.GoToParentButton, elems []elements.Element) {
	objects := make([]fyne.CanvasObject, 0, len(elems)+1)
	if parent != nil {
		objects = append(objects, newElementTile(v.ui, parent))
	}
	for _, e := range elems {
		objects = append(objects, newElementTile(v.ui, e))
	}
	v.grid.Objects = objects
	v.grid.Refresh()
	v.scroll.ScrollToTop()
}

// pathView is the path bar: one button per node.
type pathView struct {
	ui  *UI
	box *fyne.Container
}

func newPathView(ui *UI) *pathView {
	return &pathView{ui: ui, box: container.NewHBox()}
}

func (v *pathView) Object() fyne.CanvasObject {
	return container.NewHScroll(v.box)
}

func (v *pathView) Update(nodes []elements.Element) {
	objects := make([]fyne.CanvasObject, 0, 2*len(nodes))
	for i, n := range nodes {
		if i > 0 {
			objects = append(objects, widget.NewIcon(theme.NavigateNextIcon()))
		}
		node := n
		btn := widget.NewButton(node.Label(), func() {
			node.OnClick()
			v.ui.requestFrame()
		})
		btn.Importance = widget.LowImportance
		if i == 0 {
			btn.SetIcon(theme.HomeIcon())
		}
		objects = append(objects, btn)
	}
	v.box.Objects = objects
	v.box.Refresh()
}
