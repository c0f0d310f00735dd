package system

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/ecs"
	"github.com/milk9111/vrroom/ecs/component"
)

// UISystem presents the first screen-space Screen entity as an ebitenui tree.
// Element visibility follows the entity enable flags every frame and button
// clicks are reported through the Input component.
type UISystem struct {
	ui      *ebitenui.UI
	root    *widget.Container
	screen  ecs.Entity
	widgets map[ecs.Entity]widget.HasWidget
	labels  map[ecs.Entity]*widget.Text
	buttons map[ecs.Entity]*widget.Button
	// buttonText maps a button's label entity to its button.
	buttonText map[ecs.Entity]ecs.Entity
	clicked    ecs.Entity
}

func NewUISystem() *UISystem {
	return &UISystem{}
}

// Screen returns the entity the UI was built from, or 0.
func (s *UISystem) Screen() ecs.Entity {
	return s.screen
}

func (s *UISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if s.ui == nil || !ecs.IsAlive(w, s.screen) {
		s.build(w)
		if s.ui == nil {
			return
		}
	}
	s.sync(w)
	s.ui.Update()

	input := InputState(w)
	if s.clicked != 0 {
		input.Clicked = uint64(s.clicked)
		s.clicked = 0
	}
}

func (s *UISystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if s.ui == nil || screen == nil {
		return
	}
	s.ui.Draw(screen)
}

func (s *UISystem) build(w *ecs.World) {
	s.ui = nil
	screenEntity, ok := findScreen(w)
	if !ok {
		return
	}

	s.screen = screenEntity
	s.widgets = map[ecs.Entity]widget.HasWidget{}
	s.labels = map[ecs.Entity]*widget.Text{}
	s.buttons = map[ecs.Entity]*widget.Button{}
	s.buttonText = map[ecs.Entity]ecs.Entity{}

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	for _, child := range w.Children(screenEntity) {
		el, ok := ecs.Get(w, child, component.ElementComponent.Kind())
		if !ok {
			continue
		}
		var wd widget.PreferredSizeLocateableWidget
		if btn, ok := ecs.Get(w, child, component.ButtonComponent.Kind()); ok {
			wd = s.newButton(w, child, el, btn)
		} else {
			switch el.Type {
			case component.ElementTypeText:
				wd = s.newText(child, el)
			case component.ElementTypeImage:
				wd = widget.NewGraphic(
					widget.GraphicOpts.ImageNineSlice(imageui.NewNineSliceColor(elementColor(el.Color, el.Opacity))),
					widget.GraphicOpts.WidgetOpts(
						widget.WidgetOpts.MinSize(int(el.Width), int(el.Height)),
						widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
					),
				)
			}
		}
		if wd == nil {
			continue
		}
		s.widgets[child] = wd
		panel.AddChild(wd)
	}

	s.root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	s.root.AddChild(panel)
	s.ui = &ebitenui.UI{Container: s.root}
}

func (s *UISystem) newButton(w *ecs.World, e ecs.Entity, el *component.Element, btn *component.Button) *widget.Button {
	idle := elementColor(el.Color, el.Opacity)
	images := &widget.ButtonImage{
		Idle:     imageui.NewNineSliceColor(idle),
		Disabled: imageui.NewNineSliceColor(elementColor(btn.InactiveTint, el.Opacity)),
	}
	images.Hover = imageui.NewNineSliceColor(elementColor(btn.HoverTint, el.Opacity))
	images.Pressed = imageui.NewNineSliceColor(elementColor(btn.PressedTint, el.Opacity))
	if btn.TransitionMode != component.ButtonTransitionTint {
		images.Hover, images.Pressed = images.Idle, images.Idle
	}

	opts := []widget.ButtonOpt{
		widget.ButtonOpts.Image(images),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(el.Width), int(el.Height)),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if btn.Active && btn.Enabled {
				s.clicked = e
			}
		}),
	}
	if labelEntity, label, ok := buttonLabel(w, e); ok {
		face := elementFace(label)
		opts = append(opts, widget.ButtonOpts.Text(label.Text, &face, &widget.ButtonTextColor{
			Idle:     elementColor(label.Color, label.Opacity),
			Disabled: elementColor(label.Color, label.Opacity*0.5),
		}))
		s.buttonText[labelEntity] = e
	}

	b := widget.NewButton(opts...)
	s.buttons[e] = b
	return b
}

func (s *UISystem) newText(e ecs.Entity, el *component.Element) *widget.Text {
	face := elementFace(el)
	opts := []widget.TextOpt{
		widget.TextOpts.Text(el.Text, &face, elementColor(el.Color, el.Opacity)),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	}
	if !el.AutoWidth && el.Width > 0 {
		opts = append(opts, widget.TextOpts.MaxWidth(el.Width))
	}
	t := widget.NewText(opts...)
	s.labels[e] = t
	return t
}

func (s *UISystem) sync(w *ecs.World) {
	screenVisible := elementVisible(w, s.screen)
	if sc, ok := ecs.Get(w, s.screen, component.ScreenComponent.Kind()); ok && !sc.Enabled {
		screenVisible = false
	}
	setVisible(s.root, screenVisible)

	for e, wd := range s.widgets {
		setVisible(wd, elementVisible(w, e))
	}
	for e, t := range s.labels {
		if el, ok := ecs.Get(w, e, component.ElementComponent.Kind()); ok && t.Label != el.Text {
			t.Label = el.Text
		}
	}
	for labelEntity, buttonEntity := range s.buttonText {
		b := s.buttons[buttonEntity]
		el, ok := ecs.Get(w, labelEntity, component.ElementComponent.Kind())
		if b == nil || !ok || b.Text() == nil {
			continue
		}
		if b.Text().Label != el.Text {
			b.SetText(el.Text)
		}
	}
	for e, b := range s.buttons {
		if btn, ok := ecs.Get(w, e, component.ButtonComponent.Kind()); ok {
			b.GetWidget().Disabled = !btn.Active || !btn.Enabled
		}
	}
}

func setVisible(wd widget.HasWidget, visible bool) {
	if wd == nil {
		return
	}
	if visible {
		wd.GetWidget().Visibility = widget.Visibility_Show
	} else {
		wd.GetWidget().Visibility = widget.Visibility_Hide
	}
}

// findScreen returns the first screen-space Screen entity.
func findScreen(w *ecs.World) (ecs.Entity, bool) {
	var found ecs.Entity
	ecs.ForEach(w, component.ScreenComponent.Kind(), func(e ecs.Entity, sc *component.Screen) {
		if found == 0 && sc.ScreenSpace {
			found = e
		}
	})
	return found, found != 0
}

// buttonLabel returns the first text element child of a button entity.
func buttonLabel(w *ecs.World, e ecs.Entity) (ecs.Entity, *component.Element, bool) {
	for _, child := range w.Children(e) {
		el, ok := ecs.Get(w, child, component.ElementComponent.Kind())
		if ok && el.Type == component.ElementTypeText {
			return child, el, true
		}
	}
	return 0, nil, false
}

// elementVisible reports whether e and its element are enabled in the
// hierarchy.
func elementVisible(w *ecs.World, e ecs.Entity) bool {
	if !w.EnabledInHierarchy(e) {
		return false
	}
	if el, ok := ecs.Get(w, e, component.ElementComponent.Kind()); ok && !el.Enabled {
		return false
	}
	return true
}

func elementColor(c common.Color, opacity float64) color.NRGBA {
	c.A = opacity
	return c.NRGBA()
}

func elementFace(el *component.Element) ebtext.Face {
	if el != nil && el.FontAsset != nil {
		if f := el.FontAsset.Font(); f != nil && f.Source != nil {
			return f.Face(el.FontSize)
		}
	}
	return ebtext.NewGoXFace(basicfont.Face7x13)
}
