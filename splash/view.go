package splash

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/vrroom/assets"
)

const progressSteps = 1000

var (
	background = color.NRGBA{R: 0x28, G: 0x35, B: 0x38, A: 0xff}
	trackColor = color.NRGBA{R: 0x1d, G: 0x29, B: 0x2c, A: 0xff}
	fillColor  = color.NRGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff}
)

// View draws a Controller's state in the game window.
type View struct {
	ctrl *Controller
	ui   *ebitenui.UI
	bar  *widget.ProgressBar
	logo *widget.Graphic
}

// NewView builds the overlay UI. The logo is read from the bundled assets;
// if it cannot be decoded the bar is shown alone.
func NewView(ctrl *Controller) *View {
	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	v := &View{ctrl: ctrl}
	if img := loadLogo(); img != nil {
		v.logo = widget.NewGraphic(
			widget.GraphicOpts.Image(img),
			widget.GraphicOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		)
		panel.AddChild(v.logo)
		ctrl.LogoLoaded()
	}

	v.bar = widget.NewProgressBar(
		widget.ProgressBarOpts.Images(
			&widget.ProgressBarImage{Idle: imageui.NewNineSliceColor(trackColor)},
			&widget.ProgressBarImage{Idle: imageui.NewNineSliceColor(fillColor)},
		),
		widget.ProgressBarOpts.Values(0, progressSteps, 0),
		widget.ProgressBarOpts.WidgetOpts(widget.WidgetOpts.MinSize(264, 2)),
	)
	panel.AddChild(v.bar)

	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	v.ui = &ebitenui.UI{Container: root}
	return v
}

func (v *View) Update() {
	if v.ctrl.State() == Hidden {
		return
	}
	v.bar.SetCurrent(int(v.ctrl.Progress() * progressSteps))
	v.ui.Update()
}

func (v *View) Draw(screen *ebiten.Image) {
	if v.ctrl.State() == Hidden {
		return
	}
	v.ui.Draw(screen)
}

func loadLogo() *ebiten.Image {
	b, err := assets.LoadFile(LogoURL)
	if err != nil {
		log.Printf("splash: load logo: %v", err)
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		log.Printf("splash: decode logo: %v", err)
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
