// Package splash drives the loading overlay shown while assets preload.
package splash

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/milk9111/vrroom/common"
	"github.com/milk9111/vrroom/dom"
	"github.com/milk9111/vrroom/signal"
)

const (
	WrapperID   = "application-splash-wrapper"
	SplashID    = "application-splash"
	ContainerID = "progress-bar-container"
	BarID       = "progress-bar"
	styleID     = "application-splash-style"

	LogoURL = "a1c-splash.png"
)

const css = `body {
    background-color: #283538;
}
#application-splash-wrapper {
    position: absolute;
    top: 0;
    left: 0;
    height: 100%;
    width: 100%;
    background-color: #283538;
}
#application-splash {
    position: absolute;
    top: calc(50% - 28px);
    width: 264px;
    left: calc(50% - 132px);
}
#application-splash img {
    width: 100%;
}
#progress-bar-container {
    margin: 20px auto 0 auto;
    height: 2px;
    width: 100%;
    background-color: #1d292c;
}
#progress-bar {
    width: 0%;
    height: 100%;
    background-color: #f60;
}
@media (max-width: 480px) {
    #application-splash {
        width: 170px;
        left: calc(50% - 85px);
    }
}`

type State int

const (
	Showing State = iota
	Hidden
)

func (s State) String() string {
	if s == Hidden {
		return "hidden"
	}
	return "showing"
}

// Controller owns the splash nodes of one document.
type Controller struct {
	doc     *dom.Document
	wrapper *html.Node
	splash  *html.Node
	bar     *html.Node

	state    State
	progress float64

	progressSig    *signal.Signal[float64]
	progressHandle signal.Handle
}

// NewController injects the splash stylesheet and appends the overlay to
// the body, once per document. A controller created while an overlay is
// attached drives that overlay. The splash stays hidden until the logo has
// loaded.
func NewController(doc *dom.Document) *Controller {
	if doc.GetElementByID(styleID) == nil {
		style := doc.InjectStyleSheet(css)
		dom.SetAttr(style, "id", styleID)
	}

	if wrapper := doc.GetElementByID(WrapperID); wrapper != nil {
		splash := dom.FindByID(wrapper, SplashID)
		bar := dom.FindByID(wrapper, BarID)
		if splash != nil && bar != nil {
			return &Controller{doc: doc, wrapper: wrapper, splash: splash, bar: bar}
		}
		dom.Remove(wrapper)
	}

	wrapper := doc.CreateElement("div")
	dom.SetAttr(wrapper, "id", WrapperID)
	doc.Body.AppendChild(wrapper)

	splash := doc.CreateElement("div")
	dom.SetAttr(splash, "id", SplashID)
	wrapper.AppendChild(splash)
	dom.SetStyle(splash, "display", "none")

	logo := doc.CreateElement("img")
	dom.SetAttr(logo, "src", LogoURL)
	splash.AppendChild(logo)

	container := doc.CreateElement("div")
	dom.SetAttr(container, "id", ContainerID)
	splash.AppendChild(container)

	bar := doc.CreateElement("div")
	dom.SetAttr(bar, "id", BarID)
	container.AppendChild(bar)

	return &Controller{doc: doc, wrapper: wrapper, splash: splash, bar: bar}
}

// Attach subscribes to the application's lifecycle signals. Progress updates
// the bar until preloading ends; start hides the overlay.
func (c *Controller) Attach(progress *signal.Signal[float64], preloadEnd, start *signal.Signal[struct{}]) {
	c.progressSig = progress
	c.progressHandle = progress.On(c.SetProgress)
	preloadEnd.On(func(struct{}) { c.detachProgress() })
	start.On(func(struct{}) { c.Hide() })
}

// SetProgress clamps v to [0, 1] and resizes the bar.
func (c *Controller) SetProgress(v float64) {
	if c.state == Hidden {
		return
	}
	v = common.Clamp01(v)
	c.progress = v
	dom.SetStyle(c.bar, "width", strconv.FormatFloat(v*100, 'f', -1, 64)+"%")
}

func (c *Controller) Progress() float64 {
	return c.progress
}

// LogoLoaded reveals the splash once its image is available.
func (c *Controller) LogoLoaded() {
	dom.SetStyle(c.splash, "display", "block")
}

func (c *Controller) LogoVisible() bool {
	return dom.Style(c.splash, "display") == "block"
}

// Hide removes the overlay. Only the first call has an effect.
func (c *Controller) Hide() bool {
	if c.state == Hidden {
		return false
	}
	c.state = Hidden
	c.detachProgress()
	dom.Remove(c.wrapper)
	return true
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) detachProgress() {
	if c.progressSig != nil && c.progressHandle != 0 {
		c.progressSig.Off(c.progressHandle)
		c.progressHandle = 0
	}
}
