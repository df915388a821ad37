//go:build !libretro

package cli

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Overlay geometry in screen pixels
const (
	notificationPadding = 12
	notificationMargin  = 8
)

// Notification shows a short message over the bottom-right of the frame
type Notification struct {
	message   string
	startTime time.Time
	duration  time.Duration
	fontFace  text.Face
	now       func() time.Time

	bg      *ebiten.Image
	bgOpts  ebiten.DrawImageOptions
	txtOpts text.DrawOptions
}

// NewNotification creates an empty notification.
func NewNotification() *Notification {
	return &Notification{
		fontFace: text.NewGoXFace(basicfont.Face7x13),
		now:      time.Now,
	}
}

// Show displays message for duration
func (n *Notification) Show(message string, duration time.Duration) {
	n.message = message
	n.startTime = n.now()
	n.duration = duration
}

// ShowShort displays message for 2 seconds
func (n *Notification) ShowShort(message string) {
	n.Show(message, 2*time.Second)
}

// IsVisible returns whether a message is currently shown
func (n *Notification) IsVisible() bool {
	if n.message == "" {
		return false
	}
	return n.now().Sub(n.startTime) < n.duration
}

// Draw renders the message on a translucent box.
func (n *Notification) Draw(screen *ebiten.Image) {
	if !n.IsVisible() {
		return
	}

	bounds := screen.Bounds()
	textWidth, textHeight := text.Measure(n.message, n.fontFace, 0)
	bgWidth := int(textWidth) + notificationPadding*2
	bgHeight := int(textHeight) + notificationPadding*2
	bgX := bounds.Dx() - bgWidth - notificationMargin
	bgY := bounds.Dy() - bgHeight - notificationMargin

	if n.bg == nil || n.bg.Bounds().Dx() != bgWidth || n.bg.Bounds().Dy() != bgHeight {
		if n.bg != nil {
			n.bg.Deallocate()
		}
		n.bg = ebiten.NewImage(bgWidth, bgHeight)
		n.bg.Fill(color.RGBA{0, 0, 0, 153}) // 60% opacity
	}

	n.bgOpts = ebiten.DrawImageOptions{}
	n.bgOpts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.bg, &n.bgOpts)

	n.txtOpts = text.DrawOptions{}
	n.txtOpts.GeoM.Translate(float64(bgX+notificationPadding), float64(bgY+notificationPadding))
	n.txtOpts.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, n.message, n.fontFace, &n.txtOpts)
}
