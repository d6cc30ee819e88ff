package ui

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/patchworksports/patchwork-sports/internal/logger"
	"github.com/patchworksports/patchwork-sports/internal/video"
)

// VideoPanel lets the user paste a video link. The input is resolved on every
// change; the playback link is shown only while an identifier is found and is
// silently withheld otherwise.
type VideoPanel struct {
	resolver     *video.Resolver
	locator      video.Locator
	localization *Localization

	entry     *widget.Entry
	link      *widget.Hyperlink
	hintLabel *widget.Label
	openBtn   *widget.Button
	container *fyne.Container

	current   video.Reference
	resolved  bool
	onChanged func(video.Reference)
	openURL   func(*url.URL) error
}

// NewVideoPanel creates the panel
func NewVideoPanel(resolver *video.Resolver, locator video.Locator, localization *Localization, mobile *MobileUI) *VideoPanel {
	p := &VideoPanel{
		resolver:     resolver,
		locator:      locator,
		localization: localization,
		openURL: func(u *url.URL) error {
			return fyne.CurrentApp().OpenURL(u)
		},
	}

	p.entry = mobile.CreateMobileEntry(localization.GetText(KeyEnterVideoURL))
	p.entry.OnChanged = p.update

	p.link = widget.NewHyperlink(localization.GetText(KeyWatchVideo), nil)
	p.link.Hide()

	p.hintLabel = widget.NewLabel(localization.GetText(KeyNoVideo))
	p.hintLabel.Importance = widget.LowImportance

	p.openBtn = widget.NewButtonWithIcon(localization.GetText(KeyOpenInBrowser), theme.ComputerIcon(), p.onOpenInBrowser)
	p.openBtn.Importance = widget.LowImportance
	p.openBtn.Hide()

	p.container = container.NewVBox(
		p.entry,
		container.NewBorder(nil, nil, nil, p.openBtn, container.NewStack(p.hintLabel, p.link)),
	)

	p.update("")
	return p
}

// Container returns the panel's root object
func (p *VideoPanel) Container() fyne.CanvasObject {
	return p.container
}

// SetOnChanged registers a callback fired whenever the resolved reference changes
func (p *VideoPanel) SetOnChanged(fn func(video.Reference)) {
	p.onChanged = fn
}

// SetURL replaces the entry text and resolves it
func (p *VideoPanel) SetURL(raw string) {
	p.entry.SetText(raw)
	p.update(raw)
}

// Reference returns the most recent resolution
func (p *VideoPanel) Reference() video.Reference {
	return p.current
}

// EmbedURL returns the playback locator for the current input
func (p *VideoPanel) EmbedURL() (string, bool) {
	id, ok := p.current.ID()
	if !ok {
		return "", false
	}
	return p.locator.EmbedURL(id), true
}

// update resolves input and shows or hides the playback link
func (p *VideoPanel) update(input string) {
	input = strings.TrimSpace(input)
	if p.resolved && input == p.current.Raw() {
		return
	}

	p.current = p.resolver.Parse(input)
	p.resolved = true

	id, ok := p.current.ID()
	if !ok {
		p.link.Hide()
		p.openBtn.Hide()
		p.hintLabel.Show()
	} else {
		embed, err := url.Parse(p.locator.EmbedURL(id))
		if err != nil {
			// identifiers are URL-safe, so this only trips on a bad host
			logger.Log.Errorw("building embed URL", "id", id, "error", err)
			p.link.Hide()
			p.openBtn.Hide()
			p.hintLabel.Show()
		} else {
			p.link.SetURL(embed)
			p.link.SetText(p.localization.GetText(KeyWatchVideo) + " · " + id.String())
			p.hintLabel.Hide()
			p.link.Show()
			p.openBtn.Show()
			logger.Log.Debugw("video reference resolved", "id", id)
		}
	}

	if p.onChanged != nil {
		p.onChanged(p.current)
	}
}

// onOpenInBrowser opens the regular watch page for the current identifier
func (p *VideoPanel) onOpenInBrowser() {
	id, ok := p.current.ID()
	if !ok {
		return
	}

	u, err := url.Parse(p.locator.WatchURL(id))
	if err != nil {
		logger.Log.Errorw("building watch URL", "id", id, "error", err)
		return
	}
	if err := p.openURL(u); err != nil {
		logger.Log.Warnw("opening watch URL", "url", u.String(), "error", err)
	}
}
