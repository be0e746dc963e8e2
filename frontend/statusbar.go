package frontend

import (
	"fmt"
	"time"

	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/ui"
)

// VolumeSource reports the last known output volume.
type VolumeSource interface {
	Latest() (int, bool)
}

// StatusBar shows the title, the highlighted entry and the volume.
type StatusBar struct {
	*ui.LinearLayout

	title  *ui.Label
	detail *ui.Label
	volume *ui.Label
	src    VolumeSource

	vol   int
	volOK bool
}

func NewStatusBar(title string, src VolumeSource) *StatusBar {
	s := &StatusBar{
		title:  ui.NewLabel(title).FontSize(20),
		detail: ui.NewLabel("").FontSize(16).WidthExpand(),
		volume: ui.NewLabel(VolumeText(0, false)).FontSize(16),
		src:    src,
	}
	s.detail.Color(colors.Hex(0xb0b0b0))
	s.LinearLayout = ui.NewLinearLayout(ui.Horizontal, s.title, s.detail, s.volume).
		Gap(16).
		Padding2(12, 6).
		AlignCross(ui.AlignCenter).
		WidthExpand().
		BgColor(colors.Hex(0x101010))
	return s
}

// VolumeText formats the volume indicator.
func VolumeText(vol int, ok bool) string {
	if !ok {
		return "Vol --"
	}
	return fmt.Sprintf("Vol %d%%", vol)
}

func (s *StatusBar) SetDetail(text string) { s.detail.SetText(text) }
func (s *StatusBar) Detail() string        { return s.detail.Text() }
func (s *StatusBar) VolumeLabel() string   { return s.volume.Text() }

func (s *StatusBar) Update(now time.Time) {
	s.LinearLayout.Update(now)
	if s.src == nil {
		return
	}
	vol, ok := s.src.Latest()
	if vol == s.vol && ok == s.volOK {
		return
	}
	s.vol, s.volOK = vol, ok
	s.volume.SetText(VolumeText(vol, ok))
}
