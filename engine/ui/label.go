package ui

import (
	"math"
	"strings"

	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/text"
)

type Label struct {
	Common[*Label]
	text      string
	fontSize  float32
	font      *text.Font
	wrap      bool
	maxWidth  float32
	layoutStr string
}

func NewLabel(str string) *Label {
	l := &Label{text: str, fontSize: 16}
	l.Common = NewCommon(l)
	l.base.color = colors.White
	return l
}

func (l *Label) FontSize(size float32) *Label { l.fontSize = size; return l }
func (l *Label) Font(font *text.Font) *Label  { l.font = font; return l }
func (l *Label) Wrap(enabled bool) *Label     { l.wrap = enabled; return l }
func (l *Label) MaxWidth(width float32) *Label {
	l.maxWidth = width
	if width > 0 {
		l.wrap = true
	}
	return l
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(s string) {
	l.text = s
	l.layoutStr = ""
}

func (l *Label) fontFor(ctx *Context) *text.Font {
	if l.font != nil {
		return l.font
	}
	return ctx.Font
}

func (l *Label) Layout(ctx *Context, constraints Constraints) LayoutResult {
	if ctx.Painter == nil {
		return LayoutResult{}
	}

	padding := l.base.scaledPadding(ctx)
	effectiveMax := resolveConstraint(constraints.Max[0])
	if effectiveMax == float32(math.MaxFloat32) {
		effectiveMax = 0
	}
	if mw := ctx.Px(l.maxWidth); mw > 0 && (effectiveMax == 0 || mw < effectiveMax) {
		effectiveMax = mw
	}
	if effectiveMax > 0 {
		effectiveMax -= padding[0] + padding[2]
		if effectiveMax < 0 {
			effectiveMax = 0
		}
	}

	contentW, contentH, laidOut := l.measureText(ctx, effectiveMax)
	l.layoutStr = laidOut

	width := l.base.resolveAxis(ctx, l.base.widthMod, l.base.widthVal, contentW+padding[0]+padding[2], constraints.Min[0], constraints.Max[0])
	height := l.base.resolveAxis(ctx, l.base.heightMod, l.base.heightVal, contentH+padding[1]+padding[3], constraints.Min[1], constraints.Max[1])

	l.base.SetSize(width, height)
	return LayoutResult{Size: [2]float32{width, height}}
}

func (l *Label) Draw(ctx *Context) {
	if l.layoutStr == "" {
		l.layoutStr = l.text
	}
	if l.layoutStr != "" && ctx.Painter != nil && l.base.color[3] > 0 {
		x, y := l.base.innerPosition(ctx)
		ctx.Painter.DrawText(l.fontFor(ctx), x, y, l.layoutStr, ctx.Px(l.fontSize), l.base.color)
	}
}

func (l *Label) measureText(ctx *Context, maxWidth float32) (float32, float32, string) {
	if l.text == "" {
		return 0, 0, ""
	}
	font := l.fontFor(ctx)
	size := ctx.Px(l.fontSize)
	measure := func(s string) (float32, float32) {
		return ctx.Painter.MeasureText(font, s, size)
	}

	if !l.wrap || maxWidth <= 0 {
		w, h := measure(l.text)
		return w, h, l.text
	}

	spaceWidth, lineHeight := measure(" ")
	if lineHeight == 0 {
		lineHeight = 1
	}

	var wrapped []string
	var maxLineWidth float32

	for _, raw := range strings.Split(l.text, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			wrapped = append(wrapped, "")
			continue
		}

		current := words[0]
		currentWidth, _ := measure(current)
		for _, word := range words[1:] {
			wordWidth, _ := measure(word)
			if currentWidth+spaceWidth+wordWidth > maxWidth {
				wrapped = append(wrapped, current)
				maxLineWidth = maxf(maxLineWidth, currentWidth)
				current = word
				currentWidth = wordWidth
			} else {
				current += " " + word
				currentWidth += spaceWidth + wordWidth
			}
		}
		wrapped = append(wrapped, current)
		maxLineWidth = maxf(maxLineWidth, currentWidth)
	}

	height := lineHeight * float32(len(wrapped))
	return maxLineWidth, height, strings.Join(wrapped, "\n")
}
