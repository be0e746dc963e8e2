package frontend

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/core"
	"github.com/hubastard/marley/engine/profiler"
	"github.com/hubastard/marley/engine/ui"
)

type navigation struct {
	up   bool
	path string
}

// ROMBrowser lists one directory at a time: sub-directories first, then ROM
// files, then a ".." entry when below the root. The list is rebuilt by
// Refresh whenever the directory, the UI scale or the contents change.
type ROMBrowser struct {
	*ui.LinearLayout

	// OnChoice fires when a ROM entry is clicked, OnHoldChoice when it is
	// held. OnHighlight fires when any entry gains focus or hover.
	OnChoice     ui.Event[ui.EventParams]
	OnHoldChoice ui.Event[ui.EventParams]
	OnHighlight  ui.Event[ui.EventParams]

	gameList *ui.LinearLayout
	title    *ui.Label
	upButton *ui.Button
	path     *PathStack
	lister   Lister
	exts     map[string]bool
	hold     time.Duration
	focus    *ui.Focus

	lastScale      float32
	layoutScale    float32
	lastGamePath   string
	highlighted    string
	restoring      bool
	listingPending bool
	dirty          bool
	pending        *navigation
}

func NewROMBrowser(root string, lister Lister, cfg Config) *ROMBrowser {
	b := &ROMBrowser{
		path:        NewPathStack(root),
		lister:      lister,
		exts:        make(map[string]bool, len(cfg.Extensions)),
		hold:        cfg.HoldThreshold,
		layoutScale: 1,
	}
	for _, e := range cfg.Extensions {
		b.exts[strings.ToLower(e)] = true
	}

	b.title = ui.NewLabel("").FontSize(20)
	b.upButton = NewDirectoryBrowserButton("Up", "", true).WidthFit()
	b.upButton.Clickable().OnClick.Add(func(ui.EventParams) { b.Back() })
	header := ui.NewLinearLayout(ui.Horizontal, b.upButton, b.title).
		AlignCross(ui.AlignCenter).
		Padding(8).
		WidthExpand().
		BgColor(colors.Hex(0x1c1c1c))

	b.gameList = ui.NewLinearLayout(ui.Vertical).Gap(4).Padding(8).WidthExpand().HeightExpand().Scrollable()
	b.LinearLayout = ui.NewLinearLayout(ui.Vertical, header, b.gameList).
		Gap(0).
		WidthExpand().
		HeightExpand()

	b.Refresh()
	return b
}

// AttachFocus lets Refresh restore focus after a rebuild.
func (b *ROMBrowser) AttachFocus(f *ui.Focus) { b.focus = f }

func (b *ROMBrowser) Path() *PathStack           { return b.path }
func (b *ROMBrowser) GameList() *ui.LinearLayout { return b.gameList }
func (b *ROMBrowser) LastGamePath() string       { return b.lastGamePath }

// Entries returns the labels of the listed entries in display order.
func (b *ROMBrowser) Entries() []string {
	kids := b.gameList.Node().Children()
	out := make([]string, 0, len(kids))
	for _, k := range kids {
		if btn, ok := k.(*ui.Button); ok {
			out = append(out, btn.Text())
		}
	}
	return out
}

// Invalidate forces a rebuild on the next Update.
func (b *ROMBrowser) Invalidate() { b.dirty = true }

// Navigate enters dir on the next Update.
func (b *ROMBrowser) Navigate(dir string) { b.pending = &navigation{path: dir} }

// Back schedules a move to the parent directory. It reports false at the
// root.
func (b *ROMBrowser) Back() bool {
	if b.path.AtRoot() {
		return false
	}
	b.pending = &navigation{up: true}
	return true
}

// DefaultFocusView is the first entry, else the up button.
func (b *ROMBrowser) DefaultFocusView() ui.View {
	if kids := b.gameList.Node().Children(); len(kids) > 0 {
		return kids[0]
	}
	if b.upButton.Node().Visible() {
		return b.upButton
	}
	return nil
}

func (b *ROMBrowser) Layout(ctx *ui.Context, c ui.Constraints) ui.LayoutResult {
	scale := ctx.Scale
	if scale <= 0 {
		scale = 1
	}
	b.layoutScale = scale
	return b.LinearLayout.Layout(ctx, c)
}

// Update runs pending navigation and rebuilds the list when needed. Clicks
// only record what to do so the list is never torn down while its children
// are being walked.
func (b *ROMBrowser) Update(now time.Time) {
	b.LinearLayout.Update(now)

	if nav := b.pending; nav != nil {
		b.pending = nil
		cur := b.path.Current()
		if nav.up {
			if b.path.Pop() {
				b.lastGamePath = cur
				b.dirty = true
			}
		} else if nav.path != "" && nav.path != cur {
			b.path.Push(nav.path)
			b.lastGamePath = ""
			b.dirty = true
		}
	}
	if b.dirty || b.lastScale != b.layoutScale {
		b.Refresh()
	}
}

// Refresh rebuilds the entry list from the current directory. A missing or
// unreadable directory leaves only the ".." entry. Calls made while a
// rebuild is running are dropped.
func (b *ROMBrowser) Refresh() {
	if b.listingPending {
		core.Logger().Debug("rombrowser refresh skipped, listing pending")
		return
	}
	b.listingPending = true
	defer func() { b.listingPending = false }()
	end := profiler.Start("rombrowser.refresh")
	defer end()

	dir := b.path.Current()
	entries, err := b.lister.List(dir)
	if err != nil {
		core.Logger().Warn("rombrowser listing failed", "dir", dir, "err", err)
		entries = nil
	}
	entries = b.filter(entries)
	sortEntries(entries)

	b.gameList.RemoveAll()
	for _, e := range entries {
		full := filepath.Join(dir, e.Name)
		if e.IsDir {
			btn := NewDirectoryBrowserButton(e.Name, full, false)
			btn.Clickable().OnClick.Add(func(p ui.EventParams) { b.Navigate(p.Path) })
			b.addEntry(btn)
			continue
		}
		btn := NewROMButton(e.Name, full, b.hold)
		btn.Clickable().OnClick.Add(b.choose)
		btn.Clickable().OnHoldClick.Add(b.holdChoose)
		b.addEntry(btn)
	}
	if !b.path.AtRoot() {
		up := NewDirectoryBrowserButton(UpEntryName, filepath.Dir(dir), true)
		up.Clickable().OnClick.Add(func(ui.EventParams) { b.Back() })
		up.Clickable().OnHighlight.Add(b.emitHighlight)
		b.gameList.Add(up)
	}

	b.title.SetText(dir)
	b.upButton.Visible(!b.path.AtRoot())
	b.lastScale = b.layoutScale
	b.dirty = false
	b.restoreFocus()

	core.Logger().Debug("rombrowser refreshed", "dir", dir, "entries", len(entries))
}

func (b *ROMBrowser) addEntry(btn *ui.Button) {
	btn.Clickable().OnHighlight.Add(b.highlight)
	b.gameList.Add(btn)
}

func (b *ROMBrowser) choose(p ui.EventParams) {
	b.lastGamePath = p.Path
	b.OnChoice.Dispatch(p)
}

func (b *ROMBrowser) holdChoose(p ui.EventParams) {
	b.lastGamePath = p.Path
	b.OnHoldChoice.Dispatch(p)
}

func (b *ROMBrowser) highlight(p ui.EventParams) {
	b.lastGamePath = p.Path
	b.emitHighlight(p)
}

// emitHighlight forwards to OnHighlight. Moving focus onto the rebuilt button
// of the entry already highlighted stays silent.
func (b *ROMBrowser) emitHighlight(p ui.EventParams) {
	if b.restoring && p.Path == b.highlighted {
		return
	}
	b.highlighted = p.Path
	b.OnHighlight.Dispatch(p)
}

// restoreFocus puts focus back on the entry for lastGamePath, falling back
// to the default view when the old focus was torn down.
func (b *ROMBrowser) restoreFocus() {
	if b.focus == nil {
		return
	}
	b.restoring = true
	defer func() { b.restoring = false }()
	for _, k := range b.gameList.Node().Children() {
		btn, ok := k.(*ui.Button)
		if ok && b.lastGamePath != "" && btn.Clickable().Payload == b.lastGamePath {
			b.focus.SetFocus(btn)
			return
		}
	}
	if b.focus.Focused() == nil {
		b.focus.SetFocus(b.focus.DefaultView())
	}
}

func (b *ROMBrowser) filter(entries []Entry) []Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if strings.HasPrefix(e.Name, ".") {
			continue
		}
		if !e.IsDir && len(b.exts) > 0 && !b.exts[strings.ToLower(filepath.Ext(e.Name))] {
			continue
		}
		out = append(out, e)
	}
	return out
}

// sortEntries orders directories first, then by case-insensitive name with
// byte order breaking ties.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if la != lb {
			return la < lb
		}
		return a.Name < b.Name
	})
}
