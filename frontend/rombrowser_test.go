package frontend

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/hubastard/marley/engine/core"
	"github.com/hubastard/marley/engine/ui"
	"github.com/spf13/afero"
)

func memFS(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		if f[len(f)-1] == '/' {
			if err := fs.MkdirAll(f, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := afero.WriteFile(fs, f, []byte("rom"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func testConfig(exts ...string) Config {
	cfg := DefaultConfig()
	cfg.Extensions = exts
	cfg.HoldThreshold = 300 * time.Millisecond
	return cfg
}

func entryPaths(b *ROMBrowser) []string {
	var out []string
	for _, k := range b.GameList().Node().Children() {
		out = append(out, k.(*ui.Button).Clickable().Payload)
	}
	return out
}

func TestROMBrowserOrdering(t *testing.T) {
	fs := memFS(t, "/roms/games/b.rom", "/roms/games/A/", "/roms/games/a.rom", "/roms/games/B/")
	b := NewROMBrowser("/roms", NewFSLister(fs), testConfig())

	b.Navigate("/roms/games")
	b.Update(time.Now())

	want := []string{"A", "B", "a.rom", "b.rom", ".."}
	if got := b.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
}

func TestSortEntries(t *testing.T) {
	tests := []struct {
		name string
		in   []Entry
		want []string
	}{
		{
			name: "dirs first",
			in:   []Entry{{"b.rom", false}, {"A", true}, {"a.rom", false}, {"B", true}},
			want: []string{"A", "B", "a.rom", "b.rom"},
		},
		{
			name: "case-insensitive with byte-order tie break",
			in:   []Entry{{"zelda.gb", false}, {"Mario.gb", false}, {"mario.gb", false}, {"Abc.gb", false}},
			want: []string{"Abc.gb", "Mario.gb", "mario.gb", "zelda.gb"},
		},
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sortEntries(tt.in)
			var got []string
			for _, e := range tt.in {
				got = append(got, e.Name)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestROMBrowserRefreshIdempotent(t *testing.T) {
	fs := memFS(t, "/roms/x.gb", "/roms/y.gba", "/roms/Sub/")
	b := NewROMBrowser("/roms", NewFSLister(fs), testConfig())

	first := entryPaths(b)
	b.Refresh()
	second := entryPaths(b)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("refresh changed entries: %v then %v", first, second)
	}
	want := []string{"/roms/Sub", "/roms/x.gb", "/roms/y.gba"}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("entries = %v, want %v", first, want)
	}
}

func TestROMBrowserExtensionFilter(t *testing.T) {
	fs := memFS(t, "/roms/a.GB", "/roms/b.txt", "/roms/.hidden.gb", "/roms/c.nes", "/roms/Dir/")
	b := NewROMBrowser("/roms", NewFSLister(fs), testConfig(".gb", ".nes"))

	want := []string{"Dir", "a.GB", "c.nes"}
	if got := b.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
}

func TestROMBrowserMissingDirectory(t *testing.T) {
	fs := memFS(t, "/roms/")
	b := NewROMBrowser("/roms", NewFSLister(fs), testConfig())
	if got := b.Entries(); len(got) != 0 {
		t.Fatalf("empty root listed %v", got)
	}

	b.Navigate("/roms/gone")
	b.Update(time.Now())
	if got := b.Entries(); !reflect.DeepEqual(got, []string{UpEntryName}) {
		t.Fatalf("missing dir entries = %v, want only %q", got, UpEntryName)
	}
}

type reentrantLister struct {
	b     *ROMBrowser
	calls int
}

func (l *reentrantLister) List(dir string) ([]Entry, error) {
	l.calls++
	if l.b != nil {
		l.b.Refresh()
	}
	return []Entry{{"one.gb", false}}, nil
}

func TestROMBrowserRejectsReentrantRefresh(t *testing.T) {
	l := &reentrantLister{}
	b := NewROMBrowser("/roms", l, testConfig())
	l.b = b
	l.calls = 0

	b.Refresh()
	if l.calls != 1 {
		t.Fatalf("lister called %d times, want 1", l.calls)
	}
	if got := b.Entries(); !reflect.DeepEqual(got, []string{"one.gb"}) {
		t.Fatalf("entries = %v", got)
	}
}

type countingLister struct {
	Lister
	calls int
}

func (l *countingLister) List(dir string) ([]Entry, error) {
	l.calls++
	return l.Lister.List(dir)
}

func TestROMBrowserRebuildsOnScaleChange(t *testing.T) {
	fs := memFS(t, "/roms/a.gb")
	l := &countingLister{Lister: NewFSLister(fs)}
	b := NewROMBrowser("/roms", l, testConfig())
	ctx := &ui.Context{Scale: 1}

	b.Layout(ctx, ui.Constraints{})
	b.Update(time.Now())
	if l.calls != 1 {
		t.Fatalf("unchanged scale rebuilt: %d listings", l.calls)
	}

	ctx.Scale = 2
	b.Layout(ctx, ui.Constraints{})
	b.Update(time.Now())
	if l.calls != 2 {
		t.Fatalf("scale change did not rebuild: %d listings", l.calls)
	}

	b.Invalidate()
	b.Update(time.Now())
	if l.calls != 3 {
		t.Fatalf("Invalidate did not rebuild: %d listings", l.calls)
	}
}

func TestROMBrowserDirectoryClickDefersRebuild(t *testing.T) {
	fs := memFS(t, "/roms/Sub/z.gb", "/roms/top.gb")
	b := NewROMBrowser("/roms", NewFSLister(fs), testConfig())

	dir := b.GameList().Node().Children()[0].(*ui.Button)
	dir.Key(ui.KeyInput{Key: core.KeyEnter, Down: true})
	dir.Key(ui.KeyInput{Key: core.KeyEnter, Down: false})

	if b.Path().Current() != "/roms" {
		t.Fatal("navigation happened inside the click")
	}
	b.Update(time.Now())
	if b.Path().Current() != filepath.Clean("/roms/Sub") {
		t.Fatalf("path = %q, want /roms/Sub", b.Path().Current())
	}
	if got := b.Entries(); !reflect.DeepEqual(got, []string{"z.gb", UpEntryName}) {
		t.Fatalf("entries = %v", got)
	}

	if !b.Back() {
		t.Fatal("Back below root returned false")
	}
	b.Update(time.Now())
	if !b.Path().AtRoot() {
		t.Fatal("Back did not return to the root")
	}
	if b.Back() {
		t.Fatal("Back at root returned true")
	}
}

func TestROMBrowserEvents(t *testing.T) {
	fs := memFS(t, "/roms/a.gb")
	b := NewROMBrowser("/roms", NewFSLister(fs), testConfig())
	var chosen, held []string
	b.OnChoice.Add(func(p ui.EventParams) { chosen = append(chosen, p.Path) })
	b.OnHoldChoice.Add(func(p ui.EventParams) { held = append(held, p.Path) })

	rom := b.GameList().Node().Children()[0].(*ui.Button)
	t0 := time.Unix(0, 0)

	rom.Key(ui.KeyInput{Key: core.KeyEnter, Down: true, Time: t0})
	rom.Key(ui.KeyInput{Key: core.KeyEnter, Down: false, Time: t0.Add(100 * time.Millisecond)})

	rom.Key(ui.KeyInput{Key: core.KeyEnter, Down: true, Time: t0})
	b.Update(t0.Add(400 * time.Millisecond))
	rom.Key(ui.KeyInput{Key: core.KeyEnter, Down: false, Time: t0.Add(500 * time.Millisecond)})

	if !reflect.DeepEqual(chosen, []string{"/roms/a.gb"}) || !reflect.DeepEqual(held, []string{"/roms/a.gb"}) {
		t.Fatalf("chosen=%v held=%v", chosen, held)
	}
	if b.LastGamePath() != "/roms/a.gb" {
		t.Fatalf("last game path = %q", b.LastGamePath())
	}
}

func TestROMBrowserRestoresFocus(t *testing.T) {
	fs := memFS(t, "/roms/a.gb", "/roms/b.gb", "/roms/c.gb")
	b := NewROMBrowser("/roms", NewFSLister(fs), testConfig())
	f := ui.NewFocus(b)
	b.AttachFocus(f)
	var highlights []string
	b.OnHighlight.Add(func(p ui.EventParams) { highlights = append(highlights, p.Path) })

	f.Move(ui.DirDown)
	f.Move(ui.DirDown)
	if got := f.Focused().(*ui.Button).Text(); got != "b.gb" {
		t.Fatalf("focused %q, want b.gb", got)
	}

	b.Refresh()
	focused, ok := f.Focused().(*ui.Button)
	if !ok || focused.Text() != "b.gb" {
		t.Fatal("focus not restored to b.gb after rebuild")
	}
	want := []string{"/roms/a.gb", "/roms/b.gb"}
	if !reflect.DeepEqual(highlights, want) {
		t.Fatalf("highlights = %v, want %v", highlights, want)
	}

	f.Move(ui.DirUp)
	want = append(want, "/roms/a.gb")
	if !reflect.DeepEqual(highlights, want) {
		t.Fatalf("highlights after move = %v, want %v", highlights, want)
	}
}

func TestROMBrowserHighlightsDirectoryLeft(t *testing.T) {
	fs := memFS(t, "/roms/gb/x.gb", "/roms/nes/y.nes")
	b := NewROMBrowser("/roms", NewFSLister(fs), testConfig())
	f := ui.NewFocus(b)
	b.AttachFocus(f)
	var highlights []string
	b.OnHighlight.Add(func(p ui.EventParams) { highlights = append(highlights, p.Path) })

	b.Navigate("/roms/nes")
	b.Update(time.Now())
	b.Back()
	b.Update(time.Now())

	focused, ok := f.Focused().(*ui.Button)
	if !ok || focused.Text() != "nes" {
		t.Fatalf("focused %v, want nes", f.Focused())
	}
	if n := len(highlights); n == 0 || highlights[n-1] != "/roms/nes" {
		t.Fatalf("highlights = %v, want last /roms/nes", highlights)
	}
}

// The app nests the browser next to the status bar inside an embedding
// wrapper; moving past the last entry must not wrap into the header.
func TestROMBrowserFocusStopsAtLastEntry(t *testing.T) {
	fs := memFS(t, "/roms/sub/a.gb", "/roms/sub/b.gb")
	b := NewROMBrowser("/roms", NewFSLister(fs), testConfig())
	root := &mainView{
		LinearLayout: ui.NewLinearLayout(ui.Vertical, NewStatusBar("Marley", nil), b),
		browser:      b,
	}
	f := ui.NewFocus(root)
	b.AttachFocus(f)

	b.Navigate("/roms/sub")
	b.Update(time.Now())
	kids := b.GameList().Node().Children()
	last := kids[len(kids)-1].(*ui.Button)
	if last.Text() != UpEntryName {
		t.Fatalf("last entry %q, want %q", last.Text(), UpEntryName)
	}

	f.SetFocus(last)
	if f.Move(ui.DirDown) {
		t.Fatalf("focus moved past the last entry to %v", f.Focused())
	}
	if f.Focused() != last {
		t.Fatal("focus left the last entry")
	}

	f.Move(ui.DirUp)
	if got := f.Focused().(*ui.Button).Text(); got != "b.gb" {
		t.Fatalf("focused %q after moving up, want b.gb", got)
	}
}

func TestROMBrowserDefaultFocus(t *testing.T) {
	fs := memFS(t, "/roms/Empty/")
	b := NewROMBrowser("/roms", NewFSLister(fs), testConfig())
	if v, ok := b.DefaultFocusView().(*ui.Button); !ok || v.Text() != "Empty" {
		t.Fatal("default focus is not the first entry")
	}

	b.Navigate("/roms/Empty")
	b.Update(time.Now())
	if v, ok := b.DefaultFocusView().(*ui.Button); !ok || v.Text() != UpEntryName {
		t.Fatal("default focus in an empty directory is not the up entry")
	}
}

type failingLister struct{}

func (failingLister) List(string) ([]Entry, error) { return nil, errors.New("boom") }

func TestROMBrowserListingError(t *testing.T) {
	b := NewROMBrowser("/", failingLister{}, testConfig())
	if got := b.Entries(); len(got) != 0 {
		t.Fatalf("entries = %v, want none at root", got)
	}
}
