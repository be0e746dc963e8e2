package frontend

import "path/filepath"

// PathStack is the browser's navigation history. The bottom entry is the
// root and can not be popped.
type PathStack struct {
	dirs []string
}

func NewPathStack(root string) *PathStack {
	return &PathStack{dirs: []string{filepath.Clean(root)}}
}

func (p *PathStack) Root() string    { return p.dirs[0] }
func (p *PathStack) Current() string { return p.dirs[len(p.dirs)-1] }
func (p *PathStack) AtRoot() bool    { return len(p.dirs) == 1 }
func (p *PathStack) Depth() int      { return len(p.dirs) - 1 }

// Push enters dir, given as a full path.
func (p *PathStack) Push(dir string) {
	p.dirs = append(p.dirs, filepath.Clean(dir))
}

// Pop leaves the current directory. It reports false at the root.
func (p *PathStack) Pop() bool {
	if p.AtRoot() {
		return false
	}
	p.dirs = p.dirs[:len(p.dirs)-1]
	return true
}

// Reset returns to the root.
func (p *PathStack) Reset() { p.dirs = p.dirs[:1] }
