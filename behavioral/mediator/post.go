package mediator

import (
	"fmt"
	"sync"
)

// Post is a ready-made station that remembers everything it hears. The
// concrete stations of a real shop would act on notes; Post just keeps the
// transcript, which is all the pattern needs to be visible.
type Post struct {
	name string

	mu    sync.Mutex
	heard []string
}

// Post implements Station.
var _ Station = (*Post)(nil)

// NewPost returns a post with the given name.
func NewPost(name string) *Post {
	return &Post{name: name}
}

// Name implements Station.
func (p *Post) Name() string {
	return p.name
}

// Receive implements Station. It records the note as "from: note".
func (p *Post) Receive(from, note string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.heard = append(p.heard, fmt.Sprintf("%s: %s", from, note))
}

// Heard returns a copy of everything the post has received, oldest first.
func (p *Post) Heard() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]string(nil), p.heard...)
}
