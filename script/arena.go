package script

import "github.com/gogpu/twig"

// arena maps script-visible handle ids to bitmaps. Ids start at 1 and are
// never reused, so a stale handle can never reach a newer bitmap.
type arena struct {
	items map[int]*twig.Bitmap
	next  int
}

func newArena() *arena {
	return &arena{items: make(map[int]*twig.Bitmap)}
}

func (a *arena) add(b *twig.Bitmap) int {
	a.next++
	a.items[a.next] = b
	return a.next
}

func (a *arena) get(id int) (*twig.Bitmap, bool) {
	b, ok := a.items[id]
	return b, ok
}

// release drops the handle and reports whether it was live.
func (a *arena) release(id int) bool {
	if _, ok := a.items[id]; !ok {
		return false
	}
	delete(a.items, id)
	return true
}

func (a *arena) len() int {
	return len(a.items)
}

func (a *arena) clear() {
	clear(a.items)
}
