package catalog

import "sync"

// Carousel tracks the current image index per product for one browsing
// session. Indexes default to 0 and wrap modulo the image count in both
// directions. The state is ephemeral; it is never persisted.
type Carousel struct {
	mu  sync.Mutex
	idx map[string]int
}

func NewCarousel() *Carousel {
	return &Carousel{idx: make(map[string]int)}
}

func (c *Carousel) Current(productID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.idx[productID]
}

// Next advances the index for a product with total images, wrapping to 0
// past the end. total < 2 pins the index at 0.
func (c *Carousel) Next(productID string, total int) int {
	return c.step(productID, total, 1)
}

// Prev steps back, wrapping to total-1 from index 0.
func (c *Carousel) Prev(productID string, total int) int {
	return c.step(productID, total, -1)
}

func (c *Carousel) step(productID string, total, delta int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if total < 2 {
		delete(c.idx, productID)
		return 0
	}
	n := ((c.idx[productID]+delta)%total + total) % total
	c.idx[productID] = n
	return n
}

// Carousels holds one Carousel per session id, created on first use and
// dropped when the session ends.
type Carousels struct {
	mu sync.Mutex
	m  map[string]*Carousel
}

func NewCarousels() *Carousels {
	return &Carousels{m: make(map[string]*Carousel)}
}

func (s *Carousels) For(sid string) *Carousel {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.m[sid]
	if !ok {
		c = NewCarousel()
		s.m[sid] = c
	}
	return c
}

func (s *Carousels) Drop(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sid)
}
