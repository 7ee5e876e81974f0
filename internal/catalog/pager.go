package catalog

import (
	"context"
	"time"
)

const (
	// PageSize is the display-count step for collection pages.
	PageSize = 6

	// DefaultLoadMoreDelay mimics the loading state the storefront shows
	// while a "load more" request is in flight, even though the slice
	// computation itself is synchronous.
	DefaultLoadMoreDelay = 500 * time.Millisecond
)

// Pager is the display-count cursor for a filtered listing. It starts at
// PageSize and grows by PageSize per LoadMore call.
type Pager struct {
	count int
	total int
	delay time.Duration
}

func NewPager(total int, delay time.Duration) *Pager {
	return &Pager{count: PageSize, total: total, delay: delay}
}

// Resume rebuilds a pager at a cursor a client already holds. Counts below
// one page snap back to the first page.
func Resume(count, total int, delay time.Duration) *Pager {
	if count < PageSize {
		count = PageSize
	}
	return &Pager{count: count, total: total, delay: delay}
}

func (p *Pager) Count() int {
	if p.count > p.total {
		return p.total
	}
	return p.count
}

func (p *Pager) HasMore() bool {
	return p.count < p.total
}

// LoadMore advances the cursor after the configured latency. The wait is
// cancellable through ctx; the cursor does not move on cancellation.
func (p *Pager) LoadMore(ctx context.Context) error {
	if !p.HasMore() {
		return nil
	}
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.count += PageSize
	return nil
}

// Page slices the filtered result down to the current display count.
func (p *Pager) Page(products []Product) []Product {
	if len(products) <= p.Count() {
		return products
	}
	return products[:p.Count()]
}
