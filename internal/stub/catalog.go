package stub

import (
	"sort"
	"strings"

	"shopfront/internal/domain"
)

type catalogQuery struct {
	page, limit        int
	category, search   string
	minPrice, maxPrice float64
	isOnSale, isNew    bool
	sortBy, sortOrder  string
}

func (b *Backend) listProducts(q catalogQuery) ([]domain.Product, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.Product, 0, len(b.products))
	for _, p := range b.products {
		if q.category != "" && p.Category != q.category {
			continue
		}
		if q.search != "" {
			needle := strings.ToLower(q.search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		if q.minPrice > 0 && p.Price < q.minPrice {
			continue
		}
		if q.maxPrice > 0 && p.Price > q.maxPrice {
			continue
		}
		if q.isOnSale && !p.IsOnSale {
			continue
		}
		if q.isNew && !p.IsNew {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.sortBy, q.sortOrder)

	total := len(out)
	page, limit := q.page, q.limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= total {
		return nil, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return out[start:end], total
}

func sortProducts(ps []domain.Product, by, order string) {
	less := func(i, j int) bool { return ps[i].CreatedAt > ps[j].CreatedAt } // newest first
	switch by {
	case "price":
		less = func(i, j int) bool { return ps[i].Price < ps[j].Price }
	case "rating":
		less = func(i, j int) bool { return ps[i].Rating.Average < ps[j].Rating.Average }
	case "name":
		less = func(i, j int) bool { return ps[i].Name < ps[j].Name }
	}
	if order == "desc" && by != "" {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(ps, less)
}

// featured: on-sale and new items, best-rated first.
func (b *Backend) featured() []domain.Product {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := []domain.Product{}
	for _, p := range b.products {
		if p.IsOnSale || p.IsNew {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating.Average > out[j].Rating.Average
	})
	return out
}

func (b *Backend) storeList() []domain.Store {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Store, len(b.stores))
	copy(out, b.stores)
	return out
}

func (b *Backend) storeByOwner(ownerID string) (domain.Store, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.stores {
		if s.OwnerID == ownerID {
			return s, true
		}
	}
	return domain.Store{}, false
}

// follow toggles the user on the store's follower set.
func (b *Backend) follow(storeID, userID string) (domain.Store, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.stores {
		if b.stores[i].ID != storeID {
			continue
		}
		set := b.followers[storeID]
		if set == nil {
			set = map[string]bool{}
			b.followers[storeID] = set
		}
		if set[userID] {
			delete(set, userID)
			b.stores[i].Followers--
		} else {
			set[userID] = true
			b.stores[i].Followers++
		}
		return b.stores[i], true
	}
	return domain.Store{}, false
}
