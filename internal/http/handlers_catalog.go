package http

import (
	"net/http"

	"mulga/internal/catalog"
)

type itemView struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	BasePrice int64  `json:"basePrice"`
	Slug      string `json:"slug"`
}

func toItemView(it catalog.Item) itemView {
	return itemView{
		Code:      it.Code,
		Name:      it.Name,
		Category:  it.Category,
		BasePrice: it.BasePrice,
		Slug:      catalog.ToSlug(it.Name),
	}
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var items []catalog.Item
	if category != "" {
		var ok bool
		items, ok = s.catalog.CategoryItems(category)
		if !ok {
			writeError(w, http.StatusNotFound, errUnknownCategory)
			return
		}
	} else {
		items = s.catalog.All()
	}

	views := make([]itemView, 0, len(items))
	for _, it := range items {
		views = append(views, toItemView(it))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(views),
		"items": views,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats := s.catalog.Categories()

	type categoryView struct {
		Name      string `json:"name"`
		ItemCount int    `json:"itemCount"`
	}

	views := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		views = append(views, categoryView{Name: c.Name, ItemCount: len(c.Items)})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":      len(views),
		"categories": views,
	})
}
