package repository

import "gorm.io/gorm"

// Page is one slice of a paginated result set. Next and Prev are 1-based page
// numbers; nil means there is no page in that direction. A page past the end
// of the result set carries no items and no tokens.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Number  int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Next    *int  `json:"next"`
	Prev    *int  `json:"prev"`
}

// EmptyPage returns a page with no items and no navigation tokens.
func EmptyPage[T any](page, perPage int) *Page[T] {
	return &Page[T]{Items: []T{}, Number: page, PerPage: perPage}
}

func paginate[T any](query *gorm.DB, page, perPage int) (*Page[T], error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	items := []T{}
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(&items).Error; err != nil {
		return nil, err
	}

	result := &Page[T]{
		Items:   items,
		Number:  page,
		PerPage: perPage,
		Total:   total,
	}
	if int64(page*perPage) < total {
		next := page + 1
		result.Next = &next
	}
	if page > 1 && int64((page-1)*perPage) < total {
		prev := page - 1
		result.Prev = &prev
	}

	return result, nil
}
