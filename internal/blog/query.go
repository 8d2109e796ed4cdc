package blog

import (
	"sort"
	"strings"
	"time"
)

type SortField string

const (
	SortByTitle       SortField = "title"
	SortByAuthor      SortField = "author"
	SortByCategory    SortField = "category"
	SortByReadTime    SortField = "readTime"
	SortByViews       SortField = "views"
	SortByLikes       SortField = "likes"
	SortByPublishDate SortField = "publishDate"
	SortByCreatedAt   SortField = "createdAt"
	SortByUpdatedAt   SortField = "updatedAt"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByTitle, SortByAuthor, SortByCategory, SortByReadTime,
		SortByViews, SortByLikes, SortByPublishDate, SortByCreatedAt, SortByUpdatedAt:
		return true
	}
	return false
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

func FilterByStatus(posts []Post, status Status) []Post {
	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterBySearch matches the term case-insensitively against title,
// excerpt, or any tag. An empty term returns the input unchanged.
func FilterBySearch(posts []Post, term string) []Post {
	if term == "" {
		return posts
	}
	term = strings.ToLower(term)

	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if postMatches(p, term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func postMatches(p Post, loweredTerm string) bool {
	if strings.Contains(strings.ToLower(p.Title), loweredTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), loweredTerm) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), loweredTerm) {
			return true
		}
	}
	return false
}

func FilterByCategory(posts []Post, category string) []Post {
	if category == "" {
		return posts
	}
	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func FilterByTag(posts []Post, tag string) []Post {
	if tag == "" {
		return posts
	}
	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		for _, t := range p.Tags {
			if t == tag {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// publishDate is a plain calendar date; anything unparseable sorts as zero
func parsePublishDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortBy returns a sorted copy. The sort-key set is closed: an unknown
// field leaves the order untouched.
func SortBy(posts []Post, field SortField, order SortOrder) []Post {
	sorted := make([]Post, len(posts))
	copy(sorted, posts)

	var less func(a, b Post) bool
	switch field {
	case SortByTitle:
		less = func(a, b Post) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case SortByAuthor:
		less = func(a, b Post) bool { return strings.ToLower(a.Author) < strings.ToLower(b.Author) }
	case SortByCategory:
		less = func(a, b Post) bool { return strings.ToLower(a.Category) < strings.ToLower(b.Category) }
	case SortByReadTime:
		less = func(a, b Post) bool { return a.ReadTime < b.ReadTime }
	case SortByViews:
		less = func(a, b Post) bool { return a.Views < b.Views }
	case SortByLikes:
		less = func(a, b Post) bool { return a.Likes < b.Likes }
	case SortByPublishDate:
		less = func(a, b Post) bool { return parsePublishDate(a.PublishDate).Before(parsePublishDate(b.PublishDate)) }
	case SortByCreatedAt:
		less = func(a, b Post) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortByUpdatedAt:
		less = func(a, b Post) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == OrderDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// SplitFeatured partitions an already filtered result set into the
// featured and regular display groups.
func SplitFeatured(posts []Post) (featured, regular []Post) {
	featured = make([]Post, 0, len(posts))
	regular = make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Featured {
			featured = append(featured, p)
		} else {
			regular = append(regular, p)
		}
	}
	return featured, regular
}

// PublicView composes the anonymous reader view: published only, then
// search, category and tag filters, newest publish date first.
func PublicView(posts []Post, search, category, tag string) []Post {
	view := FilterByStatus(posts, StatusPublished)
	view = FilterBySearch(view, search)
	view = FilterByCategory(view, category)
	view = FilterByTag(view, tag)
	return SortBy(view, SortByPublishDate, OrderDesc)
}

// AdminView composes the admin listing over the full collection; status
// narrows only when set, sort key and order are caller-chosen with
// updatedAt descending as the default. An unknown sort key or order
// falls back to the default rather than leaving the listing unsorted.
func AdminView(posts []Post, search string, status Status, category string, field SortField, order SortOrder) []Post {
	view := posts
	if status != "" {
		view = FilterByStatus(view, status)
	}
	view = FilterBySearch(view, search)
	view = FilterByCategory(view, category)

	if !field.Valid() {
		field = SortByUpdatedAt
	}
	if !order.Valid() {
		order = OrderDesc
	}
	return SortBy(view, field, order)
}
