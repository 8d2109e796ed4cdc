package blog

import (
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const DefaultPostImage = "https://images.pexels.com/photos/577585/pexels-photo-577585.jpeg?auto=compress&cs=tinysrgb&w=800"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

var Categories = []string{
	"DevOps",
	"Cloud Computing",
	"Cybersecurity",
	"Web Development",
	"DevSecOps",
	"AI/ML",
	"Mobile Development",
	"Data Science",
}

var Authors = []string{
	"Ankit Sharma",
	"Akshay Gupta",
	"Vaibhav Patidar",
	"Sameer Khan",
	"Ravi Naval",
}

type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	PublishDate string    `json:"publishDate"`
	ReadTime    int       `json:"readTime"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	Image       string    `json:"image"`
	Status      Status    `json:"status"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PostInput is what the admin surface submits on create / update.
type PostInput struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publishDate"`
	ReadTime    int      `json:"readTime"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Image       string   `json:"image"`
	Status      Status   `json:"status"`
}

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

func (in *PostInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title"}
	}
	if strings.TrimSpace(in.Excerpt) == "" {
		return &ValidationError{Field: "excerpt"}
	}
	if strings.TrimSpace(in.Content) == "" {
		return &ValidationError{Field: "content"}
	}
	return nil
}

// stored post content is rendered verbatim on the reader side,
// so everything outside the UGC allow-list gets stripped at write time
var contentSanitizer = bluemonday.UGCPolicy()

func SanitizeContent(content string) string {
	return contentSanitizer.Sanitize(content)
}

// Slugify derives a URL slug from a post title:
// "Hello World, DevOps!" -> "hello-world-devops"
func Slugify(title string) string {
	lowered := strings.ToLower(title)

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		}
	}

	slug := strings.TrimSpace(b.String())
	slug = strings.Join(strings.Fields(slug), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}

// dedupeSlug appends a numeric suffix until the slug is unique within
// the collection; selfID excludes the post being updated from the check.
func dedupeSlug(slug, selfID string, posts []Post) string {
	taken := func(candidate string) bool {
		for i := range posts {
			if posts[i].ID != selfID && posts[i].Slug == candidate {
				return true
			}
		}
		return false
	}

	if !taken(slug) {
		return slug
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
