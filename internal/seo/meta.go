package seo

import (
	"fmt"
	"strings"

	"github.com/codigohunt/solutions-backend/internal/blog"
)

const (
	siteName     = "Codigohunt Solutions"
	defaultImage = "https://images.pexels.com/photos/577585/pexels-photo-577585.jpeg?auto=compress&cs=tinysrgb&w=1200"
)

// Metadata is what the rendering layer injects into a page head.
type Metadata struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Keywords      string   `json:"keywords"`
	Image         string   `json:"image"`
	URL           string   `json:"url"`
	Type          string   `json:"type"`
	Author        string   `json:"author"`
	PublishedTime string   `json:"publishedTime,omitempty"`
	ModifiedTime  string   `json:"modifiedTime,omitempty"`
	Section       string   `json:"section,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// Registry holds the fixed per-page metadata and derives article
// metadata for blog posts.
type Registry struct {
	baseURL string
	pages   map[string]Metadata
}

func NewRegistry(baseURL string) *Registry {
	baseURL = strings.TrimRight(baseURL, "/")

	r := &Registry{
		baseURL: baseURL,
		pages:   map[string]Metadata{},
	}

	r.register("home", Metadata{
		Title:       "Codigohunt Solutions - Premier IT Consultancy & Services",
		Description: "Premier IT consultancy and services firm delivering high-performance, scalable, and secure digital solutions globally. Expert DevOps, Cloud, and Development Solutions.",
		Keywords:    "IT Consultancy, DevOps, Cloud Services, Web Development, Cybersecurity, ERP Solutions, Digital Marketing, App Development, Custom Software, IT Support, Jaipur IT Company",
		URL:         baseURL,
	})
	r.register("about", Metadata{
		Title:       "About Us - Expert IT Team & Company Story",
		Description: "Learn about Codigohunt Solutions' expert team, company mission, values, and our journey in delivering premier IT consultancy and development services globally.",
		Keywords:    "about codigohunt solutions, IT company team, DevOps experts, cloud specialists, company mission, IT consultancy team, Jaipur IT company",
		URL:         baseURL + "/about",
	})
	r.register("services", Metadata{
		Title:       "IT Services - DevOps, Development & Support",
		Description: "Explore our full range of IT services: DevOps consulting, app and web development, cybersecurity, digital marketing, cloud hosting, ERP and CMS solutions, and managed IT support.",
		Keywords:    "IT services, DevOps consulting, app development, web development, cybersecurity services, cloud hosting, ERP solutions, managed IT support",
		URL:         baseURL + "/services",
	})
	r.register("consultancies", Metadata{
		Title:       "Consultancy Services - Cloud, DevSecOps & Strategy",
		Description: "Specialized consultancy offerings from Codigohunt Solutions: AWS cloud consultancy, DevSecOps advisory, cybersecurity risk and compliance, and business strategy and growth.",
		Keywords:    "AWS cloud consultancy, DevSecOps advisory, cybersecurity compliance, business strategy consulting, IT consultancy services",
		URL:         baseURL + "/consultancies",
	})
	r.register("contact", Metadata{
		Title:       "Contact Us - Get in Touch with IT Experts",
		Description: "Contact Codigohunt Solutions for IT consultancy, development services, and technical support. Call +91 9461232921 or visit our Jaipur office for expert assistance.",
		Keywords:    "contact codigohunt solutions, IT support contact, Jaipur IT company contact, DevOps consulting contact, technical support, IT consultancy contact",
		URL:         baseURL + "/contact",
	})
	r.register("blog", Metadata{
		Title:       "Tech Blog - Latest Insights & Tutorials",
		Description: "Stay updated with the latest trends, insights, and best practices in technology, DevOps, cloud computing, and software development from our expert team.",
		Keywords:    "tech blog, DevOps tutorials, cloud computing, cybersecurity, web development, software engineering, IT insights",
		URL:         baseURL + "/blog",
	})

	return r
}

func (r *Registry) register(page string, meta Metadata) {
	r.pages[page] = withDefaults(meta)
}

func withDefaults(meta Metadata) Metadata {
	if !strings.Contains(meta.Title, "Codigohunt") {
		meta.Title = fmt.Sprintf("%s | %s", meta.Title, siteName)
	}
	if meta.Image == "" {
		meta.Image = defaultImage
	}
	if meta.Type == "" {
		meta.Type = "website"
	}
	if meta.Author == "" {
		meta.Author = siteName
	}
	return meta
}

// Page returns the metadata for a fixed page name.
func (r *Registry) Page(name string) (Metadata, bool) {
	meta, ok := r.pages[name]
	return meta, ok
}

// Pages lists the registered page names.
func (r *Registry) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	return names
}

// ForPost derives article metadata from a published blog post.
func (r *Registry) ForPost(post blog.Post) Metadata {
	return withDefaults(Metadata{
		Title:         fmt.Sprintf("%s | Codigohunt Solutions Blog", post.Title),
		Description:   post.Excerpt,
		Keywords:      strings.Join(post.Tags, ", "),
		Image:         post.Image,
		URL:           fmt.Sprintf("%s/blog/%s", r.baseURL, post.Slug),
		Type:          "article",
		PublishedTime: post.PublishDate,
		ModifiedTime:  post.UpdatedAt.Format("2006-01-02"),
		Section:       post.Category,
		Tags:          post.Tags,
	})
}
