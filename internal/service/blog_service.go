package service

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"github.com/inarasite/internal/db"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

// BlogService provides read access to blog articles.
type BlogService struct {
	db *gorm.DB
}

// NewBlogService returns a new BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// List returns all articles sorted newest first.
func (s *BlogService) List() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Order("published_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByTag returns articles carrying the given tag, newest first.
func (s *BlogService) ListByTag(tag string) ([]db.Post, error) {
	posts, err := s.List()
	if err != nil {
		return nil, err
	}

	filtered := make([]db.Post, 0, len(posts))
	for _, post := range posts {
		for _, candidate := range post.TagList() {
			if strings.EqualFold(candidate, tag) {
				filtered = append(filtered, post)
				break
			}
		}
	}
	return filtered, nil
}

// GetBySlug fetches a single article by its slug.
func (s *BlogService) GetBySlug(slug string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// AllTags returns the sorted set of tags used across all articles.
func (s *BlogService) AllTags() ([]string, error) {
	posts, err := s.List()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, post := range posts {
		for _, tag := range post.TagList() {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	sort.Strings(tags)
	return tags, nil
}

// SeedSamplePosts inserts the bundled sample articles when the posts table is
// empty, so a fresh install renders a populated blog.
func (s *BlogService) SeedSamplePosts() error {
	var count int64
	if err := s.db.Model(&db.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, post := range samplePosts() {
		record := post
		record.Slug = Slugify(record.Title)
		if err := s.db.Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

// Slugify derives a URL slug from an article title: lowercase, alphanumeric
// runs joined by single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
