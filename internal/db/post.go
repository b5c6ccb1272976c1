package db

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Post represents a blog article written in markdown.
type Post struct {
	gorm.Model
	Slug        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	Author      string `gorm:"size:100"`
	Excerpt     string
	Thumbnail   string `gorm:"size:255"`
	Tags        string `gorm:"size:255"`
	PublishedAt time.Time
	BaseViews   int64 `gorm:"default:0"`
	Content     string `gorm:"type:text"`
}

// TagList splits the comma separated tag column into individual names.
func (p Post) TagList() []string {
	if strings.TrimSpace(p.Tags) == "" {
		return nil
	}

	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
