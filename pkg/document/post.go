package document

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/yaklabco/mdpage/pkg/slug"
)

// Meta is the metadata record of a post.
type Meta struct {
	Title            string    `json:"title" yaml:"title"`
	Slug             string    `json:"slug" yaml:"slug"`
	ShortDescription string    `json:"short_description,omitempty" yaml:"short_description"`
	Tags             []string  `json:"tags,omitempty" yaml:"tags"`
	ReleasedAt       time.Time `json:"released_at,omitzero" yaml:"released_at"`
	Thumbnail        string    `json:"thumbnail,omitempty" yaml:"thumbnail"`
}

// Post is a document with its metadata and render payload.
type Post struct {
	Meta
	Body    string   `json:"-"`
	Payload *Payload `json:"payload"`
}

// ParsePost splits optional YAML front matter from source and builds the
// payload for the remaining body. A missing slug is derived from the title.
func ParsePost(source []byte, opts Options) (*Post, error) {
	var meta Meta

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta.Title = strings.TrimSpace(meta.Title)
	if meta.Slug == "" && meta.Title != "" {
		meta.Slug = slug.Slugify(meta.Title)
	}

	text := string(body)

	return &Post{
		Meta:    meta,
		Body:    text,
		Payload: Build(text, opts),
	}, nil
}

// SortByRelease orders posts newest first. Posts with equal release times
// keep their relative order.
func SortByRelease(posts []*Post) {
	slices.SortStableFunc(posts, func(a, b *Post) int {
		return b.ReleasedAt.Compare(a.ReleasedAt)
	})
}

// Related returns up to n posts other than the one identified by postSlug,
// newest first. The input slice is not modified.
func Related(posts []*Post, postSlug string, n int) []*Post {
	if n <= 0 {
		return nil
	}

	others := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if p.Slug != postSlug {
			others = append(others, p)
		}
	}

	SortByRelease(others)

	if len(others) > n {
		others = others[:n]
	}
	return others
}
