package fixture

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	"github.com/mmcdole/gofeed"
	"github.com/tesso57/socialfeed/internal/domain/social"
)

// PostsFromFeedFile parses a local RSS/Atom/JSON feed file into posts, newest
// first as they appear in the file. now anchors the relative timestamps.
func PostsFromFeedFile(path string, now time.Time) ([]social.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open posts feed: %w", err)
	}
	defer func() { _ = f.Close() }()

	parsed, err := gofeed.NewParser().Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse posts feed %s: %w", path, err)
	}
	return postsFromFeed(parsed, now), nil
}

func postsFromFeed(feed *gofeed.Feed, now time.Time) []social.Post {
	posts := make([]social.Post, 0, len(feed.Items))
	seen := make(map[string]struct{}, len(feed.Items))
	for i, item := range feed.Items {
		if item == nil {
			continue
		}
		id := firstNonEmpty(item.GUID, item.Link, fmt.Sprintf("feed-%d", i+1))
		if _, dup := seen[id]; dup {
			id = fmt.Sprintf("%s#%d", id, i+1)
		}
		seen[id] = struct{}{}

		author := feed.Title
		if item.Author != nil && item.Author.Name != "" {
			author = item.Author.Name
		} else if len(item.Authors) > 0 && item.Authors[0] != nil && item.Authors[0].Name != "" {
			author = item.Authors[0].Name
		}

		var image string
		if item.Image != nil {
			image = item.Image.URL
		}

		posts = append(posts, social.Post{
			ID:         id,
			AuthorName: firstNonEmpty(author, "Unknown"),
			Timestamp:  relativeTime(item, now),
			Privacy:    social.PrivacyPublic,
			Text:       postText(item),
			ImageURL:   image,
		})
	}
	return posts
}

func postText(item *gofeed.Item) string {
	title := strings.TrimSpace(item.Title)
	body := plainText(firstNonEmpty(item.Description, item.Content))
	switch {
	case title == "":
		return body
	case body == "" || body == title:
		return title
	default:
		return title + "\n\n" + body
	}
}

func plainText(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func relativeTime(item *gofeed.Item, now time.Time) string {
	var when *time.Time
	switch {
	case item.PublishedParsed != nil:
		when = item.PublishedParsed
	case item.UpdatedParsed != nil:
		when = item.UpdatedParsed
	}
	if when == nil {
		return firstNonEmpty(item.Published, item.Updated)
	}
	return humanize.RelTime(*when, now, "ago", "from now")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
