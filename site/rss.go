package site

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/mdpress/mdpress/types"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
	GUID    string `xml:"guid"`
}

// renderFeed lists the same sorted, non-draft posts as the index.
func (g Generator) renderFeed(posts []types.Post) ([]byte, error) {
	base := strings.TrimSuffix(g.Config.URL, "/")
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t, err := time.Parse("2006-01-02", p.Meta.Created); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := base + "/" + Slug(p) + ".html"
		items = append(items, rssItem{
			Title:   p.Meta.Title,
			Link:    postURL,
			PubDate: pubDate,
			GUID:    postURL,
		})
	}
	doc := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       g.Config.Name,
			Link:        g.Config.URL,
			Description: g.Config.Description,
			Items:       items,
		},
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
