// Package catalog defines the filter option catalog: the full list of
// choices per dimension, fetched once from the metadata endpoint and
// treated as read-only afterwards. The facet compiler enumerates these
// lists in order; it never caches or refreshes them itself.
package catalog

import "strings"

// Option is one choice within a filter dimension.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Placeholder reports whether the option is a blank or "0" sentinel
// representing "unset". Placeholder options remain in the catalog but
// are excluded from facet enumeration and from decoded count tables.
func (o Option) Placeholder() bool {
	name := strings.TrimSpace(o.Name)
	return name == "" || name == "0"
}

// Tag is a tag option together with its optional category.
// The category is catalog metadata only; filtering matches on the tag id.
type Tag struct {
	Option
	Category *Option `json:"category,omitempty"`
}

// Catalog holds the ordered option lists of every dimension.
type Catalog struct {
	Types    []Option `json:"types"`
	Sectors  []Option `json:"sectors"`
	Statuses []Option `json:"statuses"`
	Tags     []Tag    `json:"tags"`
}

// TagOptions projects the tag list down to plain options, preserving order.
func (c *Catalog) TagOptions() []Option {
	opts := make([]Option, 0, len(c.Tags))
	for _, t := range c.Tags {
		opts = append(opts, t.Option)
	}
	return opts
}
