// Package topics maps the curated topic names onto their news-search queries.
package topics

import "sort"

const defaultTopic = "technology"

var queries = map[string]string{
	"technology":    "technology OR AI OR artificial intelligence OR software OR hardware",
	"business":      "business OR economy OR market OR finance OR stocks",
	"politics":      "politics OR government OR election OR policy",
	"sports":        "sports OR football OR basketball OR soccer OR tennis",
	"entertainment": "entertainment OR movies OR music OR celebrities",
	"science":       "science OR research OR discovery OR space OR medicine",
	"health":        "health OR medical OR healthcare OR wellness",
	"environment":   "environment OR climate OR nature OR conservation",
}

// Query resolves a topic name to its search query. Unknown or empty names
// fall back to the technology query.
func Query(name string) string {
	if q, ok := queries[name]; ok {
		return q
	}
	return queries[defaultTopic]
}

// Known reports whether name is one of the curated topics.
func Known(name string) bool {
	_, ok := queries[name]
	return ok
}

// Names returns the curated topic names in sorted order.
func Names() []string {
	names := make([]string, 0, len(queries))
	for name := range queries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
