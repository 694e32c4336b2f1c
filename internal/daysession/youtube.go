package daysession

import "net/url"

// YouTubeSearchURL builds a results-page URL for a generated search
// query. Materials link to searches rather than specific videos so the
// links never go stale.
func YouTubeSearchURL(query string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
}
