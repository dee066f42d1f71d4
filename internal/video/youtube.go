// Package video extracts YouTube video IDs from the many URL shapes users paste.
package video

import "regexp"

// youtubePattern accepts full watch URLs, short youtu.be links, embed and
// shorts URLs, and bare v= query parameters. Capture group 2 is the ID
// candidate; everything after #, & or ? is cut off.
var youtubePattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=|shorts/)([^#&?]*).*`)

// idLength is the fixed length of a YouTube video ID.
const idLength = 11

// YouTubeID extracts the 11-character video ID from a YouTube URL.
// It returns "" when the input does not contain a recognizable video ID,
// including when the candidate has the wrong length.
func YouTubeID(url string) string {
	m := youtubePattern.FindStringSubmatch(url)
	if m == nil || len(m[2]) != idLength {
		return ""
	}
	return m[2]
}

// EmbedURL returns the embeddable player URL for a video ID, or "" for
// an empty ID.
func EmbedURL(id string) string {
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}
