package markdown

import (
	"mime"
	"net/url"
	"path"
	"strings"

	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
)

// CleanURL applies the link policy of goldmark's HTML renderer: dangerous
// schemes are rejected and the rest is percent encoded. ok is false when the
// URL must be dropped.
func CleanURL(href string) (string, bool) {
	raw := []byte(strings.TrimSpace(href))
	if gmhtml.IsDangerousURL(raw) {
		return "", false
	}
	return string(util.URLEscape(raw, true)), true
}

// Escape HTML escapes code for insertion as markup.
func Escape(code string) string {
	return html.EscapeString(code)
}

// extensionTypes covers media extensions missing from some platform MIME
// tables.
var extensionTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".webm": "video/webm",
	".ogv":  "video/ogg",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".mp3":  "audio/mpeg",
	".ogg":  "audio/ogg",
	".wav":  "audio/wav",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".avif": "image/avif",
}

// ContentType guesses a media type from the extension of the URL path. It
// returns an empty string when nothing matches.
func ContentType(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	ext := strings.ToLower(path.Ext(p))
	if ext == "" {
		return ""
	}
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return mime.TypeByExtension(ext)
}

// IsVideo reports whether the URL points at a video file.
func IsVideo(rawURL string) bool {
	return strings.HasPrefix(ContentType(rawURL), "video")
}
