// Package imagesrc derives responsive image candidates from a single image
// URL. It only rewrites strings; nothing here touches the network.
package imagesrc

import (
	"regexp"
	"strconv"
	"strings"
)

const imgurPrefix = "https://i.imgur.com/"

var imgurRE = regexp.MustCompile(`^(https://i\.imgur\.com/)([^.]+)(\..+)$`)

type Candidate struct {
	URL   string
	Width int
}

type Set struct {
	Default    string
	Candidates []Candidate
}

var imgurSizes = []struct {
	suffix string
	width  int
}{
	{"m", 320},
	{"l", 640},
	{"h", 1024},
}

// originalWidth is assumed for the unmodified upload.
const originalWidth = 1280

// Sources returns the candidates for url. Only imgur direct links can be
// resized by suffix; anything else comes back as its own default with no
// candidates.
func Sources(url string) Set {
	if !strings.HasPrefix(url, imgurPrefix) {
		return Set{Default: url}
	}

	m := imgurRE.FindStringSubmatch(url)
	if m == nil {
		return Set{Default: url}
	}
	base, id, ext := m[1], m[2], m[3]

	set := Set{Candidates: make([]Candidate, 0, len(imgurSizes)+1)}
	for _, size := range imgurSizes {
		set.Candidates = append(set.Candidates, Candidate{
			URL:   base + id + size.suffix + ext,
			Width: size.width,
		})
	}
	set.Candidates = append(set.Candidates, Candidate{URL: url, Width: originalWidth})
	set.Default = base + id + "l" + ext
	return set
}

// SrcSet renders the candidates as an HTML srcset value.
func (s Set) SrcSet() string {
	parts := make([]string, len(s.Candidates))
	for i, c := range s.Candidates {
		parts[i] = c.URL + " " + strconv.Itoa(c.Width) + "w"
	}
	return strings.Join(parts, ", ")
}

// Widths lists the width descriptors in candidate order.
func (s Set) Widths() []int {
	widths := make([]int, len(s.Candidates))
	for i, c := range s.Candidates {
		widths[i] = c.Width
	}
	return widths
}
