package deeplink

import (
	"fmt"
	"net/url"
	"strings"
	"vitrine/internal/catalog"
)

// ShareURL joins base (scheme, host and path, any existing fragment dropped)
// with the item's fragment.
func ShareURL(base string, id int) string {
	base, _, _ = strings.Cut(base, "#")
	return base + Encode(id)
}

func ShareText(it catalog.Item) string {
	return fmt.Sprintf("Take a look at this work of art: %s by %s!", it.Name, it.Designer)
}

func TwitterIntentURL(base string, it catalog.Item) string {
	q := url.Values{}
	q.Set("url", ShareURL(base, it.ID))
	q.Set("text", ShareText(it))
	return "https://twitter.com/intent/tweet?" + q.Encode()
}

func FacebookShareURL(base string, id int) string {
	q := url.Values{}
	q.Set("u", ShareURL(base, id))
	return "https://www.facebook.com/sharer/sharer.php?" + q.Encode()
}
