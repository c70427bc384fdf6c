package deeplink

import (
	"strconv"
	"strings"
	"time"
)

const fragmentKey = "item"

// OpenDelay is how long a presenter waits after start-up before acting on a
// deep link, so the first frame is drawn before the detail view opens.
const OpenDelay = 100 * time.Millisecond

// Encode returns the location fragment that points at an item.
func Encode(id int) string {
	return "#" + fragmentKey + "=" + strconv.Itoa(id)
}

// Decode extracts the item id from a fragment of the form "#item=<id>". The
// leading '#' is optional. Any other shape reports false.
func Decode(fragment string) (int, bool) {
	fragment = strings.TrimSpace(fragment)
	fragment = strings.TrimPrefix(fragment, "#")

	key, value, ok := strings.Cut(fragment, "=")
	if !ok || key != fragmentKey || value == "" {
		return 0, false
	}
	if value[0] == '+' {
		return 0, false
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return id, true
}
