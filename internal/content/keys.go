package content

import (
	"strconv"

	"github.com/google/uuid"
)

// keyNamespace scopes item keys to this site.
var keyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://garden.lantern/gigagent"))

// ItemKey returns a stable identifier for the item at index within a list of
// the given kind. Position is part of the key, so two items with the same
// text never collide, and the same input always yields the same key.
func ItemKey(kind string, index int, text string) string {
	name := kind + "/" + strconv.Itoa(index) + "/" + text
	return uuid.NewSHA1(keyNamespace, []byte(name)).String()
}
