package pages

import (
	"strings"

	"github.com/google/uuid"
	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/refdocs/internal/frontmatter"
)

const uidField = "uid"

// UID derives a stable page id from its permalink, so rebuilding the same
// tree yields the same ids.
func UID(permalink string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(permalink)).String()
}

// Fingerprint hashes the page's frontmatter (minus identity fields) and body.
func Fingerprint(fields frontmatter.Fields, body string) (string, error) {
	hashed := fields.Without(uidField, mdfp.FingerprintField)
	serialized, err := frontmatter.Serialize(hashed)
	if err != nil {
		return "", err
	}
	fm := strings.TrimSuffix(string(serialized), "\n")
	return mdfp.CalculateFingerprintFromParts(fm, body), nil
}
