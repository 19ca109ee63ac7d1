package deploytime

import (
	// registers sha256 so go-digest treats the algorithm as available
	_ "crypto/sha256"

	"github.com/distribution/reference"
	"github.com/opencontainers/go-digest"
)

// ValidateDigest returns ref unchanged when it is a sha256 content digest:
// "sha256:" followed by exactly 64 lowercase hex characters.
func ValidateDigest(ref string) (string, bool) {
	d, err := digest.Parse(ref)
	if err != nil {
		return "", false
	}

	if d.Algorithm() != digest.SHA256 {
		return "", false
	}

	return ref, true
}

// ImageDigest returns the content digest pinned by an image reference.
// It accepts a bare digest as well as a canonical reference such as
// "quay.io/org/app@sha256:...". Tag-only references have no digest.
func ImageDigest(ref string) (string, bool) {
	if d, ok := ValidateDigest(ref); ok {
		return d, true
	}

	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return "", false
	}

	canonical, ok := named.(reference.Canonical)
	if !ok {
		return "", false
	}

	return ValidateDigest(canonical.Digest().String())
}

// firstDigest returns the first image reference that pins a valid digest.
func firstDigest(images []string) (string, bool) {
	for _, image := range images {
		if d, ok := ImageDigest(image); ok {
			return d, true
		}
	}

	return "", false
}
