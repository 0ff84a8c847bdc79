package conversation

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Fingerprints computes the three normalized signatures of a reply:
// first eight words, last eight words, and a full-text hash. Any one
// colliding with the rolling window counts as repetition.
func Fingerprints(text string) []string {
	words := normalizeWords(text)
	if len(words) == 0 {
		return nil
	}

	head := words
	if len(head) > 8 {
		head = head[:8]
	}
	tail := words
	if len(tail) > 8 {
		tail = tail[len(tail)-8:]
	}

	h := fnv.New64a()
	h.Write([]byte(strings.Join(words, " ")))

	return []string{
		"head:" + strings.Join(head, " "),
		"tail:" + strings.Join(tail, " "),
		fmt.Sprintf("hash:%x", h.Sum64()),
	}
}

// CollidesWith reports whether any signature of text appears in the
// rolling window.
func CollidesWith(window []string, text string) bool {
	for _, fp := range Fingerprints(text) {
		for _, seen := range window {
			if fp == seen {
				return true
			}
		}
	}
	return false
}

// RememberFingerprints appends the signatures of text to the window,
// trimming it to windowSize replies.
func RememberFingerprints(window []string, text string, windowSize int) []string {
	window = append(window, Fingerprints(text)...)
	max := windowSize * 3
	if max > 0 && len(window) > max {
		window = window[len(window)-max:]
	}
	return window
}

func normalizeWords(text string) []string {
	lower := strings.ToLower(text)
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}
