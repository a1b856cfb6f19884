// ABOUTME: VisibleWidth measures terminal cells skipping ANSI escapes; RawWidth counts every ASCII byte
// ABOUTME: Plain ASCII is measured by length; anything else is segmented and cached

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

var (
	widthCache = newCache(cacheSize)
	rawCache   = newCache(cacheSize)
)

// VisibleWidth returns the number of terminal cells s occupies. ANSI
// escape sequences count as zero; wide grapheme clusters (CJK, emoji)
// count as two.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := clusterWidth(StripANSI(s))
	widthCache.put(s, w)
	return w
}

// RawWidth measures s as text rather than as terminal output: every
// ASCII byte counts as one cell, tabs and escape bytes included. Non-ASCII
// grapheme clusters are measured like VisibleWidth.
func RawWidth(s string) int {
	if isASCII(s) {
		return len(s)
	}
	if w, ok := rawCache.get(s); ok {
		return w
	}
	w := 0
	state := -1
	for rest := s; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if isASCII(cluster) {
			w += len(cluster)
			continue
		}
		w += graphemeWidth(cluster)
	}
	rawCache.put(s, w)
	return w
}

// PadRawRight is PadRight measured with RawWidth.
func PadRawRight(s string, n int) string {
	gap := n - RawWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// isASCII reports whether every byte of s is below 0x80.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// clusterWidth sums the widths of the grapheme clusters of an
// escape-free string.
func clusterWidth(s string) int {
	w := 0
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// graphemeWidth is the width of the cluster's leading rune.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
