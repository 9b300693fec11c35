// Package oaid provides pure helpers for OpenAlex identifiers and
// author display names. It has no I/O dependencies.
package oaid

import (
	"strings"

	"github.com/83years/oadb/pkg/config"
)

// Normalize strips the canonical OpenAlex URL prefix from an
// identifier, producing the compact bare form. An input that does not
// carry the prefix is returned unchanged: the snapshot mixes full URLs
// with already-bare values and both must map to the same key. An empty
// input stays empty. No case folding, no whitespace trimming beyond
// the exact prefix match.
func Normalize(id string) string {
	if id == "" {
		return ""
	}
	return strings.TrimPrefix(id, config.IDPrefix)
}

// NormalizeAll applies Normalize to every element of ids, skipping
// empty values. The result preserves input order.
func NormalizeAll(ids []string) []string {
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		res = append(res, Normalize(id))
	}
	return res
}

// ParsePersonName splits an author display name into forename and
// surname. Two shapes are recognised:
//
//	"Family, Given ..."  -> surname "Family", forename "Given ..."
//	"Given ... Family"   -> surname is the last space-separated token
//
// A name that is empty or consists of a single token cannot be split;
// ok is false and both parts are empty. Callers store NULLs in that
// case, the record itself is unaffected.
func ParsePersonName(display string) (forename, surname string, ok bool) {
	display = strings.TrimSpace(display)
	if display == "" {
		return "", "", false
	}

	if i := strings.Index(display, ","); i >= 0 {
		surname = strings.TrimSpace(display[:i])
		forename = strings.TrimSpace(display[i+1:])
		if surname == "" || forename == "" {
			return "", "", false
		}
		return forename, surname, true
	}

	i := strings.LastIndex(display, " ")
	if i < 0 {
		return "", "", false
	}
	forename = strings.TrimSpace(display[:i])
	surname = strings.TrimSpace(display[i+1:])
	if surname == "" || forename == "" {
		return "", "", false
	}
	return forename, surname, true
}
