package engine

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"
	"unicode"
	"unicode/utf8"

	"viralreel/config"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxHashtagRunes = 50
	maxCategoryTags = 5
)

// Normalize trims, lowercases and collapses whitespace in a raw category.
// Blank input maps to config.DefaultCategory.
func Normalize(raw string) string {
	key := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if key == "" {
		return config.DefaultCategory
	}
	return key
}

// variant maps (category, field) onto [0, n) so every field picks its own
// template independently but reproducibly.
func variant(category, field string, n int) int {
	if n <= 1 {
		return 0
	}
	sum := sha256.Sum256([]byte(category + "|" + field))
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

func pick(pool []string, category, field string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[variant(category, field, len(pool))]
}

// pickN takes k consecutive entries from pool starting at a derived offset
func pickN(pool []string, category, field string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	out := make([]string, 0, k)
	start := variant(category, field, len(pool))
	for i := 0; i < k; i++ {
		out = append(out, pool[(start+i)%len(pool)])
	}
	return out
}

// vocab holds the category forms that templates interpolate
type vocab struct {
	category string
	title    string
	tag      string
	words    []string
	replacer *strings.Replacer
}

func newVocab(category string) vocab {
	v := vocab{
		category: category,
		title:    cases.Title(language.English).String(category),
		tag:      hashtagBody(category),
		words:    strings.Fields(category),
	}
	captionTag := v.tag
	if captionTag == "" {
		captionTag = hashtagBody(config.DefaultCategory)
	}
	v.replacer = strings.NewReplacer(
		"{category}", v.category,
		"{Category}", v.title,
		"{tag}", captionTag,
	)
	return v
}

func (v vocab) fill(tmpl string) string {
	return v.replacer.Replace(tmpl)
}

func (v vocab) fillAll(tmpls []string) []string {
	out := make([]string, len(tmpls))
	for i, t := range tmpls {
		out[i] = v.fill(t)
	}
	return out
}

// hashtagBody keeps lowercase letters and digits, capped in length
func hashtagBody(s string) string {
	var b strings.Builder
	n := 0
	for _, r := range strings.ToLower(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if n == maxHashtagRunes {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
