package engine

import (
	"strings"

	"viralreel/types"
)

// Distribution toolkit sizes
const (
	titleCount     = 5
	captionCount   = 3
	insightCount   = 4
	autoReplyCount = 5
)

var keywordStopwords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "for": true, "with": true,
	"of": true, "to": true, "in": true, "on": true, "my": true, "your": true,
}

func (e *Engine) buildDistribution(p *types.Package, v vocab) {
	b := e.bank
	p.ViralTitles = v.fillAll(pickN(b.Titles, v.category, "titles", titleCount))
	p.Captions = v.fillAll(pickN(b.Captions, v.category, "captions", captionCount))
	p.Hashtags = buildHashtags(b.FixedHashtags, v)
	p.Keywords = buildKeywords(b.KeywordPatterns, v)
	p.ThumbnailPrompt = v.fill(pick(b.ThumbnailPrompts, v.category, "thumbnail"))
	p.BestPostTime = pick(b.PostTimes, v.category, "postTime")
	p.CallToAction = v.fill(pick(b.CallsToAction, v.category, "cta"))
	p.AutoReplyComments = v.fillAll(pickN(b.AutoReplies, v.category, "autoReplies", autoReplyCount))
}

// buildHashtags puts the joined category tag first, then one tag per
// category word, then the fixed high-traffic tags
func buildHashtags(fixed []string, v vocab) []string {
	tags := make([]string, 0, 1+maxCategoryTags+len(fixed))
	seen := make(map[string]bool)
	add := func(body string) {
		if body == "" || seen[body] {
			return
		}
		seen[body] = true
		tags = append(tags, "#"+body)
	}

	add(v.tag)
	for i, w := range v.words {
		if i == maxCategoryTags {
			break
		}
		if body := hashtagBody(w); runeLen(body) > 1 {
			add(body)
		}
	}
	for _, f := range fixed {
		add(hashtagBody(f))
	}
	return tags
}

func buildKeywords(patterns []string, v vocab) []string {
	keywords := make([]string, 0, 1+maxCategoryTags+len(patterns))
	seen := make(map[string]bool)
	add := func(k string) {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			return
		}
		seen[k] = true
		keywords = append(keywords, k)
	}

	add(v.category)
	for i, w := range v.words {
		if i == maxCategoryTags {
			break
		}
		w = strings.Trim(w, ".,!?;:'\"()")
		if runeLen(w) > 2 && !keywordStopwords[w] {
			add(w)
		}
	}
	for _, p := range patterns {
		add(v.fill(p))
	}
	return keywords
}

func (e *Engine) buildInsights(p *types.Package, v vocab) {
	p.TrendInsights = v.fillAll(pickN(e.bank.Insights, v.category, "insights", insightCount))
	p.InsightSummary = v.fill(pick(e.bank.InsightSummaries, v.category, "summary"))
	p.HookFormula = v.fill(pick(e.bank.HookFormulas, v.category, "hookFormula"))
}
