// Package classify separates single-figure listings from multi-item sets
// and bundles. Bundles never enter figure matching; they are routed to a
// separate bucket so a "Mario 3-Pack" can never merge into the "Mario"
// catalog entry.
package classify

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed keywords.yaml
var keywordsYAML []byte

// seriesNumberRE catches trading-card style names like "Animal Crossing
// Series 5" that carry no explicit bundle keyword.
var seriesNumberRE = regexp.MustCompile(`series\s+\d+`)

type keywordConfig struct {
	BundleKeywords []string `yaml:"bundle_keywords"`
}

var bundleKeywords = mustLoadKeywords()

func mustLoadKeywords() []string {
	var cfg keywordConfig
	if err := yaml.Unmarshal(keywordsYAML, &cfg); err != nil {
		panic("classify: invalid embedded keywords.yaml: " + err.Error())
	}
	return cfg.BundleKeywords
}

// IsBundle reports whether a raw listing name describes a set or bundle of
// items rather than a single figure. Matching is case-insensitive and runs
// on the raw name, before normalization strips the telltale punctuation in
// phrases like "3-pack".
func IsBundle(name string) bool {
	lower := strings.ToLower(name)

	for _, kw := range bundleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return seriesNumberRE.MatchString(lower)
}

// Keywords returns the bundle keyword list, primarily for display.
func Keywords() []string {
	out := make([]string, len(bundleKeywords))
	copy(out, bundleKeywords)
	return out
}
