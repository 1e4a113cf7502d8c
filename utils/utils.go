package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// CheckError panics with a location-tagged message; main recovers and logs.
func CheckError(err error, where string) {
	if err != nil {
		panic("[" + where + "]" + err.Error())
	}
}

// NormalizeTags lowercases, trims and deduplicates user-supplied tags and
// returns them sorted. Empty entries are dropped.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// ContainsWord reports whether word is present in words.
func ContainsWord(word string, words []string) bool {
	for _, w := range words {
		if word == w {
			return true
		}
	}
	return false
}

// MetricTimeCost logs how long the surrounding function took:
// defer MetricTimeCost("ranking")()
func MetricTimeCost(funcName string) func() {
	start := time.Now()
	return func() {
		fmt.Printf("[timing] %s %v\n", funcName, time.Since(start))
	}
}
