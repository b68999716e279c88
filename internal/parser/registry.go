package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type namePhrase[T any] struct {
	canonical string
	alias     string
	value     T
}

// Registry resolves free-form names to catalog values. Lookups try exact
// names, then aliases, then unique prefixes, then small typos.
type Registry[T any] struct {
	kind    Kind
	values  map[string]T
	phrases []namePhrase[T]
}

func NewRegistry[T any](kind Kind) *Registry[T] {
	return &Registry[T]{
		kind:   kind,
		values: make(map[string]T),
	}
}

func (r *Registry[T]) Kind() Kind {
	return r.kind
}

// Register adds value under name and its aliases. Blank names are ignored.
func (r *Registry[T]) Register(name string, value T, aliases ...string) {
	canonical := normaliseInput(name)
	if canonical == "" {
		return
	}
	r.values[canonical] = value
	r.phrases = append(r.phrases, namePhrase[T]{canonical: canonical, alias: canonical, value: value})
	for _, a := range aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, namePhrase[T]{canonical: canonical, alias: n, value: value})
	}
}

// Names lists the canonical names, sorted.
func (r *Registry[T]) Names() []string {
	out := make([]string, 0, len(r.values))
	for name := range r.values {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

type nameCandidate struct {
	canonical string
	alias     string
	score     float64
	source    string
}

func (r *Registry[T]) candidates(normalised string) []nameCandidate {
	cands := make([]nameCandidate, 0, 4)
	for _, phrase := range r.phrases {
		if normalised == phrase.alias {
			score := 1.0
			source := "exact"
			if phrase.alias != phrase.canonical {
				score = 0.97
				source = "alias"
			}
			cands = append(cands, nameCandidate{canonical: phrase.canonical, alias: phrase.alias, score: score, source: source})
			continue
		}

		if len(normalised) >= 3 && strings.HasPrefix(phrase.alias, normalised) {
			cands = append(cands, nameCandidate{canonical: phrase.canonical, alias: phrase.alias, score: 0.9, source: "prefix"})
			continue
		}

		// Fuzzy: only when there was no exact/prefix hit for this phrase.
		if len(normalised) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(normalised, phrase.alias)
		if dist > levenshteinLimit(len(phrase.alias)) {
			continue
		}
		score := 0.72 - (0.08 * float64(dist))
		if phrase.alias != phrase.canonical {
			score += 0.03
		}
		cands = append(cands, nameCandidate{canonical: phrase.canonical, alias: phrase.alias, score: score, source: "lev"})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score == cands[j].score {
			return cands[i].canonical < cands[j].canonical
		}
		return cands[i].score > cands[j].score
	})
	return cands
}

// Resolve maps raw to a registered value.
func (r *Registry[T]) Resolve(raw string) (T, Match, error) {
	var zero T
	normalised := normaliseInput(raw)
	match := Match{Raw: raw, Normalised: normalised}
	if normalised == "" {
		return zero, match, &UnknownNameError{Kind: r.kind, Name: raw}
	}

	cands := r.candidates(normalised)
	if len(cands) == 0 {
		return zero, match, &UnknownNameError{Kind: r.kind, Name: raw, Suggestions: r.suggest(normalised, 3)}
	}

	best := cands[0]
	for _, alt := range cands[1:] {
		if alt.canonical == best.canonical {
			continue
		}
		if best.score-alt.score < 0.05 && best.source != "exact" && best.source != "alias" {
			return zero, match, &UnknownNameError{
				Kind:        r.kind,
				Name:        raw,
				Ambiguous:   true,
				Suggestions: distinctCanonicals(cands, 4),
			}
		}
		break
	}

	match.Canonical = best.canonical
	match.Source = best.source
	match.Score = best.score
	return r.values[best.canonical], match, nil
}

// suggest returns the closest canonical names, even beyond the typo limit.
func (r *Registry[T]) suggest(normalised string, limit int) []string {
	type scored struct {
		name string
		dist int
	}
	all := make([]scored, 0, len(r.values))
	for name := range r.values {
		all = append(all, scored{name: name, dist: levenshtein.ComputeDistance(normalised, name)})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].dist == all[j].dist {
			return all[i].name < all[j].name
		}
		return all[i].dist < all[j].dist
	})
	out := make([]string, 0, limit)
	for _, s := range all {
		if len(out) >= limit {
			break
		}
		if s.dist > max(len(normalised), len(s.name))/2 {
			break
		}
		out = append(out, s.name)
	}
	return out
}

func distinctCanonicals(cands []nameCandidate, limit int) []string {
	seen := map[string]bool{}
	out := make([]string, 0, limit)
	for _, c := range cands {
		if seen[c.canonical] {
			continue
		}
		seen[c.canonical] = true
		out = append(out, c.canonical)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
