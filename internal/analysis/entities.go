package analysis

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Category is one of the eight fixed entity buckets.
type Category string

const (
	CategoryPerson       Category = "PERSON"
	CategoryOrganization Category = "ORGANIZATION"
	CategoryDate         Category = "DATE"
	CategoryLocation     Category = "LOCATION"
	CategoryLaw          Category = "LAW"
	CategoryMoney        Category = "MONEY"
	CategoryNumber       Category = "NUMBER"
	CategoryOther        Category = "OTHER"
)

// ErrTaggerUnavailable signals that the entity tagger is not configured
// or not reachable. The tagger is a soft dependency: callers degrade the
// entities field instead of failing the whole analysis.
var ErrTaggerUnavailable = errors.New("entity tagger unavailable")

// TaggedSpan is one labeled span from the external tagger, in its
// original taxonomy.
type TaggedSpan struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityTagger is the external named-entity collaborator.
type EntityTagger interface {
	Tag(ctx context.Context, text string) ([]TaggedSpan, error)
	Available() bool
}

// taggerLabelMap buckets the tagger's taxonomy into the fixed
// categories. Unknown labels land in OTHER, annotated with the original
// label.
var taggerLabelMap = map[string]Category{
	"PERSON":   CategoryPerson,
	"ORG":      CategoryOrganization,
	"DATE":     CategoryDate,
	"GPE":      CategoryLocation,
	"LOC":      CategoryLocation,
	"LAW":      CategoryLaw,
	"MONEY":    CategoryMoney,
	"CARDINAL": CategoryNumber,
}

// ExtractEntities buckets the tagger's spans into the eight fixed
// categories, collapsing duplicate surface forms. Returns
// ErrTaggerUnavailable when the tagger is absent or unreachable.
func (a *Analyzer) ExtractEntities(ctx context.Context, text string) (map[Category][]string, error) {
	if a.tagger == nil || !a.tagger.Available() {
		return nil, ErrTaggerUnavailable
	}

	spans, err := a.tagger.Tag(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTaggerUnavailable, err)
	}

	seen := make(map[Category]map[string]struct{})
	for _, span := range spans {
		category, ok := taggerLabelMap[span.Label]
		value := span.Text
		if !ok {
			category = CategoryOther
			value = fmt.Sprintf("%s (%s)", span.Text, span.Label)
		}
		if seen[category] == nil {
			seen[category] = make(map[string]struct{})
		}
		seen[category][value] = struct{}{}
	}

	entities := make(map[Category][]string, len(seen))
	for category, values := range seen {
		list := make([]string, 0, len(values))
		for v := range values {
			list = append(list, v)
		}
		sort.Strings(list)
		entities[category] = list
	}
	return entities, nil
}
