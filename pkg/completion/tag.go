package completion

import "regexp"

var tagPattern = regexp.MustCompile(`#[\w/-]*$`)

// TagProvider lists every known hierarchical tag when the cursor sits
// in a #-prefixed token. Filtering and ranking against the partial
// token are left to the client, so the option list is the full tag set.
type TagProvider struct {
	index TagIndex
}

func NewTagProvider(index TagIndex) *TagProvider {
	return &TagProvider{index: index}
}

func (p *TagProvider) Name() string { return "tag" }

// Complete implements Provider. The anchor excludes the # itself: a
// selection replaces only the partial path after it.
func (p *TagProvider) Complete(c Context) *Result {
	prefix := c.Prefix()
	loc := tagPattern.FindStringIndex(prefix)
	if loc == nil {
		return nil
	}

	tags, err := p.index.Tags()
	if err != nil || len(tags) == 0 {
		return nil
	}

	options := make([]Option, 0, len(tags))
	for _, tag := range tags {
		options = append(options, Option{Label: tag})
	}

	return &Result{
		Anchor:  loc[0] + 1,
		Options: options,
	}
}
