package policies

import (
	"sort"
	"strings"

	"platform-tools/internal/shared"
	"platform-tools/internal/types"
)

// UntaggedApp groups resources that carry no ownership tag.
const UntaggedApp = "untagged"

// DefaultAppTagKeys returns the tag keys checked for application
// ownership.
func DefaultAppTagKeys() []string {
	return []string{"Application", "App", "application", "app", "Project", "project"}
}

// AppTagPolicy attributes a resource to an application by its tags.
// The first tag in the resource's tag order whose key is one of the
// configured keys and whose value is non-empty decides the app name.
type AppTagPolicy struct {
	keys map[string]struct{}
}

func NewAppTagPolicy(keys []string) AppTagPolicy {
	if len(keys) == 0 {
		keys = DefaultAppTagKeys()
	}
	policy := AppTagPolicy{keys: map[string]struct{}{}}
	for _, key := range keys {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			continue
		}
		policy.keys[trimmed] = struct{}{}
	}
	return policy
}

func (p AppTagPolicy) AppName(tags []types.ResourceTag) string {
	for _, tag := range tags {
		if tag.Value == "" {
			continue
		}
		if _, ok := p.keys[tag.Key]; !ok {
			continue
		}
		return shared.NormalizeAppName(tag.Value)
	}
	return UntaggedApp
}

// TagsFromMap converts map-shaped tag sets into the list shape the
// policy evaluates, sorted by key so attribution is deterministic.
func TagsFromMap(tags map[string]string) []types.ResourceTag {
	if len(tags) == 0 {
		return nil
	}
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	converted := make([]types.ResourceTag, 0, len(keys))
	for _, key := range keys {
		converted = append(converted, types.ResourceTag{Key: key, Value: tags[key]})
	}
	return converted
}
