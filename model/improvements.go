package model

import (
	"encoding/json"
	"sort"
)

// Improvements is the respondent's choice of areas to improve. It is either
// NoImprovement or a set of option keys, never both.
type Improvements struct {
	none bool
	keys []string
}

func NoImprovement() Improvements {
	return Improvements{none: true}
}

func ImproveAreas(keys ...string) Improvements {
	var i Improvements
	for _, k := range keys {
		i = i.Select(k)
	}
	return i
}

// Select adds an option. Selecting NoImprovementKey clears every other key,
// selecting any other key clears NoImprovementKey.
func (i Improvements) Select(key string) Improvements {
	if key == "" {
		return i
	}
	if key == NoImprovementKey {
		return NoImprovement()
	}
	if i.Has(key) {
		return i
	}
	keys := make([]string, len(i.keys), len(i.keys)+1)
	copy(keys, i.keys)
	return Improvements{keys: append(keys, key)}
}

// Deselect removes an option.
func (i Improvements) Deselect(key string) Improvements {
	if key == NoImprovementKey {
		if i.none {
			return Improvements{}
		}
		return i
	}
	keys := make([]string, 0, len(i.keys))
	for _, k := range i.keys {
		if k != key {
			keys = append(keys, k)
		}
	}
	return Improvements{keys: keys}
}

// Toggle selects an unselected option or deselects a selected one.
func (i Improvements) Toggle(key string) Improvements {
	if i.Has(key) {
		return i.Deselect(key)
	}
	return i.Select(key)
}

func (i Improvements) Has(key string) bool {
	if key == NoImprovementKey {
		return i.none
	}
	for _, k := range i.keys {
		if k == key {
			return true
		}
	}
	return false
}

func (i Improvements) Empty() bool { return !i.none && len(i.keys) == 0 }

// Keys returns the selected keys in selection order.
func (i Improvements) Keys() []string {
	if i.none {
		return []string{NoImprovementKey}
	}
	return append([]string(nil), i.keys...)
}

// Labels maps the selected keys to their configured labels.
func (i Improvements) Labels(cfg QuestionConfig) []string {
	keys := i.Keys()
	labels := make([]string, len(keys))
	for n, k := range keys {
		labels[n] = cfg.ImprovementLabel(k)
	}
	return labels
}

// Sorted returns the keys in the configured option order, unknown keys last.
func (i Improvements) Sorted(cfg QuestionConfig) []string {
	keys := i.Keys()
	pos := make(map[string]int, len(cfg.Improvements))
	for n, o := range cfg.OrderedImprovements() {
		pos[o.Key] = n
	}
	sort.SliceStable(keys, func(a, b int) bool {
		pa, oka := pos[keys[a]]
		pb, okb := pos[keys[b]]
		switch {
		case oka && okb:
			return pa < pb
		default:
			return oka && !okb
		}
	})
	return keys
}

func (i Improvements) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Keys())
}

// UnmarshalJSON folds the key list through Select, so a list mixing
// NoImprovementKey with other keys resolves to whichever came last.
func (i *Improvements) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*i = ImproveAreas(keys...)
	return nil
}
