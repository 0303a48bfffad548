package model

// Merge combines the built-in defaults with a (possibly partial) stored
// document. The stored value wins per leaf: question text, option label and
// section attributes. Leaves missing from the stored document keep their
// default. Sections are merged key by key and never replaced wholesale.
//
// Order: default keys first in default order, then keys only present in the
// stored document, in stored order.
func Merge(defaults, stored QuestionConfig) QuestionConfig {
	out := QuestionConfig{}

	seen := make(map[string]bool, len(stored.Sections))
	for _, def := range defaults.Sections {
		s := def
		if st, ok := stored.Section(def.Key); ok {
			s = mergeSection(def, st)
		} else {
			s.Questions = append([]Question(nil), def.Questions...)
		}
		seen[def.Key] = true
		out.Sections = append(out.Sections, s)
	}
	for _, st := range stored.Sections {
		if seen[st.Key] || st.Key == "" {
			continue
		}
		seen[st.Key] = true
		if st.MaxScale <= 0 {
			st.MaxScale = DefaultMaxScale
		}
		st.Questions = append([]Question(nil), st.Questions...)
		out.Sections = append(out.Sections, st)
	}

	out.Improvements = mergeOptions(defaults.Improvements, stored.Improvements)
	return out
}

func mergeSection(def, st Section) Section {
	s := def
	if st.Title != "" {
		s.Title = st.Title
	}
	if st.Code != "" {
		s.Code = st.Code
	}
	if st.MaxScale > 0 {
		s.MaxScale = st.MaxScale
	}
	if st.SuggestionLabel != "" {
		s.SuggestionLabel = st.SuggestionLabel
	}
	s.Optional = def.Optional || st.Optional

	s.Questions = nil
	seen := make(map[string]bool, len(def.Questions))
	for _, q := range def.Questions {
		if sq, ok := st.Question(q.Key); ok && sq.Text != "" {
			q.Text = sq.Text
		}
		seen[q.Key] = true
		s.Questions = append(s.Questions, q)
	}
	for _, q := range st.Questions {
		if seen[q.Key] || q.Key == "" {
			continue
		}
		seen[q.Key] = true
		s.Questions = append(s.Questions, q)
	}
	return s
}

func mergeOptions(defaults, stored []Option) []Option {
	labels := make(map[string]string, len(stored))
	for _, o := range stored {
		labels[o.Key] = o.Label
	}

	out := make([]Option, 0, len(defaults)+len(stored))
	seen := make(map[string]bool, len(defaults))
	for _, o := range defaults {
		if l, ok := labels[o.Key]; ok && l != "" {
			o.Label = l
		}
		seen[o.Key] = true
		out = append(out, o)
	}
	for _, o := range stored {
		if seen[o.Key] || o.Key == "" {
			continue
		}
		seen[o.Key] = true
		out = append(out, o)
	}
	return out
}
