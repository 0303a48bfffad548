package browse

import (
	"sort"
	"strings"

	"github.com/mbolis/survei-haji/model"
	"github.com/mbolis/survei-haji/score"
)

// Entry is a submission with its indices computed against the configuration
// in effect, keyed by section key.
type Entry struct {
	model.Submission
	Indices map[string]float64 `json:"indices"`
}

type Page struct {
	Items    []Entry `json:"items"`
	Total    int     `json:"total"`
	Filtered int     `json:"filtered"`
	Page     int     `json:"page"`
	Pages    int     `json:"pages"`
	PageSize int     `json:"pageSize"`
}

// Browser owns the fetched submissions. Entries keep the store order,
// newest first, which is the tie-break of every sort.
type Browser struct {
	cfg     model.QuestionConfig
	entries []Entry
}

func New(subs []model.Submission, cfg model.QuestionConfig) *Browser {
	b := &Browser{cfg: cfg, entries: make([]Entry, len(subs))}
	for i, s := range subs {
		b.entries[i] = Entry{Submission: s, Indices: score.Indices(s, cfg)}
	}
	return b
}

// Remove drops one submission from the working set. It is called after the
// store delete succeeded.
func (b *Browser) Remove(id string) bool {
	for i, e := range b.entries {
		if e.ID == id {
			b.entries = append(b.entries[:i:i], b.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Rows returns the whole filtered and sorted working set.
func (b *Browser) Rows(v View) []Entry {
	rows := b.filter(v.Search)
	b.sort(rows, v)
	return rows
}

// Page returns one page of the working set. Pages are 1-indexed; a page past
// the end is empty.
func (b *Browser) Page(v View) Page {
	rows := b.Rows(v)

	size := v.PageSize
	if size < 1 {
		size = 1
	}
	page := v.Page
	if page < 1 {
		page = 1
	}

	pages := len(rows) / size
	if len(rows)%size != 0 {
		pages++
	}

	p := Page{
		Total:    len(b.entries),
		Filtered: len(rows),
		Page:     page,
		Pages:    pages,
		PageSize: size,
		Items:    []Entry{},
	}
	// page <= pages keeps the offset within len(rows)
	if page <= pages {
		start := (page - 1) * size
		end := len(rows)
		if end-start > size {
			end = start + size
		}
		p.Items = rows[start:end]
	}
	return p
}

// filter matches the display name case-insensitively, or the phone number
// as typed.
func (b *Browser) filter(search string) []Entry {
	out := make([]Entry, 0, len(b.entries))
	needle := strings.ToLower(search)
	for _, e := range b.entries {
		name := strings.ToLower(e.Respondent.DisplayName())
		if strings.Contains(name, needle) || strings.Contains(e.Respondent.Phone, search) {
			out = append(out, e)
		}
	}
	return out
}

func (b *Browser) sort(rows []Entry, v View) {
	switch v.Sort {
	case SortName:
		sort.SliceStable(rows, func(i, j int) bool {
			a, c := rows[i].Respondent.Name, rows[j].Respondent.Name
			// unnamed entries go last whatever the direction
			switch {
			case a == "" || c == "":
				return a != "" && c == ""
			case v.Desc:
				return strings.ToLower(a) > strings.ToLower(c)
			default:
				return strings.ToLower(a) < strings.ToLower(c)
			}
		})
		return
	case SortCreatedAt, "":
		sort.SliceStable(rows, func(i, j int) bool {
			if v.Desc {
				return rows[i].CreatedAt.After(rows[j].CreatedAt)
			}
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		})
		return
	}

	section, ok := b.cfg.SectionByCode(v.Sort)
	if !ok {
		section, ok = b.cfg.Section(v.Sort)
	}
	if !ok {
		return
	}
	// a missing section sorts as 0
	sort.SliceStable(rows, func(i, j int) bool {
		a, c := rows[i].Indices[section.Key], rows[j].Indices[section.Key]
		if v.Desc {
			return a > c
		}
		return a < c
	})
}
