// Package export flattens submissions into CSV documents.
package export

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mbolis/survei-haji/model"
	"github.com/mbolis/survei-haji/score"
)

const ContentType = "text/csv;charset=utf-8"

var ErrEmpty = errors.New("export: no rows to export")

// Layout selects the column headers and value rendering of an export.
type Layout int

const (
	// Admin labels question columns with the current question text and
	// improvement choices with their labels.
	Admin Layout = iota
	// Dashboard uses raw keys for headers and improvement choices.
	Dashboard
)

func (l Layout) Filename() string {
	if l == Dashboard {
		return "hasil-survey-kepuasan-haji.csv"
	}
	return "Laporan-Survey-Kepuasan-Haji-Admin.csv"
}

type column struct {
	header string
	value  func(s model.Submission) string
}

// Write renders rows in their given order. Columns: identity and
// demographics, one per question key, one index per section, improvement
// choices, one suggestion per section.
func Write(w io.Writer, rows []model.Submission, cfg model.QuestionConfig, layout Layout) error {
	if len(rows) == 0 {
		return ErrEmpty
	}

	cols := identityColumns(layout)
	cols = append(cols, questionColumns(rows, cfg, layout)...)
	cols = append(cols, indexColumns(cfg, layout)...)
	cols = append(cols, improvementColumn(cfg, layout))
	cols = append(cols, suggestionColumns(cfg, layout)...)

	cw := newQuotedWriter(w)
	record := make([]string, len(cols))
	for i, c := range cols {
		record[i] = c.header
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("export header: %w", err)
	}
	for _, s := range rows {
		for i, c := range cols {
			record[i] = c.value(s)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export row %s: %w", s.ID, err)
		}
	}
	return cw.Flush()
}

func identityColumns(layout Layout) []column {
	name := func(s model.Submission) string { return s.Respondent.Name }
	declaration := func(s model.Submission) string { return strconv.FormatBool(s.SelfDeclaration) }
	headers := []string{"id", "createdAt", "nama", "nomorHp", "pekerjaan", "usia", "jenisKelamin", "pendidikan", "tidakDiarahkan"}
	if layout == Admin {
		name = func(s model.Submission) string { return s.Respondent.DisplayName() }
		declaration = func(s model.Submission) string {
			if s.SelfDeclaration {
				return "Ya"
			}
			return "Tidak"
		}
		headers = []string{"ID", "Tanggal Input", "Nama", "No. HP", "Pekerjaan", "Usia", "Jenis Kelamin", "Pendidikan", "Pernyataan Mandiri"}
	}

	values := []func(s model.Submission) string{
		func(s model.Submission) string { return s.ID },
		func(s model.Submission) string { return formatTime(s.CreatedAt) },
		name,
		func(s model.Submission) string { return s.Respondent.Phone },
		func(s model.Submission) string { return s.Respondent.Occupation },
		func(s model.Submission) string { return s.Respondent.AgeBracket },
		func(s model.Submission) string { return s.Respondent.Gender },
		func(s model.Submission) string { return s.Respondent.Education },
		declaration,
	}

	cols := make([]column, len(headers))
	for i := range headers {
		cols[i] = column{headers[i], values[i]}
	}
	return cols
}

// questionColumns lists the configured questions, then keys only found in
// the data, sorted, so no stored answer is dropped.
func questionColumns(rows []model.Submission, cfg model.QuestionConfig, layout Layout) []column {
	var cols []column
	for _, section := range cfg.Sections {
		keys := make([]string, 0, len(section.Questions))
		for _, q := range section.Questions {
			keys = append(keys, q.Key)
		}
		keys = append(keys, extraKeys(rows, section)...)

		for _, key := range keys {
			sectionKey, key := section.Key, key
			header := sectionKey + "_" + key
			if layout == Admin {
				header = section.Title + " - " + section.Label(key)
			}
			cols = append(cols, column{header, func(s model.Submission) string {
				v, ok := s.Answers[sectionKey][key]
				if !ok {
					return ""
				}
				return strconv.Itoa(v)
			}})
		}
	}
	return cols
}

func extraKeys(rows []model.Submission, section model.Section) []string {
	seen := map[string]bool{}
	for _, q := range section.Questions {
		seen[q.Key] = true
	}
	var extra []string
	for _, s := range rows {
		for k := range s.Answers[section.Key] {
			if !seen[k] {
				seen[k] = true
				extra = append(extra, k)
			}
		}
	}
	sort.Strings(extra)
	return extra
}

func indexColumns(cfg model.QuestionConfig, layout Layout) []column {
	cols := make([]column, 0, len(cfg.Sections))
	for _, section := range cfg.Sections {
		section := section
		header := section.Code
		if layout == Dashboard {
			header = strings.ToLower(section.Code)
		}
		cols = append(cols, column{header, func(s model.Submission) string {
			idx, ok := score.SubmissionIndex(s, section)
			if !ok {
				return ""
			}
			return strconv.FormatFloat(score.Round2(idx), 'f', 2, 64)
		}})
	}
	return cols
}

func improvementColumn(cfg model.QuestionConfig, layout Layout) column {
	if layout == Dashboard {
		return column{"perbaikan", func(s model.Submission) string {
			return strings.Join(s.Improvements.Keys(), "; ")
		}}
	}
	return column{"Area Perbaikan", func(s model.Submission) string {
		return strings.Join(s.Improvements.Labels(cfg), "; ")
	}}
}

func suggestionColumns(cfg model.QuestionConfig, layout Layout) []column {
	cols := make([]column, 0, len(cfg.Sections))
	for _, section := range cfg.Sections {
		key := section.Key
		header := "saran_" + key
		if layout == Admin {
			header = section.SuggestionLabel
			if header == "" {
				header = "Saran " + section.Title
			}
		}
		cols = append(cols, column{header, func(s model.Submission) string {
			return s.Suggestions[key]
		}})
	}
	return cols
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
