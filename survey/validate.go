package survey

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mbolis/survei-haji/model"
)

var optionLists = map[string][]string{
	"occupation": model.OccupationOptions,
	"age":        model.AgeOptions,
	"gender":     model.GenderOptions,
	"education":  model.EducationOptions,
}

var respondentMessages = map[string]string{
	"occupation": "Pekerjaan harus dipilih.",
	"ageBracket": "Usia harus dipilih.",
	"gender":     "Jenis kelamin harus dipilih.",
	"education":  "Pendidikan terakhir harus dipilih.",
}

const (
	msgRatingRequired  = "Penilaian wajib diisi"
	msgRatingRange     = "Penilaian harus antara 1 dan %d"
	msgDeclaration     = "Anda harus menyetujui pernyataan ini."
	msgImprovements    = "Anda harus memilih setidaknya satu opsi."
	msgSignature       = "Tanda tangan digital diperlukan."
	msgSignatureFormat = "Tanda tangan digital tidak dapat dibaca."
)

// Validator checks forms against the question configuration in effect.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// option=<list> checks a categorical value against its fixed option list
	v.RegisterValidation("option", func(fl validator.FieldLevel) bool {
		opts, ok := optionLists[fl.Param()]
		return ok && slices.Contains(opts, fl.Field().String())
	})
	return &Validator{v}
}

// Respondent validates the demographic step.
func (val *Validator) Respondent(r model.Respondent) ValidationErrors {
	err := val.v.Struct(r)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "respondent", Message: err.Error()}}
	}
	var out ValidationErrors
	for _, fe := range verrs {
		msg, ok := respondentMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		out = append(out, FieldError{Field: "respondent." + fe.Field(), Message: msg})
	}
	return out
}

// Section validates the answers of one rating section, question by
// question. An optional section may be skipped entirely, but once started
// every question must be answered.
func (val *Validator) Section(section model.Section, group model.AnswerGroup) ValidationErrors {
	if section.Optional && len(group) == 0 {
		return nil
	}
	rule := fmt.Sprintf("gte=1,lte=%d", section.MaxScale)

	var out ValidationErrors
	for _, q := range section.Questions {
		field := "answers." + section.Key + "." + q.Key
		v, ok := group[q.Key]
		if !ok || v == 0 {
			out = append(out, FieldError{Field: field, Message: msgRatingRequired})
			continue
		}
		if err := val.v.Var(v, rule); err != nil {
			out = append(out, FieldError{Field: field, Message: fmt.Sprintf(msgRatingRange, section.MaxScale)})
		}
	}
	return out
}

// Closing validates the final step: declaration, improvements and signature.
func (val *Validator) Closing(f Form) ValidationErrors {
	var out ValidationErrors
	if !f.SelfDeclaration {
		out = append(out, FieldError{Field: "selfDeclaration", Message: msgDeclaration})
	}
	if f.Improvements.Empty() {
		out = append(out, FieldError{Field: "improvements", Message: msgImprovements})
	}
	switch {
	case val.v.Var(f.Signature, "required") != nil:
		out = append(out, FieldError{Field: "signature", Message: msgSignature})
	default:
		if _, err := DecodeSignature(f.Signature); err != nil {
			out = append(out, FieldError{Field: "signature", Message: msgSignatureFormat})
		}
	}
	return out
}

// Step validates only the fields of one wizard step.
func (val *Validator) Step(cfg model.QuestionConfig, f Form, step Step) ValidationErrors {
	switch step.Kind {
	case StepRespondent:
		return val.Respondent(f.Respondent)
	case StepSection:
		s, ok := cfg.Section(step.Section)
		if !ok {
			return nil
		}
		return val.Section(s, f.Answers[s.Key])
	case StepClosing:
		return val.Closing(f)
	}
	return nil
}

// Form validates every step.
func (val *Validator) Form(cfg model.QuestionConfig, f Form) ValidationErrors {
	var out ValidationErrors
	for _, step := range Steps(cfg) {
		out = append(out, val.Step(cfg, f, step)...)
	}
	return out
}
