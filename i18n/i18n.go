// Package i18n resolves UI strings for the active language.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"github.com/darshan2121/PlantApp/types"
)

var ErrMissingKey = errors.New("i18n: missing key")

type Table map[string]string

// Params fill {{name}} placeholders.
type Params map[string]any

type Translator struct {
	tables map[types.Language]Table
}

// New returns a translator over the given tables. Without arguments the
// built-in English and Gujarati tables are used.
func New(tables ...map[types.Language]Table) *Translator {
	if len(tables) == 0 {
		return &Translator{tables: map[types.Language]Table{
			types.English:  english,
			types.Gujarati: gujarati,
		}}
	}
	return &Translator{tables: tables[0]}
}

// Lookup resolves key in lang without any fallback.
func (t *Translator) Lookup(lang types.Language, key string, params Params) (string, error) {
	text, ok := t.tables[lang][key]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrMissingKey, lang, key)
	}
	return interpolate(text, params), nil
}

// T resolves key in lang, then in English, and finally returns the key itself.
func (t *Translator) T(lang types.Language, key string, params Params) string {
	if text, err := t.Lookup(lang, key, params); err == nil {
		return text
	}
	if text, err := t.Lookup(types.English, key, params); err == nil {
		return text
	}
	return key
}

// TN picks key_one or key_other. Like the order count header, only
// counts above one are plural.
func (t *Translator) TN(lang types.Language, key string, count int, params Params) string {
	merged := Params{"count": count}
	for k, v := range params {
		merged[k] = v
	}
	suffix := "_one"
	if count > 1 {
		suffix = "_other"
	}
	return t.T(lang, key+suffix, merged)
}

// Status labels a backend or local order status.
func (t *Translator) Status(lang types.Language, status string) string {
	key := "status_" + slug(status)
	if text, err := t.Lookup(lang, key, nil); err == nil {
		return text
	}
	return status
}

func (t *Translator) Difficulty(lang types.Language, d types.Difficulty) string {
	if text, err := t.Lookup(lang, "difficulty_"+slug(string(d)), nil); err == nil {
		return text
	}
	return string(d)
}

// Category labels a category key, falling back to the key for unknown categories.
func (t *Translator) Category(lang types.Language, key string) string {
	if text, err := t.Lookup(lang, "category_"+key, nil); err == nil {
		return text
	}
	return key
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

func interpolate(text string, params Params) string {
	if len(params) == 0 || !strings.Contains(text, "{{") {
		return text
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{{"+k+"}}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
