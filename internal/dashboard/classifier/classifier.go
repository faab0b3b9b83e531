package classifier

import (
	"context"
	"errors"
	"sort"

	"golang-stock-sentiment/internal/entity"
)

var (
	// ErrNoSignal means the classifier found nothing in the text it could score.
	ErrNoSignal = errors.New("classifier found no sentiment signal")
	// ErrInference means the classifier failed while scoring.
	ErrInference = errors.New("classifier inference failed")
)

// Classifier scores text written in a single language.
type Classifier interface {
	Language() string
	Classify(ctx context.Context, text string) (entity.Score, error)
}

// Registry maps ISO 639-1 language codes to their local classifier.
// It is built once at startup and read-only afterwards.
type Registry struct {
	classifiers map[string]Classifier
}

// NewRegistry registers the given classifiers; a later one replaces an earlier one for the same language.
func NewRegistry(classifiers ...Classifier) *Registry {
	r := &Registry{classifiers: make(map[string]Classifier, len(classifiers))}
	for _, c := range classifiers {
		r.classifiers[c.Language()] = c
	}
	return r
}

// NewDefaultRegistry builds the lexicon classifiers for the enabled languages.
// Unknown codes are ignored.
func NewDefaultRegistry(enabled []string) *Registry {
	var classifiers []Classifier
	for _, lang := range enabled {
		switch lang {
		case LanguageEnglish:
			classifiers = append(classifiers, NewEnglishClassifier())
		case LanguageChinese:
			classifiers = append(classifiers, NewChineseClassifier())
		}
	}
	return NewRegistry(classifiers...)
}

// Lookup returns the classifier for lang, if any.
func (r *Registry) Lookup(lang string) (Classifier, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.classifiers[lang]
	return c, ok
}

// Languages lists the registered languages in sorted order.
func (r *Registry) Languages() []string {
	if r == nil {
		return nil
	}
	langs := make([]string, 0, len(r.classifiers))
	for lang := range r.classifiers {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
