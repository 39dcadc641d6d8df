// Package locale normaliza las preferencias de idioma de los usuarios contra los
// idiomas que ofrece el front end.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported idiomas con diccionario disponible en el front end.
var Supported = []language.Tag{language.English, language.Spanish}

// Resolver elige el idioma soportado más cercano al solicitado.
type Resolver struct {
	matcher  language.Matcher
	fallback string
}

// NewResolver construye el resolver; fallback se normaliza y, si no es soportado, se usa "en".
func NewResolver(fallback string) *Resolver {
	r := &Resolver{matcher: language.NewMatcher(Supported), fallback: "en"}
	if tag, ok := r.match(fallback); ok {
		r.fallback = tag
	}
	return r
}

// Resolve devuelve el código base soportado ("en", "es") para raw, o el fallback.
func (r *Resolver) Resolve(raw string) string {
	if tag, ok := r.match(raw); ok {
		return tag
	}
	return r.fallback
}

// Fallback idioma usado cuando no hay coincidencia.
func (r *Resolver) Fallback() string { return r.fallback }

func (r *Resolver) match(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	base, _ := Supported[idx].Base()
	return base.String(), true
}
