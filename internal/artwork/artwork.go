// Package artwork turns opaque image references into something a terminal can show.
// Nothing is fetched or decoded; a reference becomes a labelled tile or a placeholder.
package artwork

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

const (
	ModeLabel       = "label"
	ModePlaceholder = "placeholder"
)

var ErrNoReference = errors.New("empty image reference")

// Art is the resolved form of an image reference.
type Art struct {
	Ref         string
	Source      string // host the image would come from
	Name        string // file name without extension
	Placeholder bool
}

// Resolver maps an image reference to Art. Errors are expected; callers fall back to Placeholder.
type Resolver interface {
	Resolve(ref string) (Art, error)
}

// Placeholder is the tile shown when a reference cannot be resolved.
func Placeholder(ref string) Art {
	return Art{Ref: ref, Placeholder: true}
}

// ResolveOrPlaceholder never fails: a nil resolver or an error yields a placeholder.
func ResolveOrPlaceholder(r Resolver, ref string) Art {
	if r == nil {
		return Placeholder(ref)
	}
	art, err := r.Resolve(ref)
	if err != nil {
		return Placeholder(ref)
	}
	return art
}

// LabelResolver describes http(s) references by host and file name.
type LabelResolver struct{}

func (LabelResolver) Resolve(ref string) (Art, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Art{}, ErrNoReference
	}
	u, err := url.Parse(ref)
	if err != nil {
		return Art{}, fmt.Errorf("parse image reference: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Art{}, fmt.Errorf("unsupported image reference %q", ref)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" {
		name = ""
	}
	name = strings.TrimSuffix(name, path.Ext(name))

	return Art{
		Ref:    ref,
		Source: strings.TrimPrefix(u.Hostname(), "www."),
		Name:   name,
	}, nil
}

// PlaceholderResolver resolves everything to the placeholder tile.
type PlaceholderResolver struct{}

func (PlaceholderResolver) Resolve(ref string) (Art, error) {
	return Placeholder(ref), nil
}

// ForMode returns the resolver configured by mode.
func ForMode(mode string) (Resolver, error) {
	switch mode {
	case "", ModeLabel:
		return LabelResolver{}, nil
	case ModePlaceholder:
		return PlaceholderResolver{}, nil
	}
	return nil, fmt.Errorf("unknown art mode %q", mode)
}
