package valfmt

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

type localeFile struct {
	Tag        string `yaml:"tag"`
	DateLayout string `yaml:"date_layout"`
}

// LoadLocale reads a single locale definition in YAML:
//
//	tag: en-CA
//	date_layout: "2006-01-02"
//
// date_layout is optional.
func LoadLocale(r io.Reader) (*Locale, error) {
	var lf localeFile
	if err := yaml.NewDecoder(r).Decode(&lf); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLocale, err)
	}
	if lf.Tag == "" {
		return nil, fmt.Errorf("%w: missing tag", ErrInvalidLocale)
	}
	l, err := ParseLocale(lf.Tag)
	if err != nil {
		return nil, err
	}
	if lf.DateLayout != "" {
		l = NewLocale(l.Tag(), lf.DateLayout)
	}
	return l, nil
}

// LoadLocales reads every *.yaml and *.yml file in fsys and returns the
// locales keyed by their tag.
func LoadLocales(fsys fs.FS) (map[string]*Locale, error) {
	out := make(map[string]*Locale)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := strings.ToLower(path.Ext(p)); ext != ".yaml" && ext != ".yml" {
			return nil
		}
		f, err := fsys.Open(p)
		if err != nil {
			return fmt.Errorf("opening %q: %w", p, err)
		}
		defer f.Close()
		l, err := LoadLocale(f)
		if err != nil {
			return fmt.Errorf("loading %q: %w", p, err)
		}
		out[l.String()] = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
