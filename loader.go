package listfmt

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir returns a RegistryOption that loads pattern data from JSON
// files in an fs.FS. The fs.FS root must contain locale directories
// directly. File convention: {locale}/{type}.json, where type is
// "conjunction", "disjunction", or "unit".
//
// Example structure:
//
//	en/conjunction.json
//	en/disjunction.json
//	de/conjunction.json
//
// Each file maps styles to pattern roles in {0}/{1} source form:
//
//	{
//	  "long": {
//	    "pair":   "{0} and {1}",
//	    "start":  "{0}, {1}",
//	    "middle": "{0}, {1}",
//	    "end":    "{0}, and {1}"
//	  },
//	  "short": {"pair": "{0} & {1}", "end": "{0}, & {1}"}
//	}
//
// The "long" style must define all four roles. "short" and "narrow" inherit
// any role they do not override from "long" and "short" respectively. A role
// may also be an object with "default", "if", and "then" keys attaching a
// special case (see Pattern.WithSpecialCase):
//
//	{"long": {"end": {"default": "{0} y {1}", "if": "(?i)^(i.*|hi|hi[^ae].*)$", "then": "{0} e {1}"}}}
func WithJSONDir(fsys fs.FS) RegistryOption {
	return func(r *Registry) error {
		return loadDir(r, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns a RegistryOption that loads pattern data from YAML
// files in an fs.FS. File convention: {locale}/{type}.yaml or
// {locale}/{type}.yml, with the same document structure as WithJSONDir.
func WithYAMLDir(fsys fs.FS) RegistryOption {
	return func(r *Registry) error {
		return loadDir(r, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadDir(r *Registry, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))

		// Case-insensitive comparison handles both .YAML and .yaml extensions across different systems
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		// Extract locale from directory name and list type from filename
		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a locale directory", ErrInvalidFile, filePath)
		}

		locale := path.Base(dir)
		t := Type(strings.TrimSuffix(path.Base(filePath), path.Ext(filePath)))
		if !t.valid() {
			return fmt.Errorf("%w: %q does not name a list type", ErrInvalidFile, filePath)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var doc map[string]styleDoc
		if err := unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		sets, err := buildStyleSets(doc)
		if err != nil {
			return fmt.Errorf("%w: %q: %s", ErrInvalidFile, filePath, err)
		}

		norm := normalizeLocale(locale)
		for style, set := range sets {
			r.sets[buildKey(norm, t, style)] = set
		}

		return nil
	})
}

// styleDoc is the set of roles one style defines in a pattern file. Nil
// entries inherit from the next wider style.
type styleDoc struct {
	Pair   *patternValue `json:"pair"   yaml:"pair"`
	Start  *patternValue `json:"start"  yaml:"start"`
	Middle *patternValue `json:"middle" yaml:"middle"`
	End    *patternValue `json:"end"    yaml:"end"`
}

// patternValue is one role entry in a pattern file: either a plain source
// string or an object attaching a special case.
type patternValue struct {
	Default string `json:"default" yaml:"default"`
	If      string `json:"if"      yaml:"if"`
	Then    string `json:"then"    yaml:"then"`
}

func (v *patternValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &v.Default)
	}
	type plain patternValue
	return json.Unmarshal(data, (*plain)(v))
}

func (v *patternValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&v.Default)
	}
	type plain patternValue
	return node.Decode((*plain)(v))
}

func (v *patternValue) pattern() (Pattern, error) {
	p, err := ParsePattern(v.Default)
	if err != nil {
		return Pattern{}, err
	}
	if v.If == "" && v.Then == "" {
		return p, nil
	}
	if v.If == "" || v.Then == "" {
		return Pattern{}, fmt.Errorf(`%w: special case needs both "if" and "then"`, ErrMalformedPattern)
	}
	alt, err := ParsePattern(v.Then)
	if err != nil {
		return Pattern{}, err
	}
	return p.WithSpecialCase(v.If, alt)
}

// buildStyleSets materializes all three styles from one document, applying
// the narrow-to-short-to-long inheritance.
func buildStyleSets(doc map[string]styleDoc) (map[Style]PatternSet, error) {
	for key := range doc {
		if !Style(key).valid() {
			return nil, fmt.Errorf("unknown style %q", key)
		}
	}

	long, ok := doc[string(Long)]
	if !ok {
		return nil, fmt.Errorf("missing style %q", Long)
	}

	longSet, err := long.patternSet(PatternSet{})
	if err != nil {
		return nil, fmt.Errorf("style %q: %w", Long, err)
	}
	shortSet, err := doc[string(Short)].patternSet(longSet)
	if err != nil {
		return nil, fmt.Errorf("style %q: %w", Short, err)
	}
	narrowSet, err := doc[string(Narrow)].patternSet(shortSet)
	if err != nil {
		return nil, fmt.Errorf("style %q: %w", Narrow, err)
	}

	return map[Style]PatternSet{
		Long:   longSet,
		Short:  shortSet,
		Narrow: narrowSet,
	}, nil
}

// patternSet builds one style's pattern set, inheriting missing roles from
// base. A role absent from both is an error.
func (d styleDoc) patternSet(base PatternSet) (PatternSet, error) {
	var set PatternSet
	roles := []struct {
		name string
		v    *patternValue
		dst  *Pattern
		base Pattern
	}{
		{"pair", d.Pair, &set.Pair, base.Pair},
		{"start", d.Start, &set.Start, base.Start},
		{"middle", d.Middle, &set.Middle, base.Middle},
		{"end", d.End, &set.End, base.End},
	}

	for _, role := range roles {
		if role.v == nil {
			if !role.base.IsValid() {
				return PatternSet{}, fmt.Errorf("missing role %q", role.name)
			}
			*role.dst = role.base
			continue
		}
		p, err := role.v.pattern()
		if err != nil {
			return PatternSet{}, fmt.Errorf("role %q: %w", role.name, err)
		}
		*role.dst = p
	}

	return set, nil
}
