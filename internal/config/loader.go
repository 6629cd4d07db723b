package config

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"jordanella.com/campaign-options/internal/options"
)

const fileComment = "Campaign options. One section per editor tab; missing keys keep their defaults."

// EncodeOptions renders the stored fields of r as an INI document with one
// section per tab
func EncodeOptions(s *options.Schema, r options.Records) (*ini.File, error) {
	cfg := ini.Empty()
	cfg.Section(ini.DefaultSection).Comment = fileComment

	for _, e := range s.Export(r) {
		section := cfg.Section(e.Tab.ID)
		if section.Comment == "" {
			section.Comment = e.Tab.Title
		}
		if _, err := section.NewKey(e.ID, e.Text); err != nil {
			return nil, fmt.Errorf("failed to write key %s.%s: %w", e.Tab.ID, e.ID, err)
		}
	}
	return cfg, nil
}

// DecodeOptions overlays the values of an INI document onto r. Keys are
// looked up in their tab's section first, then in the unnamed section so
// flat files also load. Unknown keys are ignored.
func DecodeOptions(s *options.Schema, source interface{}, r options.Records) error {
	// Lists carry their own quoting, so quotes are kept for them and only
	// stripped from scalar values.
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
	}, source)
	if err != nil {
		return fmt.Errorf("failed to load options file: %w", err)
	}

	flat := cfg.Section(ini.DefaultSection)
	return s.Import(r, func(tab options.Tab, id string) (string, bool) {
		key, ok := lookupKey(cfg, flat, tab.ID, id)
		if !ok {
			return "", false
		}
		text := key.Value()
		if f, found := s.Field(id); found && f.Kind != options.KindList {
			text = unquote(text)
		}
		return text, true
	})
}

func lookupKey(cfg *ini.File, flat *ini.Section, section, id string) (*ini.Key, bool) {
	if sec, err := cfg.GetSection(section); err == nil && sec.HasKey(id) {
		return sec.Key(id), true
	}
	if flat.HasKey(id) {
		return flat.Key(id), true
	}
	return nil, false
}

// unquote drops one pair of surrounding quotes when the value holds no
// other quote of the same kind
func unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	q := text[0]
	if (q != '"' && q != '\'') || text[len(text)-1] != q {
		return text
	}
	inner := text[1 : len(text)-1]
	if strings.IndexByte(inner, q) >= 0 {
		return text
	}
	return inner
}

// LoadOptionsINI reads an options file over fresh defaults. Nothing is
// returned unless every present value is valid.
func LoadOptionsINI(s *options.Schema, path string) (options.Records, error) {
	recs := options.DefaultRecords()
	if err := DecodeOptions(s, path, recs); err != nil {
		return options.Records{}, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// SaveOptionsINI writes r to path
func SaveOptionsINI(s *options.Schema, r options.Records, path string) error {
	cfg, err := EncodeOptions(s, r)
	if err != nil {
		return err
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save options file %s: %w", path, err)
	}
	return nil
}

// OptionsText renders r as INI text for storage
func OptionsText(s *options.Schema, r options.Records) (string, error) {
	cfg, err := EncodeOptions(s, r)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("failed to render options: %w", err)
	}
	return buf.String(), nil
}
