package model

import (
	"database/sql/driver"
	"encoding/json"

	"autoexport-srv/pkg/locale"

	"github.com/friendsofgo/errors"
)

// I18nText is a locale→string map stored as a JSONB column. Keys are the
// supported site language codes.
type I18nText map[string]string

// Resolve returns the text for the requested language, falling back to
// the default language and then to any available translation.
func (t I18nText) Resolve(lang string) string {
	if t == nil {
		return ""
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[locale.DefaultLang]; ok && v != "" {
		return v
	}
	for _, l := range locale.LangList {
		if v, ok := t[l]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Value implements driver.Valuer for JSONB columns.
func (t I18nText) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, "marshal i18n text")
	}
	return b, nil
}

// Scan implements sql.Scanner for JSONB columns.
func (t *I18nText) Scan(src any) error {
	if src == nil {
		*t = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported i18n text source type %T", src)
	}

	if err := json.Unmarshal(raw, t); err != nil {
		return errors.Wrap(err, "unmarshal i18n text")
	}
	return nil
}
