package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Param is a request body field bound to a statement as sent. Any JSON value
// decodes into it; PostgreSQL casts the value to the column type or rejects
// the statement. An absent or null field binds NULL.
type Param struct {
	value driver.Value
}

// NewParam wraps a string, int64, bool or nil.
func NewParam(v driver.Value) Param {
	return Param{value: v}
}

func (p *Param) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("param: empty value")
	}

	switch data[0] {
	case 'n':
		p.value = nil
	case 't', 'f':
		p.value = data[0] == 't'
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.value = s
	case '{', '[':
		p.value = string(data)
	default:
		// non-integer numbers keep their literal text
		if i, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			p.value = i
		} else {
			p.value = string(data)
		}
	}
	return nil
}

// Value implements driver.Valuer.
func (p Param) Value() (driver.Value, error) {
	return p.value, nil
}

// IsNull reports whether the field binds NULL.
func (p Param) IsNull() bool {
	return p.value == nil
}

// Text returns the value in the text form PostgreSQL receives it, or nil for
// NULL.
func (p Param) Text() *string {
	if p.value == nil {
		return nil
	}
	var s string
	switch v := p.value.(type) {
	case string:
		s = v
	case int64:
		s = strconv.FormatInt(v, 10)
	case bool:
		s = strconv.FormatBool(v)
	default:
		s = fmt.Sprint(v)
	}
	return &s
}
