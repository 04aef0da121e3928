package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Tri-state JSON fields for partial updates: a key can be absent (Set=false,
// leave the column alone), explicitly null/empty (Set=true, Value=nil, clear
// the column) or carry a value. Numbers and dates also coerce from strings,
// since form submissions arrive string-typed.

type OptString struct {
	Set   bool
	Value *string
}

func (o *OptString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptString) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

type OptFloat struct {
	Set   bool
	Value *float64
}

func (o *OptFloat) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	o.Value = &v
	return nil
}

func (o OptFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

type OptInt struct {
	Set   bool
	Value *int
}

func (o *OptInt) UnmarshalJSON(b []byte) error {
	var f OptFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	o.Set = f.Set
	if f.Value != nil {
		v := int(*f.Value)
		o.Value = &v
	}
	return nil
}

func (o OptInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// Constructors for building payloads in code (renewal conversion, inbound
// email) rather than from JSON.

func NewOptString(s string) OptString { return OptString{Set: true, Value: &s} }
func NewOptFloat(f float64) OptFloat  { return OptFloat{Set: true, Value: &f} }
func NewOptInt(i int) OptInt          { return OptInt{Set: true, Value: &i} }
func NewOptDate(t time.Time) OptDate  { return OptDate{Set: true, Value: &t} }

// dateFormats are tried in order when coercing a date field.
var dateFormats = []string{"2006-01-02", time.RFC3339}

type OptDate struct {
	Set   bool
	Value *time.Time
}

func (o *OptDate) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			o.Value = &t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

func (o OptDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// FlexFloat decodes a JSON number or a numeric string. Model replies and
// form entries quote numbers often enough that both spellings are accepted;
// currency noise ("$", thousands separators) is stripped.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(s))
		if s == "" {
			*f = 0
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}
