package models

import (
	"strconv"
	"time"
)

const DateLayout = "20060102"

type Kind int

const (
	KindBlank Kind = iota
	KindText
	KindInt
	KindDate
)

// Value is a single typed cell of a record.
type Value struct {
	kind Kind
	text string
	num  int
	date time.Time
}

func Text(s string) Value    { return Value{kind: KindText, text: s} }
func Int(n int) Value        { return Value{kind: KindInt, num: n} }
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }
func Blank() Value           { return Value{} }
func (v Value) Kind() Kind   { return v.kind }

// String formats the value the way it appears in the extract.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return strconv.Itoa(v.num)
	case KindDate:
		return v.date.Format(DateLayout)
	default:
		return ""
	}
}

type Field struct {
	Name  string
	Value Value
}

// Record is one contract row. Fields keep the order they were added in.
type Record struct {
	fields []Field
}

func NewRecord(fields ...Field) Record {
	return Record{fields: append([]Field(nil), fields...)}
}

func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

func (r Record) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

func (r Record) Len() int {
	return len(r.fields)
}
