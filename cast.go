package typenv

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Azhovan/typenv/internal/normalize"
)

// Tag identifies a cast type. The set of tags is closed.
type Tag string

// Cast-type tags.
const (
	TagStr     Tag = "str"
	TagBytes   Tag = "bytes"
	TagInt     Tag = "int"
	TagBool    Tag = "bool"
	TagFloat   Tag = "float"
	TagDecimal Tag = "decimal"
	TagJSON    Tag = "json"
	TagList    Tag = "list"
)

// Tags returns every cast-type tag in a stable order.
func Tags() []Tag {
	return []Tag{TagStr, TagBytes, TagInt, TagBool, TagFloat, TagDecimal, TagJSON, TagList}
}

// Valid reports whether t is one of the known tags.
func (t Tag) Valid() bool {
	switch t {
	case TagStr, TagBytes, TagInt, TagBool, TagFloat, TagDecimal, TagJSON, TagList:
		return true
	default:
		return false
	}
}

// Cast is the untyped entry point to the kinds below: it converts raw with the
// caster of the predefined Kind for t and returns the result as any. List values
// are cast with string elements.
func (t Tag) Cast(raw string) (any, error) {
	caster, ok := casters[t]
	if !ok {
		return nil, fmt.Errorf("unknown cast type %q", string(t))
	}
	return caster(raw)
}

// Encoding selects how a byte sequence is represented in its raw string.
type Encoding string

// EncodingHex is the only supported byte encoding.
const EncodingHex Encoding = "hex"

// Kind pairs a cast-type tag with its typed caster.
// The set of kinds is fixed by this package.
type Kind[T any] struct {
	tag  Tag
	cast func(raw string) (T, error)
}

// Tag returns the cast-type tag of k.
func (k Kind[T]) Tag() Tag { return k.tag }

// Predefined kinds.
var (
	KindStr     = Kind[string]{tag: TagStr, cast: castStr}
	KindInt     = Kind[int]{tag: TagInt, cast: castInt}
	KindBool    = Kind[bool]{tag: TagBool, cast: castBool}
	KindFloat   = Kind[float64]{tag: TagFloat, cast: castFloat}
	KindDecimal = Kind[decimal.Decimal]{tag: TagDecimal, cast: castDecimal}
	KindHex     = Kind[[]byte]{tag: TagBytes, cast: castHex}
	KindJSON    = Kind[any]{tag: TagJSON, cast: castJSON}
)

// Element constrains the element types a list can be sub-cast to.
type Element interface {
	string | int | bool | float64 | decimal.Decimal
}

// ListOf returns the list kind whose elements are cast with sub.
func ListOf[E Element](sub Kind[E]) Kind[[]E] {
	return Kind[[]E]{
		tag: TagList,
		cast: func(raw string) ([]E, error) {
			return castList(raw, sub.cast)
		},
	}
}

// casters is derived from the predefined kinds so both views share one caster per tag.
var casters = map[Tag]func(string) (any, error){
	TagStr:     untyped(KindStr),
	TagBytes:   untyped(KindHex),
	TagInt:     untyped(KindInt),
	TagBool:    untyped(KindBool),
	TagFloat:   untyped(KindFloat),
	TagDecimal: untyped(KindDecimal),
	TagJSON:    untyped(KindJSON),
	TagList:    untyped(ListOf(KindStr)),
}

func untyped[T any](k Kind[T]) func(string) (any, error) {
	return func(raw string) (any, error) {
		v, err := k.cast(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func castStr(raw string) (string, error) {
	return raw, nil
}

func castInt(raw string) (int, error) {
	return strconv.Atoi(raw)
}

// castBool accepts "true"/"1" and "false"/"0"; words are case-insensitive.
func castBool(raw string) (bool, error) {
	switch {
	case raw == "1" || strings.EqualFold(raw, "true"):
		return true, nil
	case raw == "0" || strings.EqualFold(raw, "false"):
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean literal %q (want true, false, 1 or 0)", raw)
}

func castFloat(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

func castDecimal(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(raw)
}

func castHex(raw string) ([]byte, error) {
	return hex.DecodeString(normalize.HexDigits(raw))
}

func castJSON(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func castList[E any](raw string, sub func(string) (E, error)) ([]E, error) {
	if raw == "" {
		return []E{}, nil
	}

	items := strings.Split(raw, ",")
	out := make([]E, 0, len(items))
	for i, item := range items {
		v, err := sub(item)
		if err != nil {
			return nil, fmt.Errorf("element %d %q: %w", i, item, err)
		}
		out = append(out, v)
	}
	return out, nil
}
