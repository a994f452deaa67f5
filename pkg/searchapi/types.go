package searchapi

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// FilterOptions is the filter vocabulary returned by /filters/.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Authors    []string `json:"authors"`
}

// Suggestions is the body returned by /suggest/. Entries are titles, which
// the engine may store as arrays.
type Suggestions struct {
	Suggestions []FlexString `json:"suggestions"`
}

// Values returns the non-empty suggestions in API order.
func (s *Suggestions) Values() []string {
	if s == nil {
		return nil
	}
	values := make([]string, 0, len(s.Suggestions))
	for _, v := range s.Suggestions {
		if v != "" {
			values = append(values, string(v))
		}
	}
	return values
}

// SearchResponse is the body returned by /search/.
//
// The backend answers {"error": "..."} when its engine fails; in that case
// Response is nil and Error carries the message.
type SearchResponse struct {
	Response *ResultSet `json:"response"`
	Error    string     `json:"error,omitempty"`
}

// ResultSet holds the matching documents in API order.
type ResultSet struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

// Doc is one book as returned by the search engine.
type Doc struct {
	ID        FlexString `json:"id"`
	Title     FlexString `json:"title"`
	Author    FlexString `json:"author"`
	Category  FlexString `json:"category"`
	Published FlexBool   `json:"published"`
}

func (r *SearchResponse) backendError() string {
	return r.Error
}

// Empty reports whether the response carries no documents to show.
func (r *SearchResponse) Empty() bool {
	return r == nil || r.Response == nil || r.Response.NumFound == 0
}

var flexStringType = reflect.TypeOf(FlexString(""))

// FlexString decodes a JSON string, number, boolean or array of those.
// Arrays are joined with ",". null decodes to the empty string.
type FlexString string

func (s FlexString) String() string {
	return string(s)
}

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
	case '[':
		var items []FlexString
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = string(item)
		}
		*s = FlexString(strings.Join(parts, ","))
	case '{':
		return &json.UnmarshalTypeError{Value: "object", Type: flexStringType}
	default:
		// numbers and booleans keep their JSON spelling
		*s = FlexString(data)
	}
	return nil
}

// FlexBool decodes a JSON boolean, the strings "true"/"false", or an array
// whose first element is one of those. Anything else decodes to false.
type FlexBool bool

func (b FlexBool) Bool() bool {
	return bool(b)
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*b = false
		return nil
	}

	switch data[0] {
	case '[':
		var items []FlexBool
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*b = FlexBool(len(items) > 0 && bool(items[0]))
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		*b = FlexBool(err == nil && parsed)
	default:
		*b = FlexBool(bytes.Equal(data, []byte("true")))
	}
	return nil
}
