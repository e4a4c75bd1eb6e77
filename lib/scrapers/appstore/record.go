package appstore

import (
	"strconv"
	"strings"
)

// AppRecord is a single lookup result exactly as the store returned it.
// Fields the store did not send stay absent, nothing is ever invented.
// The accessors below pull out the handful of commonly needed values and
// return zero values when the field is missing.
type AppRecord map[string]any

func (r AppRecord) int64Field(key string) int64 {
	v, _ := r[key].(float64)
	return int64(v)
}

func (r AppRecord) float64Field(key string) float64 {
	v, _ := r[key].(float64)
	return v
}

func (r AppRecord) stringField(key string) string {
	v, _ := r[key].(string)
	return v
}

func (r AppRecord) ID() int64             { return r.int64Field("trackId") }
func (r AppRecord) BundleID() string      { return r.stringField("bundleId") }
func (r AppRecord) Name() string          { return r.stringField("trackName") }
func (r AppRecord) DeveloperID() int64    { return r.int64Field("artistId") }
func (r AppRecord) DeveloperName() string { return r.stringField("artistName") }
func (r AppRecord) WrapperType() string   { return r.stringField("wrapperType") }
func (r AppRecord) Version() string       { return r.stringField("version") }
func (r AppRecord) Description() string   { return r.stringField("description") }
func (r AppRecord) PrimaryGenre() string  { return r.stringField("primaryGenreName") }
func (r AppRecord) Price() float64        { return r.float64Field("price") }
func (r AppRecord) AverageRating() float64 {
	return r.float64Field("averageUserRating")
}
func (r AppRecord) RatingCount() int64 { return r.int64Field("userRatingCount") }

// Flatten squashes the record into scalars only, the shape wanted when
// feeding records into a CSV or a flat table. Arrays of scalars are joined
// with commas, nested objects and nulls are dropped.
func (r AppRecord) Flatten() map[string]any {
	out := make(map[string]any, len(r))
	for key, value := range r {
		switch v := value.(type) {
		case nil:
		case map[string]any:
		case []any:
			parts := make([]string, 0, len(v))
			scalars := true
			for _, item := range v {
				switch s := item.(type) {
				case string:
					parts = append(parts, s)
				case float64:
					parts = append(parts, strconv.FormatFloat(s, 'f', -1, 64))
				case bool:
					parts = append(parts, strconv.FormatBool(s))
				default:
					scalars = false
				}
				if !scalars {
					break
				}
			}
			if scalars {
				out[key] = strings.Join(parts, ",")
			}
		default:
			out[key] = value
		}
	}
	return out
}
