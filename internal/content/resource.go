package content

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// FieldKind enumerates the value types a resource field can hold.
type FieldKind int

const (
	String FieldKind = iota
	StringList
	Int
)

// Field describes one domain field of a resource. Required fields must
// be supplied on create; optional fields default to their zero value.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// Resource is the declarative schema for one content collection. The
// whole CRUD surface (routes, validation, seeding, upload ownership)
// derives from this table.
type Resource struct {
	Name        string // URL segment, e.g. "programs"
	Collection  string
	Fields      []Field
	OwnsUploads bool // has upload/serve/with-image routes and owns managed image files
	NoDelete    bool
	Defaults    []bson.M // seeded into an empty collection on first list read
}

// Singleton is a content collection expected to hold exactly one
// document (hero, about). Get auto-creates the default; update merges
// into the existing document or inserts from the partial payload.
type Singleton struct {
	Name       string // URL segment under /content, e.g. "hero"
	Collection string
	Fields     []Field
	Default    bson.M
}

// Registry lists every content resource. Field sets mirror the public
// API shapes; bilingual fields come in *_en / *_fr pairs.
var Registry = []*Resource{
	{
		Name:       "programs",
		Collection: "programs",
		Fields: []Field{
			{Name: "title_en", Kind: String, Required: true},
			{Name: "title_fr", Kind: String, Required: true},
			{Name: "description_en", Kind: String, Required: true},
			{Name: "description_fr", Kind: String, Required: true},
			{Name: "bullets_en", Kind: StringList},
			{Name: "bullets_fr", Kind: StringList},
			{Name: "media_key", Kind: String},
			{Name: "order", Kind: Int},
		},
		Defaults: defaultPrograms,
	},
	{
		Name:        "gallery",
		Collection:  "gallery",
		OwnsUploads: true,
		Fields: []Field{
			{Name: "title_en", Kind: String, Required: true},
			{Name: "title_fr", Kind: String, Required: true},
			{Name: "media_key", Kind: String, Required: true},
			{Name: "image_url", Kind: String},
			{Name: "order", Kind: Int},
		},
		Defaults: defaultGallery,
	},
	{
		Name:        "events",
		Collection:  "events",
		OwnsUploads: true,
		Fields: []Field{
			{Name: "date_en", Kind: String, Required: true},
			{Name: "date_fr", Kind: String, Required: true},
			{Name: "title_en", Kind: String, Required: true},
			{Name: "title_fr", Kind: String, Required: true},
			{Name: "location_en", Kind: String, Required: true},
			{Name: "location_fr", Kind: String, Required: true},
			{Name: "summary_en", Kind: String, Required: true},
			{Name: "summary_fr", Kind: String, Required: true},
			{Name: "media_key", Kind: String},
			{Name: "image_url", Kind: String},
			{Name: "order", Kind: Int},
		},
		Defaults: defaultEvents,
	},
	{
		Name:        "leadership",
		Collection:  "leadership",
		OwnsUploads: true,
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
			{Name: "role_en", Kind: String, Required: true},
			{Name: "role_fr", Kind: String, Required: true},
			{Name: "bio_en", Kind: String},
			{Name: "bio_fr", Kind: String},
			{Name: "email", Kind: String},
			{Name: "linkedin", Kind: String},
			{Name: "image_url", Kind: String},
			{Name: "order", Kind: Int},
		},
		Defaults: defaultLeadership,
	},
	{
		// media-asset catalog: symbolic keys resolved by the frontend.
		// Append/update only, never seeded.
		Name:       "media",
		Collection: "media_assets",
		NoDelete:   true,
		Fields: []Field{
			{Name: "key", Kind: String, Required: true},
			{Name: "url", Kind: String, Required: true},
			{Name: "alt_en", Kind: String},
			{Name: "alt_fr", Kind: String},
		},
	},
}

// Singletons lists the single-document content kinds served under /content.
var Singletons = []*Singleton{
	{
		Name:       "hero",
		Collection: "hero_content",
		Fields: []Field{
			{Name: "title_en", Kind: String},
			{Name: "title_fr", Kind: String},
			{Name: "subtitle_en", Kind: String},
			{Name: "subtitle_fr", Kind: String},
			{Name: "tagline_en", Kind: String},
			{Name: "tagline_fr", Kind: String},
			{Name: "media_key", Kind: String},
		},
		Default: defaultHero,
	},
	{
		Name:       "about",
		Collection: "about_content",
		Fields: []Field{
			{Name: "about_en", Kind: String},
			{Name: "about_fr", Kind: String},
			{Name: "mission_en", Kind: String},
			{Name: "mission_fr", Kind: String},
			{Name: "vision_en", Kind: String},
			{Name: "vision_fr", Kind: String},
		},
		Default: defaultAbout,
	},
}

// ResourceByName looks up an entry of Registry; nil when absent.
func ResourceByName(name string) *Resource {
	for _, r := range Registry {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// buildPayload validates raw JSON input against the field schema and
// returns the fields to persist. In partial mode absent fields are
// skipped; otherwise required fields must be present and optional ones
// default to their zero value.
func buildPayload(fields []Field, raw map[string]interface{}, partial bool) (bson.M, error) {
	out := bson.M{}
	for _, f := range fields {
		v, present := raw[f.Name]
		if !present || v == nil {
			if partial {
				continue
			}
			if f.Required {
				return nil, fmt.Errorf("field %q is required", f.Name)
			}
			out[f.Name] = zeroValue(f.Kind)
			continue
		}
		coerced, err := coerce(f, v)
		if err != nil {
			return nil, err
		}
		out[f.Name] = coerced
	}
	return out, nil
}

func zeroValue(k FieldKind) interface{} {
	switch k {
	case StringList:
		return []string{}
	case Int:
		return 0
	}
	return ""
}

func coerce(f Field, v interface{}) (interface{}, error) {
	switch f.Kind {
	case String:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("field %q must be a string", f.Name)
		}
		return s, nil
	case StringList:
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("field %q must be a list of strings", f.Name)
		}
		out := make([]string, 0, len(list))
		for _, it := range list {
			s, ok := it.(string)
			if !ok {
				return nil, fmt.Errorf("field %q must be a list of strings", f.Name)
			}
			out = append(out, s)
		}
		return out, nil
	case Int:
		switch n := v.(type) {
		case float64:
			return int(n), nil
		case int:
			return n, nil
		case string:
			// multipart form values arrive as strings
			i, err := strconv.Atoi(n)
			if err != nil {
				return nil, fmt.Errorf("field %q must be an integer", f.Name)
			}
			return i, nil
		}
		return nil, fmt.Errorf("field %q must be an integer", f.Name)
	}
	return nil, fmt.Errorf("field %q has unknown kind", f.Name)
}
