package domain

// Schema selects which topic fields a family collects.
type Schema string

const (
	SchemaBasic  Schema = "basic"
	SchemaMeetup Schema = "meetup"
)

// Family is one resource family mounted at /{Name}.
type Family struct {
	Name   FamilyName `yaml:"name" validate:"required,alphanum,lowercase"`
	Title  string     `yaml:"title"`
	Schema Schema     `yaml:"schema" validate:"required,oneof=basic meetup"`
}

func (f Family) IsMeetup() bool {
	return f.Schema == SchemaMeetup
}

// Path is the listing page of the family.
func (f Family) Path() string {
	return "/" + f.Name
}

// TopicPath is the post listing page of a topic in the family.
func (f Family) TopicPath(id TopicId) string {
	return "/" + f.Name + "/topic/" + id
}

func DefaultFamilies() []Family {
	return []Family{
		{Name: "forums", Title: "Forum Topics", Schema: SchemaBasic},
		{Name: "meetups", Title: "Meetup Topics", Schema: SchemaMeetup},
	}
}
