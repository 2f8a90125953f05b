package domain

// ViewMeta is the orchestration metadata every view carries next to its
// projected model fields. Views embed it by value.
//
// Specificulture and Priority are projected to and from the model like any
// other field; the rest is owned by the persistence pipeline.
type ViewMeta struct {
	Specificulture string   `json:"specificulture" validate:"required"`
	Priority       int      `json:"priority"`
	IsLazyLoad     bool     `json:"-" copy:"-"`
	IsClone        bool     `json:"isClone,omitempty" copy:"-"`
	IsValid        bool     `json:"isValid" copy:"-"`
	Errors         []string `json:"errors,omitempty" copy:"-"`
	Fault          error    `json:"-" copy:"-"`
	Cultures       []Locale `json:"cultures,omitempty" copy:"-"`
}

// Meta gives generic pipelines access to the embedded metadata.
func (m *ViewMeta) Meta() *ViewMeta {
	return m
}
