package entity

// Reference is one authoritative accounting-standard citation attached to a
// taxonomy element. Every field is optional; a Reference is only recorded
// when at least one field was present in the linkbase.
type Reference struct {
	URI       string `json:"uri,omitempty"`
	Topic     string `json:"topic,omitempty"`
	SubTopic  string `json:"subtopic,omitempty"`
	Section   string `json:"section,omitempty"`
	Paragraph string `json:"paragraph,omitempty"`
}

// IsZero reports whether no citation field was extracted
func (r Reference) IsZero() bool {
	return r == Reference{}
}

// ElementInfo is the full resolution result for one taxonomy element.
// Label is nil when the label linkbase has no binding for the element.
type ElementInfo struct {
	ElementName string      `json:"element_name"`
	Label       *string     `json:"label"`
	References  []Reference `json:"references"`
}

// Found reports whether the element resolved to anything at all
func (e *ElementInfo) Found() bool {
	return e.Label != nil || len(e.References) > 0
}
