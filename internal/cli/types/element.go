package types

// Reference is one accounting-standard citation as returned by the API
type Reference struct {
	URI       string `json:"uri,omitempty"`
	Topic     string `json:"topic,omitempty"`
	SubTopic  string `json:"subtopic,omitempty"`
	Section   string `json:"section,omitempty"`
	Paragraph string `json:"paragraph,omitempty"`
}

// ElementInfo is the full resolution of one element
type ElementInfo struct {
	ElementName string      `json:"element_name"`
	Label       *string     `json:"label"`
	References  []Reference `json:"references"`
}

// ElementList is one page of element names
type ElementList struct {
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Elements []string `json:"elements"`
}

// SearchResult is one page of keyword matches
type SearchResult struct {
	Keyword  string   `json:"keyword"`
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Elements []string `json:"elements"`
}

// APIError is the error body returned by the server
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
