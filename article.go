package searchdrop

import (
	"strings"
	"unicode/utf8"
)

// Minimum lengths for article form fields.
const (
	MinArticleTitleLength       = 5
	MinArticleDescriptionLength = 10
)

// Article form field names, as reported by InvalidFields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldState       = "state"
	FieldDistrict    = "district"
	FieldVillage     = "village"
)

// Article is the user-submitted form for a new article.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
	District    string `json:"district"`
	Village     string `json:"village"`
	ImagePath   string `json:"image_path"`
}

// InvalidFields returns the names of every field that fails validation,
// in form order. Values are trimmed before checking.
func (a *Article) InvalidFields() []string {
	var fields []string
	if utf8.RuneCountInString(strings.TrimSpace(a.Title)) < MinArticleTitleLength {
		fields = append(fields, FieldTitle)
	}
	if utf8.RuneCountInString(strings.TrimSpace(a.Description)) < MinArticleDescriptionLength {
		fields = append(fields, FieldDescription)
	}
	if strings.TrimSpace(a.State) == "" {
		fields = append(fields, FieldState)
	}
	if strings.TrimSpace(a.District) == "" {
		fields = append(fields, FieldDistrict)
	}
	if strings.TrimSpace(a.Village) == "" {
		fields = append(fields, FieldVillage)
	}
	return fields
}

// Validate returns an EINVALID error if any field is invalid.
func (a *Article) Validate() error {
	if fields := a.InvalidFields(); len(fields) > 0 {
		return Errorf(EINVALID, "please fix the errors in the form: %s", strings.Join(fields, ", "))
	}
	return nil
}

// Comment is a reader comment on an article.
type Comment struct {
	Body string `json:"body"`
}

// Validate returns an EINVALID error if the trimmed body is empty.
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Body) == "" {
		return Errorf(EINVALID, "comment cannot be empty")
	}
	return nil
}
