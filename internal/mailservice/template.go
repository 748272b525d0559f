package mailservice

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*
var templateFS embed.FS

func NewTemplate() *Template {
	return &Template{}
}

// ParseTemplate renders the subject, plainBody, and htmlBody sections of the
// named embedded template against data, in that order.
func (tp *Template) ParseTemplate(name string, data any) (*bytes.Buffer, *bytes.Buffer, *bytes.Buffer, error) {
	t, err := template.New("email").ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not parse template: %w", err)
	}

	sections := make([]*bytes.Buffer, 0, 3)
	for _, section := range []string{"subject", "plainBody", "htmlBody"} {
		buf := new(bytes.Buffer)
		if err := t.ExecuteTemplate(buf, section, data); err != nil {
			return nil, nil, nil, err
		}
		sections = append(sections, buf)
	}

	return sections[0], sections[1], sections[2], nil
}
