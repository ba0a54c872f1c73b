package assets

// LoadTemplate loads a page template from path and validates it.
// An empty path returns the embedded default template.
// Returns ErrTemplateNotFound if the file does not exist and
// ErrTemplateMissingContent if it has no {{ Content }} placeholder.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return DefaultTemplate(), nil
	}

	content, err := readTemplateFile(path)
	if err != nil {
		return "", err
	}
	if err := ValidateTemplate(path, content); err != nil {
		return "", err
	}
	return content, nil
}
