package codegen

import "testing"

func TestLoadTemplatesCoversAllLanguages(t *testing.T) {
	for lang := range templateDirs {
		if _, err := Templates(lang); err != nil {
			t.Errorf("Templates(%q) failed after LoadTemplates: %v", lang, err)
		}
	}
}

func TestTemplatesUnknownLanguage(t *testing.T) {
	if _, err := Templates("COBOL"); err == nil {
		t.Error("expected error for unregistered language")
	}
}
