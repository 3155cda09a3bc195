package pkg

import (
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "graphwar"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	expected := "Parametric curve compiler and grapher"
	if Description != expected {
		t.Errorf("Expected Description to be %q, got %q", expected, Description)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from the VERSION file, so it should not be empty.
	if strings.TrimSpace(Version) == "" {
		t.Error("Expected Version to be non-empty")
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Error("Expected Author to have at least one entry")
	}

	expectedName := "josh65536"
	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == expectedName
	}) {
		t.Errorf("Expected Author to contain %q", expectedName)
	}
}

func TestAuthorStruct(t *testing.T) {
	// Test that Author slice has the expected structure
	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}
