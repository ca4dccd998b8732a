package views

import (
	"strings"
	"testing"
)

func TestSectionPath(t *testing.T) {
	tests := []struct{ typ, want string }{
		{"project", "/projects/"},
		{"research", "/research/"},
		{"hobby", "/hobbies/"},
	}
	for _, tt := range tests {
		if got := SectionPath(tt.typ); got != tt.want {
			t.Errorf("SectionPath(%q) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestArticleJsonLDResearchURL(t *testing.T) {
	cfg := SiteConfig{Name: "Site", URL: "https://example.com", Author: "Jane Doe"}
	a := Article{Type: "research", Slug: "deep-learning", Title: "Deep Learning"}
	got := ArticleJsonLD(cfg, a)
	if !strings.Contains(got, "https://example.com/research/deep-learning/") {
		t.Errorf("JSON-LD should link the research section unpluralized, got %s", got)
	}
	if strings.Contains(got, "researchs") {
		t.Errorf("research must not be pluralized, got %s", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 100, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this is a longer sentence", 7, "this is..."},
		{"héllo wörld", 5, "héllo..."},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestFormatMonthYear(t *testing.T) {
	if got := FormatMonthYear("2024-03-15"); got != "March 2024" {
		t.Errorf("FormatMonthYear = %q, want %q", got, "March 2024")
	}
	if got := FormatMonthYear("not-a-date"); got != "not-a-date" {
		t.Errorf("unparseable input should pass through, got %q", got)
	}
}

func TestContentFormFor(t *testing.T) {
	cv := ContentFormFor("cv")
	if cv.MediaKind != "pdf" || !cv.TitleRequired {
		t.Errorf("cv form spec = %+v", cv)
	}
	contact := ContentFormFor("contact")
	if !contact.ShowContactIcon {
		t.Error("contact form should show the icon field")
	}
	about := ContentFormFor("about")
	if !about.DescriptionRequired || about.TitleRequired {
		t.Errorf("about form spec = %+v", about)
	}
}
