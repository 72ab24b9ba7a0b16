package prompt

import (
	"strings"
	"testing"

	"architect/internal/designsys"
)

func testRegistry(t *testing.T) *designsys.Registry {
	t.Helper()
	reg, err := designsys.NewRegistry([]designsys.Token{
		{Name: "primary-color", Mandatory: true, MatchPatterns: []string{"#6366f1"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestBuild_SectionsAndTokenInjection(t *testing.T) {
	out, err := Build(Spec{Task: "a login card", Registry: testRegistry(t)})
	if err != nil {
		t.Fatal(err)
	}
	for _, section := range []string{"[TASK]", "[USER_REQUEST]", "[DESIGN_TOKENS]", "[CONSTRAINTS]", "[OUTPUT_FORMAT]"} {
		if !strings.Contains(out, section) {
			t.Errorf("missing section %s", section)
		}
	}
	if strings.Contains(out, "[ERRORS]") {
		t.Error("first attempt must not carry an errors section")
	}
	if !strings.Contains(out, "a login card") {
		t.Error("task description not included")
	}
	if !strings.Contains(out, "#6366f1") {
		t.Error("token value not injected")
	}
}

func TestBuild_FeedbackSection(t *testing.T) {
	out, err := Build(Spec{
		Task:     "a login card",
		Registry: testRegistry(t),
		Feedback: []string{`add design token "primary-color"`, "fix the markup segment: unclosed tag <div>"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "[ERRORS]") {
		t.Fatal("errors section missing on retry")
	}
	if !strings.Contains(out, `- add design token "primary-color"`) {
		t.Error("feedback line not rendered")
	}
	if !strings.Contains(out, "- fix the markup segment") {
		t.Error("second feedback line not rendered")
	}
}

func TestBuild_RejectsEmptyTask(t *testing.T) {
	if _, err := Build(Spec{Task: "  ", Registry: testRegistry(t)}); err == nil {
		t.Fatal("expected an error for an empty task")
	}
}

func TestBuild_RejectsNilRegistry(t *testing.T) {
	if _, err := Build(Spec{Task: "x"}); err == nil {
		t.Fatal("expected an error for a nil registry")
	}
}
