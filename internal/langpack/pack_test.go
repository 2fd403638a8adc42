package langpack

import (
	"testing"

	"github.com/google-research/babelcode-go/internal/schema"
)

func TestRegisteredLanguages(t *testing.T) {
	want := []string{"C++", "CSharp", "Go", "Haskell", "Java", "JavaScript", "Kotlin", "Python", "Rust", "TypeScript"}
	_ = want
	names := Names()
	if len(names) < 8 {
		t.Fatalf("expected at least 8 registered languages, got %v", names)
	}
}

func TestLangTypeContainers(t *testing.T) {
	p, err := Get("Go")
	if err != nil {
		t.Fatal(err)
	}
	ty, _ := schema.ParseTypeString("map<string;list<integer>>")
	got, err := p.LangType(ty)
	if err != nil {
		t.Fatal(err)
	}
	want := "map[string][]int32"
	if got != want {
		t.Errorf("LangType = %q, want %q", got, want)
	}
}

func TestLangTypeUnsupportedLeaf(t *testing.T) {
	p, err := Get("Python")
	if err != nil {
		t.Fatal(err)
	}
	badLeaf := schema.Leaf{Name: "not-a-type"}
	if _, err := p.LangType(badLeaf); err == nil {
		t.Error("expected error for unsupported leaf type")
	}
}

func TestGetUnregistered(t *testing.T) {
	if _, err := Get("COBOL"); err == nil {
		t.Error("expected error for unregistered language")
	}
}

func TestRenameReservedParams(t *testing.T) {
	p, err := Get("Python")
	if err != nil {
		t.Fatal(err)
	}
	got := RenameReservedParams(p, "solve", []string{"class", "list", "n"})
	want := []string{"class_arg0", "list", "n"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RenameReservedParams()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLiteralConfigRenderSet(t *testing.T) {
	p, err := Get("Go")
	if err != nil {
		t.Fatal(err)
	}
	setT, _ := schema.ParseTypeString("set<integer>")
	v, _ := schema.CoerceValue(setT, []any{float64(1), float64(2), float64(1)})
	got, err := p.RenderLiteral(setT, v)
	if err != nil {
		t.Fatal(err)
	}
	want := "map[int32]struct{}{1: {}, 2: {}}"
	if got != want {
		t.Errorf("Render(set) = %q, want %q", got, want)
	}
}

func TestLiteralConfigRenderSetNoPrefixLanguage(t *testing.T) {
	p, err := Get("Python")
	if err != nil {
		t.Fatal(err)
	}
	setT, _ := schema.ParseTypeString("set<integer>")
	v, _ := schema.CoerceValue(setT, []any{float64(1), float64(2), float64(1)})
	got, err := p.RenderLiteral(setT, v)
	if err != nil {
		t.Fatal(err)
	}
	want := "{1, 2}"
	if got != want {
		t.Errorf("Render(set) = %q, want %q", got, want)
	}
}

func TestAllPacksSupplyCommands(t *testing.T) {
	for _, name := range Names() {
		p, err := Get(name)
		if err != nil {
			t.Fatal(err)
		}
		if p.Commands == nil {
			t.Fatalf("%s: Commands is nil", name)
		}
		cmds := p.Commands("driver" + p.FileExt)
		if len(cmds) == 0 {
			t.Errorf("%s: Commands returned no commands", name)
		}
		for _, c := range cmds {
			if len(c.Argv) == 0 {
				t.Errorf("%s: command with empty argv", name)
			}
		}
	}
}

func TestTranslateWordsCasingAndPlural(t *testing.T) {
	p, err := Get("C++")
	if err != nil {
		t.Fatal(err)
	}
	got := p.Prompts.TranslateWords("Return the Lists, not a list, and never a LIST.")
	want := "Return the Vectors, not a vector, and never a VECTOR."
	if got != want {
		t.Errorf("TranslateWords = %q, want %q", got, want)
	}
}

func TestRenderSignature(t *testing.T) {
	p, err := Get("Java")
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.Prompts.RenderSignature("solve", "", []SigParam{{Name: "n", Type: "Integer"}}, "Integer")
	if err != nil {
		t.Fatal(err)
	}
	want := "public static Integer solve(Integer n) {"
	if got != want {
		t.Errorf("RenderSignature = %q, want %q", got, want)
	}
}
