package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minilang/pkg/compiler"
	"minilang/pkg/config"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	chdir(t, t.TempDir())

	var out, errb bytes.Buffer
	err = run(newRootCmd(), args, &out, &errb)
	return out.String(), errb.String(), err
}

func TestTokensCommand(t *testing.T) {
	out, _, err := execute(t, "tokens", "-e", "let a = 1 <= 2;")
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	for _, want := range []string{"Tokens (8)", `KEYWORD`, `"<="`, "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTokensCommandJSON(t *testing.T) {
	out, _, err := execute(t, "tokens", "--format", "json", "-e", "x;")
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(rows) != 3 || rows[0]["kind"] != "IDENTIFIER" || rows[2]["kind"] != "EOF" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestTokensRejectsPNG(t *testing.T) {
	_, _, err := execute(t, "tokens", "--format", "png", "-e", "x;")
	if err == nil {
		t.Fatal("expected an error for png tokens")
	}
}

func TestASTCommandSample(t *testing.T) {
	out, _, err := execute(t, "ast")
	if err != nil {
		t.Fatalf("ast failed: %v", err)
	}
	for _, want := range []string{"declaration x", "declaration y", "if", "condition: binary >="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestASTCommandExpression(t *testing.T) {
	out, _, err := execute(t, "ast", "--expr", "-e", "1 + 2 * 3")
	if err != nil {
		t.Fatalf("ast failed: %v", err)
	}
	want := `binary +
  left: literal 1 int
  right: binary *
    left: literal 2 int
    right: literal 3 int
`
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestASTCommandFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.ml")
	if err := os.WriteFile(src, []byte("let a = 2;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "ast", "--format", "yaml", src)
	if err != nil {
		t.Fatalf("ast failed: %v", err)
	}
	if !strings.Contains(out, "node: declaration") || !strings.Contains(out, "name: a") {
		t.Errorf("unexpected YAML:\n%s", out)
	}
}

func TestASTCommandPNG(t *testing.T) {
	target := filepath.Join(t.TempDir(), "tree.png")
	if _, _, err := execute(t, "ast", "--format", "png", "-o", target, "-e", "let a = 1;"); err != nil {
		t.Fatalf("ast failed: %v", err)
	}

	f, err := os.Open(target)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}

func TestASTCommandPNGNeedsOutput(t *testing.T) {
	_, _, err := execute(t, "ast", "--format", "png", "-e", "let a = 1;")
	if err == nil || !strings.Contains(err.Error(), "-o") {
		t.Errorf("expected a missing -o error, got %v", err)
	}
}

func TestSyntaxErrorReport(t *testing.T) {
	_, stderr, err := execute(t, "ast", "-e", "let a = 2")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, compiler.ErrSyntax) {
		t.Errorf("expected a syntax error, got %v", err)
	}
	for _, want := range []string{
		`<expr>:1:10: syntax error: expected SYMBOL ";", found EOF`,
		"  |> let a = 2",
		"  |>          ^",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestConfigFlag(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "minilang.toml")
	content := "[lexer]\noperator_pairs = \"any\"\nsigned_literals = true\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--config", cfg, "tokens", "--format", "json", "-e", "a +- -1")
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	lexemes := []string{}
	for _, r := range rows {
		s, _ := r["lexeme"].(string)
		lexemes = append(lexemes, s)
	}
	if got := strings.Join(lexemes, " "); got != "a +- -1 " {
		t.Errorf("lexemes = %q, want %q", got, "a +- -1 ")
	}
}

func TestConfigFromWorkingDirectory(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	chdir(t, t.TempDir())
	if err := os.WriteFile("minilang.yaml", []byte("output:\n  format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errb bytes.Buffer
	if err := run(newRootCmd(), []string{"ast", "-e", "a;"}, &out, &errb); err != nil {
		t.Fatalf("ast failed: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out.String()), "[") {
		t.Errorf("expected JSON from the config default, got:\n%s", out.String())
	}
}

func TestBadConfig(t *testing.T) {
	_, stderr, err := execute(t, "--config", "/nonexistent/minilang.toml", "ast")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(stderr, "config file not found") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "minilang "+Version) {
		t.Errorf("got %q", out)
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := execute(t, "-v", "ast", "-e", "a; b;")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "minilang: <expr>: 2 statements") {
		t.Errorf("missing progress log:\n%s", stderr)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
