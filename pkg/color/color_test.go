package color

import "testing"

func TestDiagnosticPlain(t *testing.T) {
	defer EnableColor(IsColorEnabled())
	EnableColor(false)

	got := Diagnostic("int x = 1 / 0;", "Division by zero is not allowed.")
	want := "Anweisung: int x = 1 / 0;\nFehlermeldung: Division by zero is not allowed."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDiagnosticColored(t *testing.T) {
	defer EnableColor(IsColorEnabled())
	EnableColor(true)

	got := Diagnostic("f();", "Function f is not defined")
	want := Bold + "Anweisung:" + Reset + " " + Yellow + "f();" + Reset + "\n" +
		BrightRed + Bold + "Fehlermeldung:" + Reset + Reset + " Function f is not defined"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestVariables(t *testing.T) {
	defer EnableColor(IsColorEnabled())

	EnableColor(false)
	if got := Variables("x = 1\n"); got != "x = 1\n" {
		t.Errorf("expected plain text, got %q", got)
	}

	EnableColor(true)
	want := Cyan + "x" + Reset + Gray + " = " + Reset + "1\n"
	if got := Variables("x = 1\n"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
