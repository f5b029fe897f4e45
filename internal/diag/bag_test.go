package diag

import "testing"

func TestBagLimitAndErrors(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(Diagnostic{Severity: SevWarning, Code: LoadBadDocument, Subject: "a"}) {
		t.Fatalf("first add rejected")
	}
	if !bag.Add(Diagnostic{Severity: SevError, Code: ValUnresolvedReference, Subject: "b"}) {
		t.Fatalf("second add rejected")
	}
	if bag.Add(Diagnostic{Severity: SevError, Code: ValUnresolvedReference, Subject: "c"}) {
		t.Fatalf("add beyond the limit was accepted")
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("severity queries wrong: errors=%v warnings=%v", bag.HasErrors(), bag.HasWarnings())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Severity: SevWarning, Code: LinkUnresolvedImport, Subject: "q"})
	bag.Add(Diagnostic{Severity: SevError, Code: ValUnresolvedReference, Subject: "p.A"})
	bag.Add(Diagnostic{Severity: SevError, Code: ValUnresolvedReference, Subject: "p.A"})

	bag.Sort()
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics after dedup, got %d", bag.Len())
	}
	if bag.Items()[0].Subject != "p.A" {
		t.Fatalf("sort order wrong: first subject %q", bag.Items()[0].Subject)
	}
}

func TestSeverityLabelsAndOrder(t *testing.T) {
	labels := map[Severity]string{
		SevInfo:    "info",
		SevWarning: "warning",
		SevError:   "error",
	}
	for sev, want := range labels {
		if got := sev.String(); got != want {
			t.Fatalf("severity %d: got %q, want %q", sev, got, want)
		}
	}
	if Severity(200).String() != "unknown" {
		t.Fatalf("out-of-range severity not labeled unknown")
	}
	if !(SevError > SevWarning && SevWarning > SevInfo) {
		t.Fatalf("severity values out of rank order")
	}
}

func TestCodeIDRanges(t *testing.T) {
	cases := map[Code]string{
		LoadReadFailed:         "LOD1001",
		LinkUnresolvedImport:   "LNK2001",
		ValUnresolvedReference: "VAL3001",
		UnknownCode:            "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Fatalf("code %d: got ID %q, want %q", code, got, want)
		}
	}
}
