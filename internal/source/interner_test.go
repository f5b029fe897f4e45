package source

import "testing"

func TestInternerReusesIDs(t *testing.T) {
	in := NewInterner()
	a := in.Intern("animal")
	b := in.Intern("plant")
	if a == b {
		t.Fatalf("distinct strings got the same ID")
	}
	if again := in.Intern("animal"); again != a {
		t.Fatalf("expected %v for repeated intern, got %v", a, again)
	}
	if got := in.MustLookup(a); got != "animal" {
		t.Fatalf("lookup returned %q", got)
	}
}

func TestInternerFindDoesNotGrow(t *testing.T) {
	in := NewInterner()
	in.Intern("known")
	before := in.Len()

	if _, ok := in.Find("unknown"); ok {
		t.Fatalf("Find reported an entry for a string never interned")
	}
	if in.Len() != before {
		t.Fatalf("Find grew the table from %d to %d", before, in.Len())
	}
	if id, ok := in.Find("known"); !ok || !id.IsValid() {
		t.Fatalf("Find missed an interned string")
	}
}

func TestFilesAssignsStableIDs(t *testing.T) {
	files := NewFiles()
	a := files.Add("animals.tree.json")
	b := files.Add("plants.tree.json")
	if a == b {
		t.Fatalf("distinct paths got the same ID")
	}
	if again := files.Add("animals.tree.json"); again != a {
		t.Fatalf("expected %v for repeated add, got %v", a, again)
	}
	if got := files.Path(b); got != "plants.tree.json" {
		t.Fatalf("Path returned %q", got)
	}
	if files.Path(FileID(99)) != "" {
		t.Fatalf("expected empty path for unknown ID")
	}
}
