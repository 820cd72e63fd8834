package agreements

import (
	"testing"
	"time"
)

func TestFilter_NoCriteriaReturnsAllInOrder(t *testing.T) {
	in := fixture()

	out := Filter(in, Query{})
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].Name != in[i].Name {
			t.Fatalf("out[%d] = %q, want input order preserved", i, out[i].Name)
		}
	}

	out[0].Name = "scribbled"
	if in[0].Name == "scribbled" {
		t.Fatalf("filter output aliases the input")
	}
}

func TestFilter_StatusIsCaseSensitive(t *testing.T) {
	in := fixture()

	if got := Filter(in, Query{Status: "active"}); len(got) != 0 {
		t.Fatalf("lowercased label matched %d records, want 0", len(got))
	}
	if got := Filter(in, Query{Status: StatusActive}); len(got) != 3 {
		t.Fatalf("canonical label matched %d records, want 3", len(got))
	}
}

func TestFilter_StatusesMembership(t *testing.T) {
	in := fixture()

	out := Filter(in, Query{Statuses: []string{StatusDraft, StatusArchived}})
	want := []string{
		"Acuerdo de Intercambio Docente",
		"Convenio de Cooperación Técnica",
		"Acuerdo de Doble Titulación",
	}
	got := names(out)
	if len(got) != len(want) {
		t.Fatalf("matched %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("matched[%d] = %q, want %q (input order)", i, got[i], want[i])
		}
	}
}

func TestFilter_NonCanonicalLabelsFlowThrough(t *testing.T) {
	in := []Agreement{
		{Name: "one", Status: "Suspended"},
		{Name: "two", Status: StatusActive},
		{Name: "three", Status: "Suspended"},
	}
	out := Filter(in, Query{Status: "Suspended"})
	if len(out) != 2 {
		t.Fatalf("matched %d, want 2; the status set is open", len(out))
	}
}

func TestFilter_SearchFoldsAndTrims(t *testing.T) {
	in := fixture()

	cases := []struct {
		name   string
		search string
		want   int
	}{
		{"uppercase term", "UNIVERSIDAD", 2},
		{"padded term", "  universidad\t", 2},
		{"description only", "posgrado", 1},
		{"folded accent case", "investigación", 1},
		{"no match", "blockchain", 0},
		{"all whitespace is absent", "   \t ", 7},
		{"empty is absent", "", 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Filter(in, Query{Search: tc.search}); len(got) != tc.want {
				t.Fatalf("matched %d, want %d", len(got), tc.want)
			}
		})
	}
}

func TestFilter_DateBoundsAreInclusive(t *testing.T) {
	in := fixture()

	from := date(2024, time.February, 1) // equals a start date
	out := Filter(in, Query{DateFrom: &from})
	if len(out) != 4 {
		t.Fatalf("from bound matched %d, want 4", len(out))
	}

	to := date(2024, time.February, 1) // same instant as the upper bound
	out = Filter(in, Query{DateTo: &to})
	if len(out) != 4 {
		t.Fatalf("to bound matched %d, want 4", len(out))
	}

	out = Filter(in, Query{DateFrom: &from, DateTo: &to})
	if len(out) != 1 || out[0].Name != "Alianza de Investigación Aplicada" {
		t.Fatalf("pinched window matched %v, want exactly the record starting on the bound", names(out))
	}
}

func TestFilter_AllCriteriaAND(t *testing.T) {
	in := fixture()

	from := date(2023, time.January, 1)
	to := date(2023, time.December, 31)
	out := Filter(in, Query{
		Status:   StatusActive,
		Statuses: []string{StatusActive, StatusDraft},
		DateFrom: &from,
		DateTo:   &to,
		Search:   "universidad",
	})
	if len(out) != 1 || out[0].Name != "Convenio Marco Universidad Nacional" {
		t.Fatalf("matched %v, want the single record satisfying every criterion", names(out))
	}
}
