package listquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
)

// fakeRow is a minimal Row with one scalar field and one reference field.
type fakeRow struct {
	ID       string
	Name     string
	ClientID string
}

func (r fakeRow) Field(name string) (string, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "name":
		return r.Name, true
	case "client_id":
		return r.ClientID, true
	}
	return "", false
}

func (r fakeRow) Ref(name string) (domain.EntityKind, string, bool) {
	if name == "client_id" {
		return domain.KindCustomer, r.ClientID, true
	}
	return "", "", false
}

type fakeSnapshot map[string]string

func (s fakeSnapshot) Name(kind domain.EntityKind, id string) string {
	if name, ok := s[string(kind)+"/"+id]; ok {
		return name
	}
	return domain.FallbackName(kind, id)
}

func sampleRows() []fakeRow {
	return []fakeRow{
		{ID: "1", Name: "Steel coils", ClientID: "c1"},
		{ID: "2", Name: "Grain", ClientID: "c2"},
		{ID: "3", Name: "steel plates", ClientID: "c1"},
	}
}

func TestApplyFiltersAreConjunctive(t *testing.T) {
	rows := sampleRows()
	filters := listquery.FilterSpec{
		{Field: "name", Match: listquery.MatchContains, Value: "steel"},
		{Field: "client_id", Match: listquery.MatchEquals, Value: "c1"},
	}

	out := listquery.Apply(rows, filters, nil, nil)

	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "3", out[1].ID)
}

func TestApplyBlankFilterValueIsAbsentPredicate(t *testing.T) {
	rows := sampleRows()
	filters := listquery.FilterSpec{
		{Field: "name", Match: listquery.MatchContains, Value: "   "},
	}

	out := listquery.Apply(rows, filters, nil, nil)

	assert.Len(t, out, 3)
}

func TestApplyContainsIsCaseInsensitive(t *testing.T) {
	rows := sampleRows()
	filters := listquery.FilterSpec{
		{Field: "name", Match: listquery.MatchContains, Value: "STEEL"},
	}

	out := listquery.Apply(rows, filters, nil, nil)

	assert.Len(t, out, 2)
}

func TestApplyResolvedContainsReadsSnapshot(t *testing.T) {
	rows := sampleRows()
	snap := fakeSnapshot{
		"customer/c1": "Acme Shipping",
		"customer/c2": "Baltic Grain Co",
	}
	filters := listquery.FilterSpec{
		{Field: "client_id", Match: listquery.MatchResolvedContains, Value: "acme"},
	}

	out := listquery.Apply(rows, filters, nil, snap)

	require.Len(t, out, 2)
	assert.Equal(t, "c1", out[0].ClientID)
	assert.Equal(t, "c1", out[1].ClientID)
}

func TestApplySortsByResolvedName(t *testing.T) {
	rows := sampleRows()
	snap := fakeSnapshot{
		"customer/c1": "Zenith Lines", // sorts after Baltic despite id order
		"customer/c2": "Baltic Grain Co",
	}

	out := listquery.Apply(rows, nil, &listquery.SortSpec{Field: "client_id"}, snap)

	require.Len(t, out, 3)
	assert.Equal(t, "2", out[0].ID)
	assert.Equal(t, "1", out[1].ID)
	assert.Equal(t, "3", out[2].ID)
}

func TestApplySortIsStable(t *testing.T) {
	rows := []fakeRow{
		{ID: "1", Name: "same"},
		{ID: "2", Name: "same"},
		{ID: "3", Name: "same"},
	}

	out := listquery.Apply(rows, nil, &listquery.SortSpec{Field: "name"}, nil)

	// Equal keys keep their original relative order.
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "2", out[1].ID)
	assert.Equal(t, "3", out[2].ID)
}

func TestApplySortNumericWhenBothParse(t *testing.T) {
	rows := []fakeRow{
		{ID: "10", Name: "a"},
		{ID: "9", Name: "b"},
		{ID: "100", Name: "c"},
	}

	out := listquery.Apply(rows, nil, &listquery.SortSpec{Field: "id"}, nil)

	require.Len(t, out, 3)
	assert.Equal(t, "9", out[0].ID)
	assert.Equal(t, "10", out[1].ID)
	assert.Equal(t, "100", out[2].ID)
}

func TestApplySortDescending(t *testing.T) {
	rows := sampleRows()

	out := listquery.Apply(rows, nil, &listquery.SortSpec{Field: "id", Descending: true}, nil)

	require.Len(t, out, 3)
	assert.Equal(t, "3", out[0].ID)
	assert.Equal(t, "1", out[2].ID)
}

func TestApplyIsPure(t *testing.T) {
	rows := sampleRows()
	snap := fakeSnapshot{"customer/c1": "Acme Shipping"}
	filters := listquery.FilterSpec{
		{Field: "name", Match: listquery.MatchContains, Value: "steel"},
	}
	sortSpec := &listquery.SortSpec{Field: "client_id"}

	first := listquery.Apply(rows, filters, sortSpec, snap)
	second := listquery.Apply(rows, filters, sortSpec, snap)

	assert.Equal(t, first, second)
	// The input slice is never reordered.
	assert.Equal(t, "1", rows[0].ID)
	assert.Equal(t, "2", rows[1].ID)
	assert.Equal(t, "3", rows[2].ID)
}

func TestParseMatcher(t *testing.T) {
	m, ok := listquery.ParseMatcher("")
	require.True(t, ok)
	assert.Equal(t, listquery.MatchContains, m)

	m, ok = listquery.ParseMatcher(" Equals ")
	require.True(t, ok)
	assert.Equal(t, listquery.MatchEquals, m)

	_, ok = listquery.ParseMatcher("fuzzy")
	assert.False(t, ok)
}
