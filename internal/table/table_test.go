package table

import (
	"testing"

	"github.com/dreamware/reldb/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moviesSchema() *domain.Schema {
	return domain.NewSchema([]domain.Attribute{
		{Name: "id", Tag: domain.Int32},
		{Name: "title", Tag: domain.String},
		{Name: "year", Tag: domain.Int32},
	}, "id")
}

func movieTuple(id int64, title string, year int64) domain.Tuple {
	return domain.Tuple{
		domain.NewInt(domain.Int32, id),
		domain.NewString(title),
		domain.NewInt(domain.Int32, year),
	}
}

func newMoviesTable(t *testing.T, idx Index) *Table {
	t.Helper()
	tbl := New(moviesSchema(), idx)
	movies := []domain.Tuple{
		movieTuple(1, "Star_Wars", 1977),
		movieTuple(2, "Jaws", 1975),
		movieTuple(3, "Alien", 1979),
		movieTuple(4, "The_Shining", 1980),
	}
	for _, m := range movies {
		require.NoError(t, tbl.Insert(m))
	}
	return tbl
}

func TestTable_InsertAndLen(t *testing.T) {
	for _, mk := range indexKinds() {
		t.Run(mk.name, func(t *testing.T) {
			tbl := newMoviesTable(t, mk.make())
			assert.Equal(t, 4, tbl.Len())
		})
	}
}

func TestTable_InsertOverwritesExistingKey(t *testing.T) {
	for _, mk := range indexKinds() {
		t.Run(mk.name, func(t *testing.T) {
			tbl := New(moviesSchema(), mk.make())
			require.NoError(t, tbl.Insert(movieTuple(1, "Star_Wars", 1977)))
			require.NoError(t, tbl.Insert(movieTuple(1, "Star_Wars_Special_Edition", 1997)))

			assert.Equal(t, 1, tbl.Len())

			rows, err := tbl.Select("")
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, domain.NewString("Star_Wars_Special_Edition"), (*rows[0])[1])
			assert.Equal(t, domain.NewInt(domain.Int32, 1997), (*rows[0])[2])
		})
	}
}

func TestTable_InsertDomainMismatch(t *testing.T) {
	tbl := New(moviesSchema(), NewBTreeIndex(0))
	err := tbl.Insert(domain.Tuple{domain.NewInt(domain.Int32, 1)}) // wrong arity
	assert.ErrorIs(t, err, domain.ErrDomainMismatch)
}

func TestTable_Select(t *testing.T) {
	for _, mk := range indexKinds() {
		t.Run(mk.name, func(t *testing.T) {
			tbl := newMoviesTable(t, mk.make())

			got, err := tbl.Select("1976 < year & year < 1980")
			require.NoError(t, err)
			sorted, err := SortByKey(got, tbl.Schema())
			require.NoError(t, err)

			require.Len(t, sorted, 2)
			assert.Equal(t, "Star_Wars", (*sorted[0])[1].Str())
			assert.Equal(t, "Alien", (*sorted[1])[1].Str())
		})
	}
}

func TestTable_SelectEmptyPredicateMatchesAll(t *testing.T) {
	tbl := newMoviesTable(t, NewBTreeIndex(0))
	got, err := tbl.Select("")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestTable_SelectIllFormedPredicate(t *testing.T) {
	tbl := newMoviesTable(t, NewBTreeIndex(0))
	_, err := tbl.Select("director == 'Lucas'")
	assert.ErrorIs(t, err, domain.ErrIllFormedPredicate)
}

func TestTable_Project(t *testing.T) {
	tbl := newMoviesTable(t, NewBTreeIndex(0))
	got, err := tbl.Project("title", "year")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Len(t, *got[0], 2)
}

func TestTable_ProjectUnknownAttribute(t *testing.T) {
	tbl := newMoviesTable(t, NewBTreeIndex(0))
	_, err := tbl.Project("director")
	assert.ErrorIs(t, err, domain.ErrDomainMismatch)
}

func TestTable_UnionDeduplicatesByKey(t *testing.T) {
	a := New(moviesSchema(), NewBTreeIndex(0))
	require.NoError(t, a.Insert(movieTuple(1, "Star_Wars", 1977)))
	require.NoError(t, a.Insert(movieTuple(2, "Jaws", 1975)))

	b := New(moviesSchema(), NewBTreeIndex(0))
	require.NoError(t, b.Insert(movieTuple(2, "Jaws", 1975))) // duplicate key
	require.NoError(t, b.Insert(movieTuple(3, "Alien", 1979)))

	got, err := a.Union(b)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestTable_Minus(t *testing.T) {
	a := newMoviesTable(t, NewBTreeIndex(0))
	b := New(moviesSchema(), NewBTreeIndex(0))
	require.NoError(t, b.Insert(movieTuple(2, "Jaws", 1975)))

	got, err := a.Minus(b)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for _, tup := range got {
		assert.NotEqual(t, int64(2), (*tup)[0].Int())
	}
}

func TestTable_JoinOnIndexedPrimaryKey(t *testing.T) {
	movies := newMoviesTable(t, NewBTreeIndex(0))

	ratingsSchema := domain.NewSchema([]domain.Attribute{
		{Name: "movie_id", Tag: domain.Int32},
		{Name: "score", Tag: domain.Int32},
	}, "movie_id")
	ratings := New(ratingsSchema, NewBTreeIndex(0))
	require.NoError(t, ratings.Insert(domain.Tuple{domain.NewInt(domain.Int32, 1), domain.NewInt(domain.Int32, 9)}))
	require.NoError(t, ratings.Insert(domain.Tuple{domain.NewInt(domain.Int32, 3), domain.NewInt(domain.Int32, 8)}))

	joined, err := movies.Join(ratings, "id", "movie_id")
	require.NoError(t, err)
	require.Len(t, joined, 2)

	byTitle := map[string]int64{}
	for _, jt := range joined {
		byTitle[(*jt.Left)[1].Str()] = (*jt.Right)[1].Int()
	}
	assert.Equal(t, int64(9), byTitle["Star_Wars"])
	assert.Equal(t, int64(8), byTitle["Alien"])
}

func TestTable_JoinNonIndexedAttribute(t *testing.T) {
	movies := newMoviesTable(t, NewBTreeIndex(0))

	other := New(moviesSchema(), NewBTreeIndex(0))
	require.NoError(t, other.Insert(movieTuple(100, "Star_Wars", 1977)))

	joined, err := movies.Join(other, "title", "title")
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, int64(1), (*joined[0].Left)[0].Int())
	assert.Equal(t, int64(100), (*joined[0].Right)[0].Int())
}

type indexKind struct {
	name string
	make func() Index
}

func indexKinds() []indexKind {
	return []indexKind{
		{name: "btree", make: func() Index { return NewBTreeIndex(0) }},
		{name: "exthash", make: func() Index { return NewHashIndex(2) }},
	}
}
