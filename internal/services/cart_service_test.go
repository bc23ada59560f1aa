package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shopfront/internal/catalog"
	"shopfront/internal/services"
	"shopfront/internal/store"
)

func TestCartAddAndTotals(t *testing.T) {
	cart := services.NewCartService(memstore(t), catalog.Fixed())

	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Add("p4"))

	lines, subtotal := cart.Totals()
	require.Len(t, lines, 2)
	require.EqualValues(t, 3999*2+1999*1, subtotal) // 9997

	// catalog order: p1 before p4
	require.Equal(t, "p1", lines[0].Product.ID)
	require.Equal(t, 2, lines[0].Qty)
	require.EqualValues(t, 7998, lines[0].LineTotal)
	require.Equal(t, "p4", lines[1].Product.ID)
	require.Equal(t, 1, lines[1].Qty)
}

func TestCartAddUnknownProduct(t *testing.T) {
	cart := services.NewCartService(memstore(t), catalog.Fixed())
	require.ErrorIs(t, cart.Add("bogus"), services.ErrUnknownProduct)
	lines, _ := cart.Totals()
	require.Empty(t, lines)
}

func TestCartUpdateRemovesAtZero(t *testing.T) {
	st := memstore(t)
	cart := services.NewCartService(st, catalog.Fixed())

	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Update("p1", -2))

	lines, subtotal := cart.Totals()
	require.Empty(t, lines)
	require.Zero(t, subtotal)

	// the entry is gone from the persisted blob, not stored as zero
	raw := map[string]int{}
	st.Load(store.KeyCart, &raw)
	_, present := raw["p1"]
	require.False(t, present)
}

func TestCartQuantitiesStayPositive(t *testing.T) {
	st := memstore(t)
	cart := services.NewCartService(st, catalog.Fixed())

	ops := []struct {
		id    string
		delta int
	}{
		{"p1", 0}, {"p2", 0}, {"p1", 0}, // adds
		{"p1", -1}, {"p2", 3}, {"p2", -10}, {"p3", -5},
	}
	for i, op := range ops {
		if i < 3 {
			require.NoError(t, cart.Add(op.id))
			continue
		}
		require.NoError(t, cart.Update(op.id, op.delta))
	}

	raw := map[string]int{}
	st.Load(store.KeyCart, &raw)
	for id, qty := range raw {
		require.Positivef(t, qty, "entry %s has non-positive qty %d", id, qty)
	}
}

func TestCartUpdateAbsentIsNoop(t *testing.T) {
	cart := services.NewCartService(memstore(t), catalog.Fixed())
	require.NoError(t, cart.Update("p1", 5))
	lines, _ := cart.Totals()
	require.Empty(t, lines)
}

func TestCartTotalsDropsUnknownEntries(t *testing.T) {
	st := memstore(t)
	// a stale blob referencing a product no longer in the catalog
	require.NoError(t, st.Save(store.KeyCart, map[string]int{"p1": 1, "discontinued": 3}))

	cart := services.NewCartService(st, catalog.Fixed())
	lines, subtotal := cart.Totals()
	require.Len(t, lines, 1)
	require.Equal(t, "p1", lines[0].Product.ID)
	require.EqualValues(t, 3999, subtotal)
}

func TestCartClear(t *testing.T) {
	cart := services.NewCartService(memstore(t), catalog.Fixed())
	require.NoError(t, cart.Add("p1"))
	require.NoError(t, cart.Clear())
	lines, subtotal := cart.Totals()
	require.Empty(t, lines)
	require.Zero(t, subtotal)
}
