package db

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	makerName = MustColumn("ma.m_name")
	productNm = MustColumn("p.p_name")
	colorName = MustColumn("cc.cc_name")
)

func strPtr(s string) *string {
	return &s
}

func TestBuildPredicate_NoConditions(t *testing.T) {
	predicate, params := BuildPredicate()
	assert.Equal(t, "1=1", predicate)
	assert.Empty(t, params)
}

func TestBuildPredicate_AllAbsent(t *testing.T) {
	predicate, params := BuildPredicate(
		ExactPtr(makerName, nil),
		AnySubstringPtr(productNm, nil),
		ExactPtr(colorName, nil),
	)
	assert.Equal(t, AlwaysTrue, predicate)
	assert.Empty(t, params)
}

func TestBuildPredicate_ProductSearch(t *testing.T) {
	predicate, params := BuildPredicate(
		Exact(makerName, "Nike"),
		AnySubstring(productNm, "shoe run"),
		Exact(colorName, "red"),
	)
	assert.Equal(t, "ma.m_name = ? AND (p.p_name LIKE ? OR p.p_name LIKE ?) AND cc.cc_name = ?", predicate)
	assert.Equal(t, []interface{}{"Nike", "%shoe%", "%run%", "red"}, params)
}

func TestBuildPredicate_AnySubstring(t *testing.T) {
	predicate, params := BuildPredicate(AnySubstring(productNm, "red blue"))
	assert.Equal(t, "(p.p_name LIKE ? OR p.p_name LIKE ?)", predicate)
	assert.Equal(t, []interface{}{"%red%", "%blue%"}, params)
}

func TestBuildPredicate_WhitespaceIsAbsent(t *testing.T) {
	testCases := []struct {
		name       string
		conditions []QueryCondition
	}{
		{name: "substring spaces", conditions: []QueryCondition{AnySubstring(productNm, "   ")}},
		{name: "substring tabs and newlines", conditions: []QueryCondition{AnySubstring(productNm, "\t\n ")}},
		{name: "exact empty", conditions: []QueryCondition{Exact(makerName, "")}},
		{name: "exact spaces", conditions: []QueryCondition{Exact(makerName, "  ")}},
		{name: "exact nil", conditions: []QueryCondition{Exact(makerName, nil)}},
		{name: "exact pointer to spaces", conditions: []QueryCondition{ExactPtr(makerName, strPtr(" "))}},
		{name: "nil condition", conditions: []QueryCondition{nil}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			predicate, params := BuildPredicate(tc.conditions...)
			assert.Equal(t, AlwaysTrue, predicate)
			assert.Empty(t, params)
		})
	}
}

func TestBuildPredicate_SkipsAbsentKeepingOrder(t *testing.T) {
	predicate, params := BuildPredicate(
		Exact(makerName, nil),
		AnySubstring(productNm, "  trail   "),
		Exact(colorName, "black"),
	)
	assert.Equal(t, "(p.p_name LIKE ?) AND cc.cc_name = ?", predicate)
	assert.Equal(t, []interface{}{"%trail%", "black"}, params)

	predicate, params = BuildPredicate(
		Exact(colorName, "black"),
		AnySubstring(productNm, ""),
		Exact(makerName, "Adidas"),
	)
	assert.Equal(t, "cc.cc_name = ? AND ma.m_name = ?", predicate)
	assert.Equal(t, []interface{}{"black", "Adidas"}, params)
}

func TestBuildPredicate_NonStringValues(t *testing.T) {
	seq := uint(7)
	var missing *uint

	predicate, params := BuildPredicate(
		Exact(MustColumn("p.p_seq"), &seq),
		Exact(MustColumn("p.m_seq"), missing),
		Exact(MustColumn("p.p_stock"), 0),
	)
	assert.Equal(t, "p.p_seq = ? AND p.p_stock = ?", predicate)
	assert.Equal(t, []interface{}{uint(7), 0}, params)
}

func TestBuildPredicate_PlaceholdersMatchParams(t *testing.T) {
	inputs := []string{"", "a", "a b", "  a   b  c ", "x\ty\nz w"}
	for _, maker := range []string{"", "Nike"} {
		for _, kwds := range inputs {
			for _, color := range []string{"", " ", "red"} {
				predicate, params := BuildPredicate(
					Exact(makerName, maker),
					AnySubstring(productNm, kwds),
					Exact(colorName, color),
				)
				assert.Equal(t, strings.Count(predicate, "?"), len(params), "predicate %q", predicate)
				assert.NotEmpty(t, predicate)
				assert.False(t, strings.HasPrefix(predicate, " AND"))
				assert.False(t, strings.HasSuffix(predicate, "AND "))
			}
		}
	}
}

func TestBuildPredicate_ValuesNeverInText(t *testing.T) {
	hostile := "x' OR '1'='1"
	predicate, params := BuildPredicate(
		Exact(makerName, hostile),
		AnySubstring(productNm, "'; DROP TABLE product; --"),
	)
	assert.NotContains(t, predicate, "'")
	assert.NotContains(t, predicate, "DROP")
	assert.Equal(t, hostile, params[0])
	assert.Equal(t, "%';%", params[1])
}

func TestBuildPredicate_Idempotent(t *testing.T) {
	conditions := []QueryCondition{
		Exact(makerName, "Nike"),
		AnySubstring(productNm, "shoe run"),
	}
	firstPredicate, firstParams := BuildPredicate(conditions...)
	secondPredicate, secondParams := BuildPredicate(conditions...)
	assert.Equal(t, firstPredicate, secondPredicate)
	assert.Equal(t, firstParams, secondParams)
}

func TestBuildPredicate_Concurrent(t *testing.T) {
	conditions := []QueryCondition{
		Exact(makerName, "Nike"),
		AnySubstring(productNm, "shoe run"),
		Exact(colorName, "red"),
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			predicate, params := BuildPredicate(conditions...)
			assert.Equal(t, "ma.m_name = ? AND (p.p_name LIKE ? OR p.p_name LIKE ?) AND cc.cc_name = ?", predicate)
			assert.Len(t, params, 4)
		}()
	}
	wg.Wait()
}

func TestMustColumn(t *testing.T) {
	assert.Equal(t, "p.p_name", MustColumn("p.p_name").String())
	assert.Equal(t, "p_name", MustColumn("p_name").String())

	for _, bad := range []string{"", "p.p_name = 1", "name;", "1col", "a.b.c", "p.p_name--", "(p_name)"} {
		require.Panics(t, func() { MustColumn(bad) }, "column %q", bad)
	}
}
