package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilterNormalize(t *testing.T) {
	cases := []struct {
		name     string
		in       PageFilter
		page     int
		pageSize int
	}{
		{"defaults", PageFilter{}, 1, 100},
		{"negative page", PageFilter{Page: -3, PageSize: 20}, 1, 20},
		{"capped page size", PageFilter{Page: 2, PageSize: 5000}, 2, 1000},
		{"kept as-is", PageFilter{Page: 4, PageSize: 50}, 4, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Normalize()
			assert.Equal(t, tc.page, tc.in.Page)
			assert.Equal(t, tc.pageSize, tc.in.PageSize)
		})
	}
}

func TestPageFilterOffset(t *testing.T) {
	f := PageFilter{Page: 3, PageSize: 50}
	assert.Equal(t, 100, f.Offset())
}

func TestIsValidActivityType(t *testing.T) {
	for _, v := range ActivityTypes {
		assert.True(t, IsValidActivityType(v), v)
	}
	assert.False(t, IsValidActivityType("DANCING"))
	assert.False(t, IsValidActivityType(""))
	assert.False(t, IsValidActivityType("loading"), "categories are case sensitive")
}
