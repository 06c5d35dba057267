package model_test

import (
	"kmc/internal/domains/importer/model"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderMatches(t *testing.T) {
	reordered := slices.Clone(model.Header)
	reordered[1], reordered[2] = reordered[2], reordered[1]

	tests := []struct {
		name     string
		row      []string
		expected bool
	}{
		{name: "exact header", row: slices.Clone(model.Header), expected: true},
		{name: "missing last column", row: model.Header[:len(model.Header)-1], expected: false},
		{name: "extra column", row: append(slices.Clone(model.Header), "메모"), expected: false},
		{name: "swapped columns", row: reordered, expected: false},
		{name: "empty", row: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.HeaderMatches(tt.row))
		})
	}

	assert.Len(t, model.Header, 22)
}

func TestMapRow(t *testing.T) {
	full := []string{
		"1", "K001", "김선교", "이배우", "기관", "교단", "교회", "케냐",
		"010-1111", "a@kmc.org", "20251020", "1400", "20251025", "1100", "2", "부부",
		"010-2222", "Y", "N", "Y", "201", "S",
	}

	row, ok := model.MapRow(full)
	require.True(t, ok)
	assert.Equal(t, "1", row.SeqNo)
	assert.Equal(t, "K001", row.KmcCd)
	assert.Equal(t, "010-1111", row.DispatchAgencyPhone1Num)
	assert.Equal(t, "010-2222", row.PhoneNum)
	assert.Equal(t, "201", row.RoomNo)
	assert.Equal(t, "S", row.StatusCd)

	short, ok := model.MapRow([]string{"2", "K002", " 박선교 "})
	require.True(t, ok)
	assert.Equal(t, "박선교", short.UserNm)
	assert.Empty(t, short.StatusCd)

	_, ok = model.MapRow([]string{"", " ", ""})
	assert.False(t, ok)
}

func TestMapRows(t *testing.T) {
	rows := model.MapRows([][]string{{"1", "K001"}, {}, {"", ""}, {"2", "K002"}})

	require.Len(t, rows, 2)
	assert.Equal(t, "K002", rows[1].KmcCd)
}
