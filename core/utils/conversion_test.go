package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{nil, 0},
		{int64(3), 3},
		{int32(-2), -2},
		{float64(7.9), 7},
		{true, 1},
		{[]byte(" 42 "), 42},
		{"12", 12},
		{"abc", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToInt(tt.in), "%#v", tt.in)
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "text", ToString([]byte("text")))
	assert.Equal(t, "5", ToString(int64(5)))

	assert.Nil(t, ToStringPtr(nil))
	if p := ToStringPtr("NULL"); assert.NotNil(t, p) {
		assert.Equal(t, "NULL", *p)
	}
}

func TestPointerCells(t *testing.T) {
	// gorm scans raw rows into map[string]any with *any cells.
	cell := func(v any) any { return &v }

	assert.Equal(t, "name", ToString(cell("name")))
	assert.Equal(t, 1, ToInt(cell(int64(1))))
	assert.Nil(t, ToStringPtr(cell(nil)))
	if p := ToStringPtr(cell("'x'")); assert.NotNil(t, p) {
		assert.Equal(t, "'x'", *p)
	}

	var nilCell *any
	assert.Equal(t, "", ToString(nilCell))
	assert.Equal(t, 0, ToInt(nilCell))

	s := "7"
	assert.Equal(t, 7, ToInt(&s))
}
