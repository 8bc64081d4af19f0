package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  [][]int
	}{
		{
			// 1st is a Monday; fits exactly in 5 weeks
			name:  "September 2025",
			year:  2025,
			month: time.September,
			want: [][]int{
				{1, 2, 3, 4, 5, 6, 7},
				{8, 9, 10, 11, 12, 13, 14},
				{15, 16, 17, 18, 19, 20, 21},
				{22, 23, 24, 25, 26, 27, 28},
				{29, 30, 0, 0, 0, 0, 0},
			},
		},
		{
			// 1st is a Sunday; leading week almost empty
			name:  "June 2025",
			year:  2025,
			month: time.June,
			want: [][]int{
				{0, 0, 0, 0, 0, 0, 1},
				{2, 3, 4, 5, 6, 7, 8},
				{9, 10, 11, 12, 13, 14, 15},
				{16, 17, 18, 19, 20, 21, 22},
				{23, 24, 25, 26, 27, 28, 29},
				{30, 0, 0, 0, 0, 0, 0},
			},
		},
		{
			name:  "February 2024 (leap)",
			year:  2024,
			month: time.February,
			want: [][]int{
				{0, 0, 0, 1, 2, 3, 4},
				{5, 6, 7, 8, 9, 10, 11},
				{12, 13, 14, 15, 16, 17, 18},
				{19, 20, 21, 22, 23, 24, 25},
				{26, 27, 28, 29, 0, 0, 0},
			},
		},
		{
			// exactly 4 weeks, no padding at all
			name:  "February 2021",
			year:  2021,
			month: time.February,
			want: [][]int{
				{1, 2, 3, 4, 5, 6, 7},
				{8, 9, 10, 11, 12, 13, 14},
				{15, 16, 17, 18, 19, 20, 21},
				{22, 23, 24, 25, 26, 27, 28},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthGrid(tt.year, tt.month))
		})
	}
}

func TestMonthGrid_rowsAlwaysSeven(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		for _, week := range MonthGrid(2025, month) {
			assert.Len(t, week, 7)
		}
	}
}
