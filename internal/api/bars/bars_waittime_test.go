package bars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyWaitTime_Labels(t *testing.T) {
	tests := []struct {
		name    string
		reviews []string
		want    string
	}{
		{
			name:    "no reviews",
			reviews: nil,
			want:    WaitUnavailable,
		},
		{
			name:    "no crowd keywords",
			reviews: []string{"Great cocktails, friendly staff."},
			want:    WaitUnavailable,
		},
		{
			name:    "minimal",
			reviews: []string{"No wait on a Friday, amazing!"},
			want:    WaitMinimal,
		},
		{
			name:    "walked right in",
			reviews: []string{"We walked right in and got seats at the bar."},
			want:    WaitMinimal,
		},
		{
			name:    "very crowded",
			reviews: []string{"Totally packed by 10pm, shoulder to shoulder."},
			want:    WaitVeryCrowded,
		},
		{
			name:    "long",
			reviews: []string{"Waited over an hour for a table."},
			want:    WaitLong,
		},
		{
			name:    "generic crowd signal",
			reviews: []string{"Gets busy on weekends but worth it."},
			want:    WaitModerate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyWaitTime(tt.reviews))
		})
	}
}

func TestClassifyWaitTime_FirstMatchingReviewWins(t *testing.T) {
	reviews := []string{
		"Lovely decor and great music.",
		"No wait when we went early.",
		"Absolutely packed on Saturday, an hour in line.",
	}

	// The second review is the first with a crowd keyword; later,
	// stronger signals are not aggregated.
	assert.Equal(t, WaitMinimal, ClassifyWaitTime(reviews))
}
