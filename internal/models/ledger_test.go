package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsRequiredFor(t *testing.T) {
	cases := map[int]int{
		0:  0,
		1:  20,
		3:  20,
		4:  40,
		6:  40,
		7:  60,
		9:  60,
		10: 80,
		12: 80,
		13: 0,
	}

	for gradeNumber, expected := range cases {
		assert.Equal(t, expected, PointsRequiredFor(gradeNumber), "grade %d", gradeNumber)
	}
}

func TestInitialStatusForMode(t *testing.T) {
	assert.Equal(t, SubmissionStatusRequested, InitialStatusForMode(SubmissionModeClassRequest))
	assert.Equal(t, SubmissionStatusSubmitted, InitialStatusForMode(SubmissionModeSelfSubmit))
}

func TestSubmissionIsOpen(t *testing.T) {
	assert.True(t, Submission{Status: SubmissionStatusRequested}.IsOpen())
	assert.True(t, Submission{Status: SubmissionStatusSubmitted}.IsOpen())
	assert.False(t, Submission{Status: SubmissionStatusApproved}.IsOpen())
	assert.False(t, Submission{Status: SubmissionStatusRejected}.IsOpen())
}
