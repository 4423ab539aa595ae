package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////

func TestCreateJob(t *testing.T) {
	createRandomJob(t)
}

////////////////////////////////////////////////////////////////////////

func TestGetJob(t *testing.T) {
	job1 := createRandomJob(t)

	job2, err := testQueries.GetJob(context.Background(), job1.ID)

	require.NoError(t, err)
	require.Equal(t, job1.ID, job2.ID)
	require.Equal(t, job1.Title, job2.Title)
	require.Equal(t, job1.Tags, job2.Tags)
}

////////////////////////////////////////////////////////////////////////

func TestListJobs(t *testing.T) {
	job := createRandomJob(t)

	jobs, err := testQueries.ListJobs(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, jobs)

	// Newest first: the posting just created leads the list.
	require.Equal(t, job.ID, jobs[0].ID)
}
