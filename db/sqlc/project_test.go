package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/skillplot/skillplot/util"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////

func TestCreateProject(t *testing.T) {
	user, _ := createRandomUser(t)
	createRandomProject(t, user.ID)
}

////////////////////////////////////////////////////////////////////////

func TestGetProject(t *testing.T) {
	user, _ := createRandomUser(t)
	project1 := createRandomProject(t, user.ID)

	project2, err := testQueries.GetProject(context.Background(), project1.ID)

	require.NoError(t, err)
	require.Equal(t, project1.ID, project2.ID)
	require.Equal(t, project1.Title, project2.Title)
	require.Equal(t, project1.Tags, project2.Tags)
}

////////////////////////////////////////////////////////////////////////

func TestListProjectsByUser(t *testing.T) {
	user, _ := createRandomUser(t)
	for i := 0; i < 3; i++ {
		createRandomProject(t, user.ID)
	}

	projects, err := testQueries.ListProjectsByUser(context.Background(), user.ID)

	require.NoError(t, err)
	require.Len(t, projects, 3)
	for _, project := range projects {
		require.Equal(t, user.ID, project.UserID)
	}
}

////////////////////////////////////////////////////////////////////////

func TestUpdateProject(t *testing.T) {
	user, _ := createRandomUser(t)
	project1 := createRandomProject(t, user.ID)

	arg := UpdateProjectParams{
		ID:          project1.ID,
		Title:       util.RandomProjectTitle(),
		Description: util.RandomDescription(),
		Tags:        []string{"go", "postgres"},
		StartDate:   pgtype.Date{Time: time.Now().AddDate(-1, 0, 0), Valid: true},
		EndDate:     pgtype.Date{Time: time.Now(), Valid: true},
		Link:        project1.Link,
		Image:       project1.Image,
	}

	project2, err := testQueries.UpdateProject(context.Background(), arg)

	require.NoError(t, err)
	require.Equal(t, project1.ID, project2.ID)
	require.Equal(t, arg.Title, project2.Title)
	require.Equal(t, arg.Tags, project2.Tags)
}

////////////////////////////////////////////////////////////////////////

func TestDeleteProject(t *testing.T) {
	user, _ := createRandomUser(t)
	project := createRandomProject(t, user.ID)

	err := testQueries.DeleteProject(context.Background(), project.ID)
	require.NoError(t, err)

	_, err = testQueries.GetProject(context.Background(), project.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}
