package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/skillplot/skillplot/util"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////

// createRandomUser inserts a user with a hashed random password and returns
// it together with the plaintext password.
func createRandomUser(t *testing.T) (User, string) {
	password := util.RandomString(10)
	hash, err := util.HashPassword(password)
	require.NoError(t, err)

	arg := CreateUserParams{
		Name:          util.RandomName(),
		Email:         util.RandomEmail(),
		PasswordHash:  hash,
		Title:         pgtype.Text{String: util.RandomJobTitle(), Valid: true},
		Location:      pgtype.Text{String: util.RandomName(), Valid: true},
		PortfolioSlug: pgtype.UUID{Bytes: uuid.New(), Valid: true},
	}

	user, err := testQueries.CreateUser(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	require.Equal(t, arg.Name, user.Name)
	require.Equal(t, arg.Email, user.Email)
	require.True(t, user.PortfolioSlug.Valid)
	require.NotZero(t, user.ID)

	return user, password
}

////////////////////////////////////////////////////////////////////////

// createRandomSkill inserts a skill (without history) for the given user.
func createRandomSkill(t *testing.T, userID int64) Skill {
	arg := CreateSkillParams{
		UserID:    userID,
		SkillName: util.RandomSkillName(),
	}

	skill, err := testQueries.CreateSkill(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, skill)

	require.Equal(t, arg.UserID, skill.UserID)
	require.Equal(t, arg.SkillName, skill.SkillName)
	require.NotZero(t, skill.ID)

	return skill
}

////////////////////////////////////////////////////////////////////////

// createRandomProficiency appends a history entry to the given skill.
func createRandomProficiency(t *testing.T, skillID int64, day time.Time) Proficiency {
	arg := CreateProficiencyParams{
		SkillID:    skillID,
		Level:      util.RandomLevel(),
		RecordedAt: pgtype.Date{Time: day, Valid: true},
	}

	prof, err := testQueries.CreateProficiency(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, prof)

	require.Equal(t, arg.SkillID, prof.SkillID)
	require.Equal(t, arg.Level, prof.Level)

	return prof
}

////////////////////////////////////////////////////////////////////////

// createRandomProject inserts a project for the given user.
func createRandomProject(t *testing.T, userID int64) Project {
	start := time.Now().AddDate(0, -6, 0)

	arg := CreateProjectParams{
		UserID:      userID,
		Title:       util.RandomProjectTitle(),
		Description: util.RandomDescription(),
		Tags:        []string{util.RandomName(), util.RandomName()},
		StartDate:   pgtype.Date{Time: start, Valid: true},
		EndDate:     pgtype.Date{Time: start.AddDate(0, 3, 0), Valid: true},
		Link:        pgtype.Text{String: "https://example.com/" + util.RandomName(), Valid: true},
	}

	project, err := testQueries.CreateProject(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, project)

	require.Equal(t, arg.UserID, project.UserID)
	require.Equal(t, arg.Title, project.Title)
	require.Equal(t, arg.Tags, project.Tags)

	return project
}

////////////////////////////////////////////////////////////////////////

// createRandomJob inserts a posting into the local job catalog.
func createRandomJob(t *testing.T) Job {
	arg := CreateJobParams{
		Title:       util.RandomJobTitle(),
		Company:     util.RandomName(),
		Tags:        []string{"react", "node.js"},
		Location:    util.RandomName(),
		Salary:      pgtype.Text{String: "N/A", Valid: true},
		Description: pgtype.Text{String: util.RandomDescription(), Valid: true},
	}

	job, err := testQueries.CreateJob(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, job)

	require.Equal(t, arg.Title, job.Title)
	require.Equal(t, arg.Company, job.Company)

	return job
}
