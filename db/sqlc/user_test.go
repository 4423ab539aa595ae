package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/skillplot/skillplot/util"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////

func TestCreateUser(t *testing.T) {
	createRandomUser(t)
}

////////////////////////////////////////////////////////////////////////

func TestGetUser(t *testing.T) {
	user1, _ := createRandomUser(t)

	user2, err := testQueries.GetUser(context.Background(), user1.ID)

	require.NoError(t, err)
	require.NotEmpty(t, user2)

	require.Equal(t, user1.ID, user2.ID)
	require.Equal(t, user1.Email, user2.Email)
	require.Equal(t, user1.PasswordHash, user2.PasswordHash)
	require.Equal(t, user1.PortfolioSlug, user2.PortfolioSlug)
}

////////////////////////////////////////////////////////////////////////

func TestGetUserByEmail(t *testing.T) {
	user1, _ := createRandomUser(t)

	user2, err := testQueries.GetUserByEmail(context.Background(), user1.Email)

	require.NoError(t, err)
	require.Equal(t, user1.ID, user2.ID)
}

////////////////////////////////////////////////////////////////////////

func TestGetUserByPortfolioSlug(t *testing.T) {
	user1, _ := createRandomUser(t)

	user2, err := testQueries.GetUserByPortfolioSlug(context.Background(), user1.PortfolioSlug)

	require.NoError(t, err)
	require.Equal(t, user1.ID, user2.ID)
}

////////////////////////////////////////////////////////////////////////

func TestUpdateUser(t *testing.T) {
	user1, _ := createRandomUser(t)

	arg := UpdateUserParams{
		ID:       user1.ID,
		Name:     util.RandomName(),
		Email:    user1.Email,
		Title:    pgtype.Text{String: "Platform Engineer", Valid: true},
		Location: user1.Location,
		Phone:    pgtype.Text{String: "555-0101", Valid: true},
		Bio:      pgtype.Text{String: util.RandomDescription(), Valid: true},
	}

	user2, err := testQueries.UpdateUser(context.Background(), arg)

	require.NoError(t, err)
	require.Equal(t, arg.Name, user2.Name)
	require.Equal(t, "Platform Engineer", user2.Title.String)
	require.Equal(t, "555-0101", user2.Phone.String)
	// The password hash and slug are untouched by a profile update.
	require.Equal(t, user1.PasswordHash, user2.PasswordHash)
	require.Equal(t, user1.PortfolioSlug, user2.PortfolioSlug)
}

////////////////////////////////////////////////////////////////////////

func TestUpdateUserPassword(t *testing.T) {
	user1, _ := createRandomUser(t)

	newHash, err := util.HashPassword(util.RandomString(12))
	require.NoError(t, err)

	err = testQueries.UpdateUserPassword(context.Background(), UpdateUserPasswordParams{
		ID:           user1.ID,
		PasswordHash: newHash,
	})
	require.NoError(t, err)

	user2, err := testQueries.GetUser(context.Background(), user1.ID)
	require.NoError(t, err)
	require.Equal(t, newHash, user2.PasswordHash)
}

////////////////////////////////////////////////////////////////////////

func TestDeleteUserCascades(t *testing.T) {
	user, _ := createRandomUser(t)
	skill := createRandomSkill(t, user.ID)

	err := testQueries.DeleteUser(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = testQueries.GetUser(context.Background(), user.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	// The owned skill goes with the account.
	_, err = testQueries.GetSkill(context.Background(), skill.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}
