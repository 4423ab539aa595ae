package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/skillplot/skillplot/util"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////

func TestCreateSkillWithHistory(t *testing.T) {
	user, _ := createRandomUser(t)

	arg := CreateSkillTxParams{
		UserID:    user.ID,
		SkillName: util.RandomSkillName(),
		History: []ProficiencyEntry{
			{Level: 2, RecordedAt: pgtype.Date{Time: time.Now().AddDate(0, -4, 0), Valid: true}},
			{Level: 4, RecordedAt: pgtype.Date{Time: time.Now(), Valid: true}},
		},
	}

	result, err := testStore.CreateSkillWithHistory(context.Background(), arg)

	require.NoError(t, err)
	require.Equal(t, arg.SkillName, result.Skill.SkillName)
	require.Len(t, result.History, 2)

	// The derived current level is the most recent entry.
	levels, err := testQueries.ListUserSkillLevels(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	require.Equal(t, int32(4), levels[0].Level)
}

////////////////////////////////////////////////////////////////////////

func TestUpdateSkillWithHistoryReplaces(t *testing.T) {
	user, _ := createRandomUser(t)

	created, err := testStore.CreateSkillWithHistory(context.Background(), CreateSkillTxParams{
		UserID:    user.ID,
		SkillName: util.RandomSkillName(),
		History: []ProficiencyEntry{
			{Level: 1, RecordedAt: pgtype.Date{Time: time.Now().AddDate(0, -6, 0), Valid: true}},
			{Level: 2, RecordedAt: pgtype.Date{Time: time.Now().AddDate(0, -3, 0), Valid: true}},
		},
	})
	require.NoError(t, err)

	newName := util.RandomSkillName()
	updated, err := testStore.UpdateSkillWithHistory(context.Background(), UpdateSkillTxParams{
		SkillID:   created.Skill.ID,
		SkillName: newName,
		History: []ProficiencyEntry{
			{Level: 5, RecordedAt: pgtype.Date{Time: time.Now(), Valid: true}},
		},
	})

	require.NoError(t, err)
	require.Equal(t, created.Skill.ID, updated.Skill.ID)
	require.Equal(t, newName, updated.Skill.SkillName)

	// The old history is gone; only the replacement entry remains.
	history, err := testQueries.ListProficienciesBySkill(context.Background(), created.Skill.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, int32(5), history[0].Level)
}

////////////////////////////////////////////////////////////////////////

func TestCreateSkillWithHistoryRollsBackOnDuplicate(t *testing.T) {
	user, _ := createRandomUser(t)
	existing := createRandomSkill(t, user.ID)

	// Second insert with the same name violates the unique constraint; the
	// whole transaction must roll back, leaving no orphan history rows.
	_, err := testStore.CreateSkillWithHistory(context.Background(), CreateSkillTxParams{
		UserID:    user.ID,
		SkillName: existing.SkillName,
		History: []ProficiencyEntry{
			{Level: 3, RecordedAt: pgtype.Date{Time: time.Now(), Valid: true}},
		},
	})
	require.Error(t, err)

	skills, err := testQueries.ListSkillsByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, skills, 1)
}
