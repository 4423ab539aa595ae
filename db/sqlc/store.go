// db/store.go

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

////////////////////////////////////////////////////////////////////////
// Store Definition
////////////////////////////////////////////////////////////////////////

// Store provides all functions to execute db queries and transactions.
type Store struct {
	*Queries
	dbpool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(dbpool *pgxpool.Pool) *Store {
	return &Store{
		dbpool:  dbpool,
		Queries: New(dbpool),
	}
}

// execTx executes a function within a database transaction.
func (s *Store) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.dbpool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // Rollback is a no-op if the transaction has been committed.

	q := New(tx)
	err = fn(q)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

////////////////////////////////////////////////////////////////////////
// Transaction: CreateSkillWithHistory
////////////////////////////////////////////////////////////////////////

// ProficiencyEntry is one dated level observation supplied by the client.
type ProficiencyEntry struct {
	Level      int32       `json:"level"`
	RecordedAt pgtype.Date `json:"recorded_at"`
}

// CreateSkillTxParams contains the parameters for the CreateSkillWithHistory transaction.
type CreateSkillTxParams struct {
	UserID    int64
	SkillName string
	History   []ProficiencyEntry
}

// CreateSkillTxResult contains the result of the CreateSkillWithHistory transaction.
type CreateSkillTxResult struct {
	Skill   Skill         `json:"skill"`
	History []Proficiency `json:"history"`
}

// CreateSkillWithHistory inserts a skill together with its initial
// proficiency history in a single transaction, so a skill can never exist
// without at least one history entry.
func (s *Store) CreateSkillWithHistory(
	ctx context.Context,
	arg CreateSkillTxParams,
) (CreateSkillTxResult, error) {
	var result CreateSkillTxResult

	err := s.execTx(ctx, func(q *Queries) error {
		skill, err := q.CreateSkill(ctx, CreateSkillParams{
			UserID:    arg.UserID,
			SkillName: arg.SkillName,
		})
		if err != nil {
			return fmt.Errorf("failed to create skill: %w", err)
		}
		result.Skill = skill

		for _, entry := range arg.History {
			prof, err := q.CreateProficiency(ctx, CreateProficiencyParams{
				SkillID:    skill.ID,
				Level:      entry.Level,
				RecordedAt: entry.RecordedAt,
			})
			if err != nil {
				return fmt.Errorf("failed to record proficiency: %w", err)
			}
			result.History = append(result.History, prof)
		}

		return nil
	})

	return result, err
}

////////////////////////////////////////////////////////////////////////
// Transaction: UpdateSkillWithHistory
////////////////////////////////////////////////////////////////////////

// UpdateSkillTxParams contains the parameters for the UpdateSkillWithHistory transaction.
type UpdateSkillTxParams struct {
	SkillID   int64
	SkillName string
	History   []ProficiencyEntry
}

// UpdateSkillWithHistory renames a skill and replaces its proficiency history
// atomically. The client always sends the full history on update, so
// replacement (not append) is the correct semantics.
func (s *Store) UpdateSkillWithHistory(
	ctx context.Context,
	arg UpdateSkillTxParams,
) (CreateSkillTxResult, error) {
	var result CreateSkillTxResult

	err := s.execTx(ctx, func(q *Queries) error {
		skill, err := q.UpdateSkillName(ctx, UpdateSkillNameParams{
			ID:        arg.SkillID,
			SkillName: arg.SkillName,
		})
		if err != nil {
			return fmt.Errorf("failed to rename skill: %w", err)
		}
		result.Skill = skill

		if err := q.DeleteProficienciesBySkill(ctx, skill.ID); err != nil {
			return fmt.Errorf("failed to clear proficiency history: %w", err)
		}

		for _, entry := range arg.History {
			prof, err := q.CreateProficiency(ctx, CreateProficiencyParams{
				SkillID:    skill.ID,
				Level:      entry.Level,
				RecordedAt: entry.RecordedAt,
			})
			if err != nil {
				return fmt.Errorf("failed to record proficiency: %w", err)
			}
			result.History = append(result.History, prof)
		}

		return nil
	})

	return result, err
}
