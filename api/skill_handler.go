// api/skill_handler.go

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/skillplot/skillplot/db/sqlc"
)

////////////////////////////////////////////////////////////////////////
// Request/Response Shapes
////////////////////////////////////////////////////////////////////////

// proficiencyEntryRequest is one dated level observation in a skill payload.
type proficiencyEntryRequest struct {
	Date  string `json:"date" binding:"required"`
	Level int32  `json:"level" binding:"required,min=1,max=5"`
}

type skillRequest struct {
	Skill       string                    `json:"skill" binding:"required"`
	Proficiency []proficiencyEntryRequest `json:"proficiency" binding:"required,min=1,dive"`
}

type proficiencyEntryResponse struct {
	Date  string `json:"date"`
	Level int32  `json:"level"`
}

type skillResponse struct {
	ID          int64                      `json:"id"`
	Skill       string                     `json:"skill"`
	Proficiency []proficiencyEntryResponse `json:"proficiency"`
}

// parseHistory validates and converts the request's proficiency entries.
// Dates are accepted as plain days or full RFC 3339 timestamps, since the
// client sends both depending on the form used.
func parseHistory(entries []proficiencyEntryRequest) ([]db.ProficiencyEntry, error) {
	history := make([]db.ProficiencyEntry, 0, len(entries))
	for _, entry := range entries {
		day, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			day, err = time.Parse(time.RFC3339, entry.Date)
			if err != nil {
				return nil, fmt.Errorf("invalid proficiency date %q", entry.Date)
			}
		}
		history = append(history, db.ProficiencyEntry{
			Level:      entry.Level,
			RecordedAt: pgtype.Date{Time: day, Valid: true},
		})
	}
	return history, nil
}

func newSkillResponse(skill db.Skill, history []db.Proficiency) skillResponse {
	rsp := skillResponse{
		ID:          skill.ID,
		Skill:       skill.SkillName,
		Proficiency: make([]proficiencyEntryResponse, 0, len(history)),
	}
	for _, entry := range history {
		rsp.Proficiency = append(rsp.Proficiency, proficiencyEntryResponse{
			Date:  entry.RecordedAt.Time.Format("2006-01-02"),
			Level: entry.Level,
		})
	}
	return rsp
}

////////////////////////////////////////////////////////////////////////
// Handlers
////////////////////////////////////////////////////////////////////////

// listSkills handles GET /skills: every skill of the caller, with its full
// proficiency history in chronological order.
func (server *Server) listSkills(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	skills, err := server.store.ListSkillsByUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	rsp := make([]skillResponse, 0, len(skills))
	for _, skill := range skills {
		history, err := server.store.ListProficienciesBySkill(ctx, skill.ID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, errorResponse(err))
			return
		}
		rsp = append(rsp, newSkillResponse(skill, history))
	}

	ctx.JSON(http.StatusOK, gin.H{"data": rsp})
}

// createSkill handles POST /skills. A skill always starts with at least one
// proficiency entry; the insert is transactional so the two never diverge.
func (server *Server) createSkill(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	var req skillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	history, err := parseHistory(req.Proficiency)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Duplicate names are rejected case-insensitively.
	_, err = server.store.GetSkillByName(ctx, db.GetSkillByNameParams{
		UserID:    userID,
		SkillName: req.Skill,
	})
	if err == nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("a skill with this name already exists")))
		return
	} else if err != pgx.ErrNoRows {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	result, err := server.store.CreateSkillWithHistory(ctx, db.CreateSkillTxParams{
		UserID:    userID,
		SkillName: req.Skill,
		History:   history,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": newSkillResponse(result.Skill, result.History)})
}

// updateSkill handles PUT /skills/:id: rename plus full history replacement.
func (server *Server) updateSkill(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	skillID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid skill id")))
		return
	}

	var req skillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	history, err := parseHistory(req.Proficiency)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	skill, err := server.store.GetSkill(ctx, skillID)
	if err != nil {
		if err == pgx.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("skill not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if skill.UserID != userID {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("skill not found")))
		return
	}

	// The new name must not collide with a different skill of the same user.
	existing, err := server.store.GetSkillByName(ctx, db.GetSkillByNameParams{
		UserID:    userID,
		SkillName: req.Skill,
	})
	if err == nil && existing.ID != skillID {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("a skill with this name already exists")))
		return
	} else if err != nil && err != pgx.ErrNoRows {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	result, err := server.store.UpdateSkillWithHistory(ctx, db.UpdateSkillTxParams{
		SkillID:   skillID,
		SkillName: req.Skill,
		History:   history,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": newSkillResponse(result.Skill, result.History)})
}

// deleteSkill handles DELETE /skills/:id.
func (server *Server) deleteSkill(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	skillID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid skill id")))
		return
	}

	skill, err := server.store.GetSkill(ctx, skillID)
	if err != nil {
		if err == pgx.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("skill not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if skill.UserID != userID {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("skill not found")))
		return
	}

	if err := server.store.DeleteSkill(ctx, skillID); err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "skill deleted successfully"})
}
