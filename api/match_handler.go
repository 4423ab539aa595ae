// api/match_handler.go

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillplot/skillplot/jooble"
	"github.com/skillplot/skillplot/match"
)

////////////////////////////////////////////////////////////////////////
// Skill Lookup Helpers
////////////////////////////////////////////////////////////////////////

// userSkillNames returns the names of the caller's skills, for scoring job
// postings.
func (server *Server) userSkillNames(ctx *gin.Context, userID int64) ([]string, error) {
	rows, err := server.store.ListUserSkillLevels(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.SkillName)
	}
	return names, nil
}

// userSkillLevels returns the caller's skills with their current proficiency
// levels, for role gap analysis.
func (server *Server) userSkillLevels(ctx *gin.Context, userID int64) ([]match.UserSkill, error) {
	rows, err := server.store.ListUserSkillLevels(ctx, userID)
	if err != nil {
		return nil, err
	}
	skills := make([]match.UserSkill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, match.UserSkill{
			Skill: row.SkillName,
			Level: int(row.Level),
		})
	}
	return skills, nil
}

////////////////////////////////////////////////////////////////////////
// External Job Search: /jooble/search
////////////////////////////////////////////////////////////////////////

type searchJobsRequest struct {
	Keywords string `json:"keywords" binding:"required"`
	Location string `json:"location"`
	Page     int    `json:"page"`
}

// searchExternalJobs handles POST /jooble/search: forwards the query to the
// provider and scores every posting against the caller's skills. The
// optional "filter" query parameter narrows the result to one match band,
// and "sort=score" orders the matches best first; without it the provider's
// ordering is kept.
func (server *Server) searchExternalJobs(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	var req searchJobsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	skillNames, err := server.userSkillNames(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	postings, err := server.jobSource.Search(ctx, jooble.SearchRequest{
		Keywords: req.Keywords,
		Location: req.Location,
		Page:     req.Page,
	})
	if err != nil {
		ctx.JSON(http.StatusBadGateway, errorResponse(err))
		return
	}

	matches := match.ScoreAll(skillNames, postings)

	if ctx.Query("sort") == "score" {
		match.SortByScore(matches)
	}

	category := match.ParseCategory(ctx.Query("filter"))
	matches = match.FilterByCategory(matches, category)

	ctx.JSON(http.StatusOK, gin.H{"data": matches})
}

////////////////////////////////////////////////////////////////////////
// Role Comparison: /roles, /roles/:role/comparison
////////////////////////////////////////////////////////////////////////

// listRoles handles GET /roles: the names of the built-in target roles.
func (server *Server) listRoles(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"data": server.roles.Names()})
}

type roleComparisonResponse struct {
	Role         string           `json:"role"`
	OverallMatch int              `json:"overall_match"`
	Skills       []match.SkillGap `json:"skills"`
	Deficits     []match.SkillGap `json:"deficits"`
}

// compareRole handles GET /roles/:role/comparison: the caller's current
// levels measured against every requirement of the chosen role, plus the
// deficits sorted by how far behind they are.
func (server *Server) compareRole(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	roleName := ctx.Param("role")
	role, ok := server.roles.Lookup(roleName)
	if !ok {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("unknown role")))
		return
	}

	skills, err := server.userSkillLevels(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	report := match.AnalyzeGaps(skills, role.Requirements)

	ctx.JSON(http.StatusOK, gin.H{"data": roleComparisonResponse{
		Role:         role.Name,
		OverallMatch: report.OverallMatch,
		Skills:       report.Gaps,
		Deficits:     report.Deficits(),
	}})
}
