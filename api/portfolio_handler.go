// api/portfolio_handler.go

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

////////////////////////////////////////////////////////////////////////
// Public Portfolio: /portfolio/:slug
////////////////////////////////////////////////////////////////////////

type portfolioSkill struct {
	Skill string `json:"skill"`
	Level int32  `json:"level"`
}

type portfolioResponse struct {
	Name     string            `json:"name"`
	Title    string            `json:"title"`
	Location string            `json:"location"`
	Bio      string            `json:"bio"`
	Skills   []portfolioSkill  `json:"skills"`
	Projects []projectResponse `json:"projects"`
}

// getPortfolio handles GET /portfolio/:slug. The route is public: anyone
// with the slug can view the profile, so the response carries no email,
// phone or account data. Malformed and unknown slugs both answer 404.
func (server *Server) getPortfolio(ctx *gin.Context) {
	notFound := errors.New("portfolio not found")

	slug, err := uuid.Parse(ctx.Param("slug"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(notFound))
		return
	}

	user, err := server.store.GetUserByPortfolioSlug(ctx, pgtype.UUID{Bytes: slug, Valid: true})
	if err != nil {
		if err == pgx.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(notFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	levels, err := server.store.ListUserSkillLevels(ctx, user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	skills := make([]portfolioSkill, 0, len(levels))
	for _, row := range levels {
		skills = append(skills, portfolioSkill{Skill: row.SkillName, Level: row.Level})
	}

	projects, err := server.store.ListProjectsByUser(ctx, user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	projectList := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		projectList = append(projectList, newProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, gin.H{"data": portfolioResponse{
		Name:     user.Name,
		Title:    user.Title.String,
		Location: user.Location.String,
		Bio:      user.Bio.String,
		Skills:   skills,
		Projects: projectList,
	}})
}
