// api/resume_handler.go

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

////////////////////////////////////////////////////////////////////////
// Resume Export: /resume
////////////////////////////////////////////////////////////////////////

type resumeResponse struct {
	Name     string            `json:"name"`
	Headline string            `json:"headline"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	Location string            `json:"location"`
	Summary  string            `json:"summary"`
	Skills   []portfolioSkill  `json:"skills"`
	Projects []projectResponse `json:"projects"`
}

// getResume handles GET /resume: the caller's profile, current skill levels
// and projects assembled into one document for the client-side exporter.
// The headline is title-cased so a lowercase profile title still renders
// cleanly on the rendered resume.
func (server *Server) getResume(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	user, err := server.store.GetUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	levels, err := server.store.ListUserSkillLevels(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	skills := make([]portfolioSkill, 0, len(levels))
	for _, row := range levels {
		skills = append(skills, portfolioSkill{Skill: row.SkillName, Level: row.Level})
	}

	projects, err := server.store.ListProjectsByUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	projectList := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		projectList = append(projectList, newProjectResponse(project))
	}

	titleCaser := cases.Title(language.English)

	ctx.JSON(http.StatusOK, gin.H{"data": resumeResponse{
		Name:     user.Name,
		Headline: titleCaser.String(user.Title.String),
		Email:    user.Email,
		Phone:    user.Phone.String,
		Location: user.Location.String,
		Summary:  user.Bio.String,
		Skills:   skills,
		Projects: projectList,
	}})
}
