// api/project_handler.go

package api

import (
	"errors"
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

type projectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Link        string   `json:"link"`
	Image       string   `json:"image"`
}

type projectResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Link        string   `json:"link,omitempty"`
	Image       string   `json:"image,omitempty"`
}

func newProjectResponse(project db.Project) projectResponse {
	return projectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Tags:        project.Tags,
		StartDate:   project.StartDate.Time.Format("2006-01-02"),
		EndDate:     project.EndDate.Time.Format("2006-01-02"),
		Link:        project.Link.String,
		Image:       project.Image.String,
	}
}

func parseDay(value string) (pgtype.Date, error) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		day, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return pgtype.Date{}, errors.New("invalid date, expected YYYY-MM-DD")
		}
	}
	return pgtype.Date{Time: day, Valid: true}, nil
}

////////////////////////////////////////////////////////////////////////
// Handlers
////////////////////////////////////////////////////////////////////////

// listProjects handles GET /projects.
func (server *Server) listProjects(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	projects, err := server.store.ListProjectsByUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	rsp := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		rsp = append(rsp, newProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, gin.H{"data": rsp})
}

// createProject handles POST /projects.
func (server *Server) createProject(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	var req projectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	start, err := parseDay(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	end, err := parseDay(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	project, err := server.store.CreateProject(ctx, db.CreateProjectParams{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        tags,
		StartDate:   start,
		EndDate:     end,
		Link:        pgtype.Text{String: req.Link, Valid: req.Link != ""},
		Image:       pgtype.Text{String: req.Image, Valid: req.Image != ""},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": newProjectResponse(project)})
}

// updateProject handles PUT /projects/:id.
func (server *Server) updateProject(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	projectID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid project id")))
		return
	}

	var req projectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	start, err := parseDay(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	end, err := parseDay(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	project, err := server.store.GetProject(ctx, projectID)
	if err != nil {
		if err == pgx.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("project not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if project.UserID != userID {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("project not found")))
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	updated, err := server.store.UpdateProject(ctx, db.UpdateProjectParams{
		ID:          projectID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        tags,
		StartDate:   start,
		EndDate:     end,
		Link:        pgtype.Text{String: req.Link, Valid: req.Link != ""},
		Image:       pgtype.Text{String: req.Image, Valid: req.Image != ""},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": newProjectResponse(updated)})
}

// deleteProject handles DELETE /projects/:id.
func (server *Server) deleteProject(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	projectID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid project id")))
		return
	}

	project, err := server.store.GetProject(ctx, projectID)
	if err != nil {
		if err == pgx.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("project not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if project.UserID != userID {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("project not found")))
		return
	}

	if err := server.store.DeleteProject(ctx, projectID); err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}
