// api/job_handler.go

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/skillplot/skillplot/db/sqlc"
	"github.com/skillplot/skillplot/match"
)

////////////////////////////////////////////////////////////////////////
// Local Job Catalog: /jobs
////////////////////////////////////////////////////////////////////////

type createJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Company     string   `json:"company" binding:"required"`
	Tags        []string `json:"tags"`
	Location    string   `json:"location" binding:"required"`
	Salary      string   `json:"salary"`
	Description string   `json:"description"`
}

// listJobs handles GET /jobs.
func (server *Server) listJobs(ctx *gin.Context) {
	jobs, err := server.store.ListJobs(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": jobs})
}

// createJob handles POST /jobs: adds a posting to the local catalog.
func (server *Server) createJob(ctx *gin.Context) {
	var req createJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	job, err := server.store.CreateJob(ctx, db.CreateJobParams{
		Title:       req.Title,
		Company:     req.Company,
		Tags:        tags,
		Location:    req.Location,
		Salary:      pgtype.Text{String: req.Salary, Valid: req.Salary != ""},
		Description: pgtype.Text{String: req.Description, Valid: req.Description != ""},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": job})
}

////////////////////////////////////////////////////////////////////////
// Catalog Matching: /jobs/match
////////////////////////////////////////////////////////////////////////

// canonicalJob converts a stored catalog row into the posting shape the
// scorer consumes.
func canonicalJob(job db.Job) match.JobPosting {
	return match.JobPosting{
		ID:          strconv.FormatInt(job.ID, 10),
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Salary:      job.Salary.String,
		Description: job.Description.String,
		Tags:        job.Tags,
	}
}

// matchStoredJobs handles GET /jobs/match: every catalog posting scored
// against the caller's skills, best matches first.
func (server *Server) matchStoredJobs(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	skillNames, err := server.userSkillNames(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	jobs, err := server.store.ListJobs(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	postings := make([]match.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		postings = append(postings, canonicalJob(job))
	}

	matches := match.ScoreAll(skillNames, postings)
	match.SortByScore(matches)

	ctx.JSON(http.StatusOK, gin.H{"data": matches})
}
