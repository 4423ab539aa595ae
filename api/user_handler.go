// api/user_handler.go

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/skillplot/skillplot/db/sqlc"
	"github.com/skillplot/skillplot/util"
)

// getCurrentUser handles GET /users/me.
func (server *Server) getCurrentUser(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	user, err := server.store.GetUser(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// The account was deleted after the token was issued.
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

////////////////////////////////////////////////////////////////////////

type updateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}

// updateCurrentUser handles PUT /users/me.
func (server *Server) updateCurrentUser(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	var req updateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	current, err := server.store.GetUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Changing the email must not collide with another account.
	if req.Email != current.Email {
		if _, err := server.store.GetUserByEmail(ctx, req.Email); err == nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("email already exists")))
			return
		} else if err != pgx.ErrNoRows {
			ctx.JSON(http.StatusInternalServerError, errorResponse(err))
			return
		}
	}

	user, err := server.store.UpdateUser(ctx, db.UpdateUserParams{
		ID:       userID,
		Name:     req.Name,
		Email:    req.Email,
		Title:    pgtype.Text{String: req.Title, Valid: req.Title != ""},
		Location: pgtype.Text{String: req.Location, Valid: req.Location != ""},
		Phone:    pgtype.Text{String: req.Phone, Valid: req.Phone != ""},
		Bio:      pgtype.Text{String: req.Bio, Valid: req.Bio != ""},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

////////////////////////////////////////////////////////////////////////

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// changePassword handles PUT /users/me/password. The current password must
// be supplied and verified before the hash is replaced.
func (server *Server) changePassword(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	var req changePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.store.GetUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if err := util.CheckPasswordHash(req.CurrentPassword, user.PasswordHash); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("current password is incorrect")))
		return
	}

	hash, err := util.HashPassword(req.NewPassword)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	err = server.store.UpdateUserPassword(ctx, db.UpdateUserPasswordParams{
		ID:           userID,
		PasswordHash: hash,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
}

////////////////////////////////////////////////////////////////////////

type deleteUserRequest struct {
	Password string `json:"password" binding:"required"`
}

// deleteCurrentUser handles DELETE /users/me. Deleting an account requires
// the password; skills, projects and proficiency history cascade with it.
func (server *Server) deleteCurrentUser(ctx *gin.Context) {
	userID, err := authUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	var req deleteUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.store.GetUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if err := util.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("password is incorrect")))
		return
	}

	if err := server.store.DeleteUser(ctx, userID); err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "account deleted successfully"})
}
