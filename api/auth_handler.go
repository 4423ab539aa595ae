// api/auth_handler.go

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/skillplot/skillplot/db/sqlc"
	"github.com/skillplot/skillplot/util"
)

////////////////////////////////////////////////////////////////////////
// Register Endpoint (Public): /auth/register
////////////////////////////////////////////////////////////////////////

type registerUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

// userResponse is the public view of a user; it never carries the password
// hash.
type userResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Title         string `json:"title"`
	Location      string `json:"location"`
	Phone         string `json:"phone"`
	Bio           string `json:"bio"`
	PortfolioSlug string `json:"portfolio_slug"`
}

func newUserResponse(user db.User) userResponse {
	slug := uuid.UUID(user.PortfolioSlug.Bytes)
	return userResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Title:         user.Title.String,
		Location:      user.Location.String,
		Phone:         user.Phone.String,
		Bio:           user.Bio.String,
		PortfolioSlug: slug.String(),
	}
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// registerUser creates an account and immediately returns an access token,
// so the client can log the new user straight in.
func (server *Server) registerUser(ctx *gin.Context) {
	var req registerUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Reject duplicate emails with a clear message instead of surfacing the
	// unique-constraint error.
	if _, err := server.store.GetUserByEmail(ctx, req.Email); err == nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("user already exists")))
		return
	} else if err != pgx.ErrNoRows {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	user, err := server.store.CreateUser(ctx, db.CreateUserParams{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  hash,
		Title:         pgtype.Text{String: req.Title, Valid: req.Title != ""},
		Location:      pgtype.Text{String: req.Location, Valid: req.Location != ""},
		PortfolioSlug: pgtype.UUID{Bytes: uuid.New(), Valid: true},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	tokenString, err := server.tokenMaker.CreateToken(user.ID, server.config.AccessTokenDuration)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, authResponse{
		Token: tokenString,
		User:  newUserResponse(user),
	})
}

////////////////////////////////////////////////////////////////////////
// Login Endpoint (Public): /auth/login
////////////////////////////////////////////////////////////////////////

type loginUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// loginUser authenticates a user by email and password and returns a signed
// JWT on success. Lookup and password failures both answer with the same
// message so the endpoint does not leak which emails exist.
func (server *Server) loginUser(ctx *gin.Context) {
	var req loginUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	invalidCredentials := errors.New("invalid credentials")

	user, err := server.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			ctx.JSON(http.StatusUnauthorized, errorResponse(invalidCredentials))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if err := util.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(invalidCredentials))
		return
	}

	tokenString, err := server.tokenMaker.CreateToken(user.ID, server.config.AccessTokenDuration)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, authResponse{
		Token: tokenString,
		User:  newUserResponse(user),
	})
}
