package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/feedhub/feedhub-service/entity"
	"github.com/feedhub/feedhub-service/http/controller/dto"
	"github.com/feedhub/feedhub-service/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const oauthStateCookie = "oauth_state"

// Register creates a local unverified user and queues the verification
// email.
func (ctrl *Controller) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Missing required fields")
		return
	}

	if _, err := ctrl.Repository.UserRepo.FindByEmail(req.Email); err == nil {
		utils.JSON400(c, "Email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to look up email: %v", err)
		utils.JSON500(c, "Server error")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to hash password: %v", err)
		utils.JSON500(c, "Server error")
		return
	}

	token, err := generateVerificationToken()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to generate verification token: %v", err)
		utils.JSON500(c, "Server error")
		return
	}

	user := &entity.User{
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      string(passwordHash),
		IsVerified:        false,
		VerificationToken: &token,
		AuthProvider:      entity.AuthProviderLocal,
	}

	if err := ctrl.Repository.UserRepo.Create(user); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to create user: %v", err)
		utils.JSON500(c, "Server error")
		return
	}

	verifyLink := fmt.Sprintf("%s/verify-email/%s", ctrl.Config.EnvConfig.ExternalService.FrontendURL, token)
	err = ctrl.Infra.Produce.EmailService.SendEmailConfirmation(
		ctx,
		user.Email,
		user.Name,
		"Welcome to FeedHub. Click below to verify your email.",
		verifyLink,
	)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to queue verification email for %s: %v", user.Email, err)
		utils.JSON500(c, "Server error")
		return
	}

	utils.JSON200(c, gin.H{"message": "Check your email to verify account"})
}

// VerifyEmail consumes a single-use verification token.
func (ctrl *Controller) VerifyEmail(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Param("token")
	user, err := ctrl.Repository.UserRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON400(c, "Invalid link")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to look up verification token: %v", err)
		utils.JSON500(c, "Server error")
		return
	}

	if err := ctrl.Repository.UserRepo.MarkVerified(user.ID); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to mark user %s verified: %v", user.ID, err)
		utils.JSON500(c, "Server error")
		return
	}

	utils.JSON200(c, gin.H{"message": "Email verified"})
}

// Login issues a session token for local users. Unknown email and wrong
// password are indistinguishable; federated accounts get a dedicated error.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Missing required fields")
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON400(c, "Invalid credentials")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to look up user: %v", err)
		utils.JSON500(c, "Server error")
		return
	}

	if user.AuthProvider == entity.AuthProviderGoogle {
		utils.JSON400(c, "Please sign in using Google")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.JSON400(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, ctrl.Config.EnvConfig)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to sign token: %v", err)
		utils.JSON500(c, "Server error")
		return
	}

	utils.JSON200(c, gin.H{"token": token})
}

// Me returns the authenticated principal.
func (ctrl *Controller) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON401(c, "Unauthorized")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to load user %s: %v", userID, err)
		utils.JSON500(c, "Server error")
		return
	}

	utils.JSON200(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// GoogleLogin starts the OAuth code flow.
func (ctrl *Controller) GoogleLogin(c *gin.Context) {
	state, err := generateVerificationToken()
	if err != nil {
		utils.JSON500(c, "Server error")
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(302, ctrl.Infra.GoogleOAuth.AuthURL(state))
}

// GoogleCallback finishes the flow: exchange the code, find or create a
// pre-verified federated user, and hand the token back to the frontend via
// the redirect query string.
func (ctrl *Controller) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		utils.JSON400(c, "Invalid OAuth state")
		return
	}

	code := c.Query("code")
	if code == "" {
		utils.JSON400(c, "Missing OAuth code")
		return
	}

	profile, err := ctrl.Infra.GoogleOAuth.FetchProfile(ctx, code)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Google OAuth exchange failed: %v", err)
		utils.JSON500(c, "Server error")
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByEmail(profile.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &entity.User{
			Name:         profile.Name,
			Email:        profile.Email,
			IsVerified:   true,
			AuthProvider: entity.AuthProviderGoogle,
		}
		if err := ctrl.Repository.UserRepo.Create(user); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to create federated user: %v", err)
			utils.JSON500(c, "Server error")
			return
		}
	} else if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to look up federated user: %v", err)
		utils.JSON500(c, "Server error")
		return
	}

	token, err := utils.GenerateToken(user.ID, ctrl.Config.EnvConfig)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to sign token: %v", err)
		utils.JSON500(c, "Server error")
		return
	}

	c.Redirect(302, fmt.Sprintf("%s/oauth-success?token=%s", ctrl.Config.EnvConfig.ExternalService.FrontendURL, token))
}

func generateVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
