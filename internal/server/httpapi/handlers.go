package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealsnap/mealsnap/internal/server/models"
	"github.com/mealsnap/mealsnap/internal/server/services"
)

type signUpAccount struct {
	Name     string `json:"name" binding:"required,min=1"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type signUpRequest struct {
	Goal          string        `json:"goal" binding:"required,oneof=lose maintain gain"`
	Gender        string        `json:"gender" binding:"required,oneof=male female"`
	BirthDate     string        `json:"birthDate" binding:"required,datetime=2006-01-02"`
	Height        float64       `json:"height" binding:"required,gt=0"`
	Weight        float64       `json:"weight" binding:"required,gt=0"`
	ActivityLevel int           `json:"activityLevel" binding:"required,min=1,max=5"`
	Account       signUpAccount `json:"account" binding:"required"`
}

func (s *Server) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	user, err := s.users.SignUp(c.Request.Context(), &services.SignUpParams{
		Name:          req.Account.Name,
		Email:         req.Account.Email,
		Password:      req.Account.Password,
		Goal:          req.Goal,
		Gender:        req.Gender,
		BirthDate:     birthDate,
		Height:        req.Height,
		Weight:        req.Weight,
		ActivityLevel: req.ActivityLevel,
	})
	if err != nil {
		s.logger.Error(c.Request.Context(), "sign-up failed", "error", err.Error())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"userId": user.ID})
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, err := s.users.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

type createMealRequest struct {
	FileType string `json:"fileType" binding:"required"`
}

func (s *Server) createMeal(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req createMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	meal, uploadURL, err := s.meals.Register(c.Request.Context(), userID, req.FileType)
	if err != nil {
		s.logger.Error(c.Request.Context(), "meal registration failed", "error", err.Error())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mealId": meal.ID, "uploadURL": uploadURL})
}

type mealResponse struct {
	ID        string        `json:"id"`
	Status    string        `json:"status"`
	InputType string        `json:"inputType"`
	Name      string        `json:"name"`
	Icon      string        `json:"icon"`
	Foods     []models.Food `json:"foods"`
	CreatedAt time.Time     `json:"createdAt"`
}

func toMealResponse(m *models.Meal) mealResponse {
	foods := m.Foods
	if foods == nil {
		foods = []models.Food{}
	}
	return mealResponse{
		ID:        m.ID,
		Status:    m.Status,
		InputType: m.InputType,
		Name:      m.Name,
		Icon:      m.Icon,
		Foods:     foods,
		CreatedAt: m.CreatedAt,
	}
}

func (s *Server) getMealByID(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		unauthorized(c)
		return
	}

	meal, err := s.meals.GetByID(c.Request.Context(), userID, c.Param("mealId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": toMealResponse(meal)})
}

func (s *Server) listMeals(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		unauthorized(c)
		return
	}

	meals, err := s.meals.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]mealResponse, 0, len(meals))
	for _, m := range meals {
		out = append(out, toMealResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{"meals": out})
}
