package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type createTaskRequest struct {
	Title string `json:"title"`
}

func (s *HTTPServer) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, message(msgInvalidBody))
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.abortWithError(c, err, msgMissingFields)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, message(msgRegistered))
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, message(msgInvalidBody))
		return
	}

	res, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.abortWithError(c, err, msgInvalidCredentials)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token: res.Token,
		User: userResponse{
			ID:       res.User.ID,
			Username: res.User.UserName,
			Email:    res.User.Email,
		},
	})
}

func (s *HTTPServer) logout(c *gin.Context) {
	if err := s.users.Logout(c.Request.Context(), tokenIDFrom(c)); err != nil {
		s.abortWithError(c, err, msgInvalidBody)
		return
	}
	c.JSON(http.StatusOK, message(msgLoggedOut))
}

func (s *HTTPServer) listTasks(c *gin.Context) {
	ownerID, ok := identityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, message(msgNoToken))
		return
	}

	list, err := s.tasks.List(c.Request.Context(), ownerID)
	if err != nil {
		s.abortWithError(c, err, msgInvalidBody)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *HTTPServer) createTask(c *gin.Context) {
	ownerID, ok := identityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, message(msgNoToken))
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, message(msgInvalidBody))
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), ownerID, req.Title)
	if err != nil {
		s.abortWithError(c, err, msgTitleRequired)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// completeTask ignores the request body: the only exposed mutation is
// marking the task as completed.
func (s *HTTPServer) completeTask(c *gin.Context) {
	ownerID, ok := identityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, message(msgNoToken))
		return
	}

	task, err := s.tasks.Complete(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		s.abortWithError(c, err, msgInvalidBody)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *HTTPServer) deleteTask(c *gin.Context) {
	ownerID, ok := identityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, message(msgNoToken))
		return
	}

	if _, err := s.tasks.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		s.abortWithError(c, err, msgInvalidBody)
		return
	}
	c.JSON(http.StatusOK, message(msgTaskDeleted))
}
