package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"kaamconnect/internal/middleware"
	"kaamconnect/internal/registry"
	"kaamconnect/internal/session"
)

// Handler wires the HTTP boundary to the account registry and the session
// table.
type Handler struct {
	registry *registry.Service
	sessions *session.Manager
}

func New(reg *registry.Service, mgr *session.Manager) *Handler {
	return &Handler{registry: reg, sessions: mgr}
}

func (h *Handler) CustomerSignup(c *gin.Context) {
	var req registry.CustomerSignup
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request data", "/customer")
		return
	}

	if _, err := h.registry.SignupCustomer(req); err != nil {
		signupFailure(c, err, "/customer", "All fields are required!")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Account created successfully! Please sign in.",
		"redirect": "/customer/signin",
	})
}

func (h *Handler) ContractorSignup(c *gin.Context) {
	var req registry.ContractorSignup
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request data", "/contractor")
		return
	}

	if _, err := h.registry.SignupContractor(req); err != nil {
		signupFailure(c, err, "/contractor", "All fields are required!")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Contractor account created successfully! Please sign in.",
		"redirect": "/contractor/signin",
	})
}

func (h *Handler) LabourerSignup(c *gin.Context) {
	var req registry.LabourerSignup
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request data", "/labourer")
		return
	}

	if _, err := h.registry.SignupLabourer(req); err != nil {
		signupFailure(c, err, "/labourer", "All fields except email are required!")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Labourer account created successfully! Please sign in.",
		"redirect": "/labourer/signin",
	})
}

func (h *Handler) CustomerSignin(c *gin.Context) {
	var req registry.SigninRequest
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request data", "/customer/signin")
		return
	}

	id, err := h.registry.SigninCustomer(req.Identifier, req.Password)
	if err != nil {
		signinFailure(c, err, "/customer/signin", "Invalid credentials! Please check your email/phone and password.")
		return
	}

	h.establishSession(c, id)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Welcome back, " + id.Name + "!",
		"redirect": "/dashboard/customer",
	})
}

func (h *Handler) ContractorSignin(c *gin.Context) {
	var req registry.SigninRequest
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request data", "/contractor/signin")
		return
	}

	id, err := h.registry.SigninContractor(req.Identifier, req.Password)
	if err != nil {
		signinFailure(c, err, "/contractor/signin", "Invalid credentials! Please check your email/phone and password.")
		return
	}

	h.establishSession(c, id)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Welcome back, " + id.Name + "!",
		"redirect": "/dashboard/contractor",
	})
}

func (h *Handler) LabourerSignin(c *gin.Context) {
	var req registry.SigninRequest
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request data", "/labourer/signin")
		return
	}

	id, err := h.registry.SigninLabourer(req.Identifier, req.Password)
	if err != nil {
		signinFailure(c, err, "/labourer/signin", "Invalid credentials! Please check your phone/email and password.")
		return
	}

	h.establishSession(c, id)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Welcome back, " + id.Name + "!",
		"redirect": "/dashboard/labourer",
	})
}

func (h *Handler) AdminSignin(c *gin.Context) {
	var req registry.AdminSignin
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request data", "/admin")
		return
	}

	id, err := h.registry.SigninAdmin(req.Username, req.Password)
	if err != nil {
		signinFailure(c, err, "/admin", "Invalid admin credentials!")
		return
	}

	h.establishSession(c, id)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Admin login successful!",
		"redirect": "/dashboard/admin",
	})
}

// Logout drops the server-side session and clears the cookie. It succeeds
// regardless of prior state.
func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	if sid, ok := sess.Get(middleware.SessionIDKey).(string); ok {
		h.sessions.Revoke(sid)
	}
	sess.Clear()
	_ = sess.Save()

	c.JSON(http.StatusOK, gin.H{
		"message":  "You have been logged out successfully.",
		"redirect": "/",
	})
}

func (h *Handler) establishSession(c *gin.Context, id registry.Identity) {
	s := h.sessions.Issue(id.UserID, id.Role, id.Name, id.Email)

	sess := sessions.Default(c)
	sess.Set(middleware.SessionIDKey, s.ID)
	_ = sess.Save()
}
