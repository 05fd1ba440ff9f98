package checkout

import (
	"errors"
	"net/http"

	"eventhub/internal/domain"
	"eventhub/internal/modules/payment"
	"eventhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	users   userReader
}

func NewHandler(service *Service, users userReader) *Handler {
	return &Handler{service: service, users: users}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/checkout/sessions")
	{
		g.POST("", h.StartSession)
		g.GET("/:id", h.GetSession)
		g.PUT("/:id/method", h.SelectMethod)
		g.PUT("/:id/card", h.EnterCard)
		g.PUT("/:id/upi", h.EnterHandle)
		g.POST("/:id/upi/verify", h.VerifyHandle)
		g.POST("/:id/commit", h.Commit)
	}
}

func (h *Handler) StartSession(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.StartSession(c.Request.Context(), userID, req.EventID, req.TicketCount)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.Error(c, http.StatusNotFound, "EVENT_NOT_FOUND", "Event not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start checkout")
		return
	}

	response.Success(c, http.StatusCreated, toSessionResponse(sess))
}

func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, toSessionResponse(sess))
}

func (h *Handler) SelectMethod(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req SelectMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := sess.SelectMethod(domain.PaymentMethod(req.Method)); err != nil {
		response.Error(c, http.StatusBadRequest, "UNKNOWN_METHOD", "Unsupported payment method")
		return
	}

	response.Success(c, http.StatusOK, toSessionResponse(sess))
}

func (h *Handler) EnterCard(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	card, err := sess.EnterCard(req.Number, req.Holder, req.Expiry, req.CVV)
	if err != nil {
		response.Error(c, http.StatusConflict, "NO_METHOD_SELECTED", "Select the card method first")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"card":  card,
		"state": sess.State().String(),
	})
}

func (h *Handler) EnterHandle(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req UPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := sess.EnterHandle(req.Handle); err != nil {
		response.Error(c, http.StatusConflict, "NO_METHOD_SELECTED", "Select the UPI method first")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"state": sess.State().String()})
}

func (h *Handler) VerifyHandle(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	if err := sess.VerifyHandle(); err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidHandle):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_UPI_ID", "Please enter a valid UPI ID")
		default:
			response.Error(c, http.StatusConflict, "NO_METHOD_SELECTED", "Select the UPI method first")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"state": sess.State().String()})
}

func (h *Handler) Commit(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	identity, err := h.identity(c, userID)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	b, err := h.service.Commit(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Checkout session not found")
		case errors.Is(err, ErrNotAuthenticated):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		case errors.Is(err, ErrNotSubmittable):
			response.Error(c, http.StatusUnprocessableEntity, "NOT_SUBMITTABLE", "Payment details incomplete or unverified")
		case errors.Is(err, ErrCommitInFlight):
			response.Error(c, http.StatusConflict, "COMMIT_IN_FLIGHT", "A payment is already being processed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Payment failed. Please try again.")
		}
		return
	}

	response.Success(c, http.StatusCreated, CommitResponse{
		BookingID:     b.BookingID,
		TotalAmount:   b.TotalAmount,
		PaymentMethod: string(b.PaymentMethod),
		PaymentStatus: string(b.PaymentStatus),
	})
}

func (h *Handler) session(c *gin.Context) (*Session, bool) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return nil, false
	}

	sess, err := h.service.Session(userID, c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Checkout session not found")
		return nil, false
	}
	return sess, true
}

func (h *Handler) identity(c *gin.Context, userID int64) (*Identity, error) {
	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		return nil, err
	}
	return &Identity{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}
