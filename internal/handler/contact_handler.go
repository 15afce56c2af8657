package handler

import (
	"fmt"
	"log"
	"net/http"

	"mocar/internal/models"
	"mocar/internal/repository"
	"mocar/pkg/mailer"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	msgRepo    *repository.MessageRepository
	mail       mailer.Mailer
	adminEmail string
}

func NewContactHandler(msgRepo *repository.MessageRepository, mail mailer.Mailer, adminEmail string) *ContactHandler {
	return &ContactHandler{msgRepo: msgRepo, mail: mail, adminEmail: adminEmail}
}

type contactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone" binding:"required"`
	InquiryType string `json:"inquiryType"`
	Message     string `json:"message" binding:"required"`
}

// Submit persists the inquiry, then notifies the admin by email on a
// best-effort basis. The response only claims full success when both
// happened; a saved row with a failed notification is a 202 so the caller
// does not retry a write that already landed.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing fields")
		return
	}
	msg := &models.Message{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		InquiryType: req.InquiryType,
		Message:     req.Message,
	}
	if err := h.msgRepo.Create(msg); err != nil {
		log.Printf("[contact] save failed: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to save message")
		return
	}

	if !h.mail.Enabled() {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message received (email disabled)"})
		return
	}
	subject := fmt.Sprintf("New Inquiry from %s (%s)", req.Name, req.InquiryType)
	if err := h.mail.Send(c.Request.Context(), h.adminEmail, subject, inquiryEmailBody(&req)); err != nil {
		log.Printf("[contact] notification email failed: %v", err)
		c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Message received (email pending verification)"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
}

func inquiryEmailBody(req *contactRequest) string {
	return fmt.Sprintf(`<h3>New Inquiry Received</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Type:</strong> %s</p>
<br/>
<p><strong>Message:</strong></p>
<p>%s</p>`, req.Name, req.Phone, req.Email, req.InquiryType, req.Message)
}

// List returns all inquiries in store order; the admin panel sorts by
// createdAt client-side.
func (h *ContactHandler) List(c *gin.Context) {
	rows, err := h.msgRepo.List()
	if err != nil {
		log.Printf("[contact] list: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	if rows == nil {
		rows = []models.Message{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, idOK := pathID(c, "id")
	if idOK {
		if err := h.msgRepo.DeleteByID(id); err != nil {
			log.Printf("[contact] delete: %v", err)
			fail(c, http.StatusInternalServerError, "Server error")
			return
		}
	}
	ok(c)
}
