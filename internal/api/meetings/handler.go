package meetings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"creative-edge/internal/app/submission"
	"creative-edge/internal/apperrors"
	"creative-edge/internal/domain/meetings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Notifier interface {
	Notify(ctx context.Context, r meetings.Request) error
}

type Submitter interface {
	SubmitMeeting(ctx context.Context, req meetings.Request, photo *submission.File, progress submission.Progress) error
}

type Handler struct {
	notifier Notifier
	flow     Submitter
	log      *zap.Logger
}

func NewHandler(notifier Notifier, flow Submitter, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{notifier: notifier, flow: flow, log: log}
}

// ------------------------------
// ANY /request-meeting  (JSON)
// ------------------------------
func (h *Handler) RequestMeeting(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var body map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body."})
		return
	}
	// a literal null is an empty request, not a malformed one
	if body == nil {
		body = map[string]any{}
	}

	req, err := meetings.FromBody(body)
	if err != nil {
		var verr *meetings.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": verr.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if err := h.notifier.Notify(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": orServerError(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ------------------------------
// POST /request-meeting/form  (multipart, optional "photo")
// ------------------------------
func (h *Handler) SubmitForm(c *gin.Context) {
	req := meetings.Request{
		FirstName:     c.PostForm("firstName"),
		LastName:      c.PostForm("lastName"),
		Email:         c.PostForm("email"),
		Phone:         c.PostForm("phone"),
		BusinessName:  c.PostForm("businessName"),
		AddressLine1:  c.PostForm("addressLine1"),
		City:          c.PostForm("city"),
		State:         c.PostForm("state"),
		Zip:           c.PostForm("zip"),
		PreferredDate: c.PostForm("preferredDate"),
		PreferredTime: c.PostForm("preferredTime"),
		Comments:      c.PostForm("comments"),
	}

	var photo *submission.File
	if fh, err := c.FormFile("photo"); err == nil {
		f := submission.FromFileHeader(fh)
		photo = &f
	}

	var steps []string
	err := h.flow.SubmitMeeting(c.Request.Context(), req, photo, func(s string) {
		steps = append(steps, s)
	})
	if steps == nil {
		steps = []string{}
	}

	if err != nil {
		var verr *submission.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "status": verr.Message, "steps": steps})
			return
		}
		h.log.Error("meeting form failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":     false,
			"status": apperrors.Describe(err, "Failed to send request."),
			"steps":  steps,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "status": submission.MsgMeetingDone, "steps": steps})
}

func orServerError(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Server error"
}
