package media

import (
	"context"
	"errors"
	"net/http"

	"creative-edge/internal/app/submission"
	"creative-edge/internal/apperrors"
	"creative-edge/internal/domain/media"
	"creative-edge/internal/infra/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ListLimit = 100

type RecordLister interface {
	List(ctx context.Context, collection string, maxCount int) ([]store.Record, error)
}

type Submitter interface {
	SubmitMedia(ctx context.Context, form submission.MediaForm, progress submission.Progress) (string, error)
}

type Handler struct {
	records RecordLister
	flow    Submitter
	log     *zap.Logger
}

func NewHandler(records RecordLister, flow Submitter, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{records: records, flow: flow, log: log}
}

// GET /media
func (h *Handler) List(c *gin.Context) {
	recs, err := h.records.List(c.Request.Context(), media.Collection, ListLimit)
	if err != nil {
		h.log.Error("media list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.Describe(err, "Failed to load media.")})
		return
	}

	out := ListDTO{Items: make([]ItemDTO, 0, len(recs))}
	for _, rec := range recs {
		it, err := media.FromRecord(rec)
		if err != nil {
			h.log.Warn("skipping undecodable media record", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		if it.Kind == "" {
			h.log.Warn("skipping media record with unknown type", zap.String("id", rec.ID))
			continue
		}
		out.Items = append(out.Items, toItemDTO(it))
	}
	c.JSON(http.StatusOK, out)
}

// POST /admin/media (multipart): mode=audio|youtube, title, audio file or youtube URL/id
func (h *Handler) Create(c *gin.Context) {
	form := submission.MediaForm{
		Kind:           media.KindAudio,
		Title:          c.PostForm("title"),
		YouTubeURLOrID: c.PostForm("youtube"),
	}
	if k, ok := media.ParseKind(c.PostForm("mode")); ok {
		form.Kind = k
	}
	if fh, err := c.FormFile("audio"); err == nil {
		f := submission.FromFileHeader(fh)
		form.Audio = &f
	}

	var steps []string
	id, err := h.flow.SubmitMedia(c.Request.Context(), form, func(s string) {
		steps = append(steps, s)
	})
	if steps == nil {
		steps = []string{}
	}

	if err != nil {
		var verr *submission.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, CreateResponse{Status: verr.Message, Steps: steps})
			return
		}
		h.log.Error("media create failed", zap.String("item_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, CreateResponse{
			ID:     id,
			Status: apperrors.Describe(err, "Failed."),
			Steps:  steps,
		})
		return
	}

	status := submission.MsgAudioDone
	if form.Kind == media.KindYouTube {
		status = submission.MsgYouTubeDone
	}
	c.JSON(http.StatusCreated, CreateResponse{OK: true, ID: id, Status: status, Steps: steps})
}
