package portfolio

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"creative-edge/internal/app/submission"
	"creative-edge/internal/apperrors"
	"creative-edge/internal/domain/portfolio"
	"creative-edge/internal/infra/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

type RecordReader interface {
	List(ctx context.Context, collection string, maxCount int) ([]store.Record, error)
	Get(ctx context.Context, collection, id string) (store.Record, bool, error)
}

type Submitter interface {
	SubmitPortfolio(ctx context.Context, form submission.PortfolioForm, progress submission.Progress) (string, error)
}

type Handler struct {
	records RecordReader
	flow    Submitter
	log     *zap.Logger
}

func NewHandler(records RecordReader, flow Submitter, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{records: records, flow: flow, log: log}
}

// ------------------------------
// GET /portfolio?type=&category=&limit=
// Filters apply to the latest MaxLimit records; limit caps the result.
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit."})
			return
		}
		limit = min(n, MaxLimit)
	}

	var wantType portfolio.Type
	if raw := c.Query("type"); raw != "" {
		t, ok := portfolio.ParseType(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type."})
			return
		}
		wantType = t
	}

	var wantCategory portfolio.Category
	if raw := c.Query("category"); raw != "" {
		cat, ok := portfolio.ParseCategory(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category."})
			return
		}
		wantCategory = cat
	}

	fetch := limit
	if wantType != "" || wantCategory != "" {
		fetch = MaxLimit
	}

	recs, err := h.records.List(c.Request.Context(), portfolio.Collection, fetch)
	if err != nil {
		h.log.Error("portfolio list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.Describe(err, "Failed to load portfolio.")})
		return
	}

	out := ListDTO{Items: make([]CardDTO, 0, min(len(recs), limit))}
	for _, rec := range recs {
		if len(out.Items) == limit {
			break
		}
		if rec.ID == "" {
			continue
		}
		it, err := portfolio.FromRecord(rec)
		if err != nil {
			h.log.Warn("skipping undecodable portfolio record", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		if wantType != "" && it.Type != wantType {
			continue
		}
		if wantCategory != "" && it.Category != wantCategory {
			continue
		}
		out.Items = append(out.Items, toCardDTO(it))
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /portfolio/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	rec, found, err := h.records.Get(c.Request.Context(), portfolio.Collection, c.Param("id"))
	if err != nil {
		h.log.Error("portfolio get failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.Describe(err, "Failed to load item.")})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
		return
	}

	it, err := portfolio.FromRecord(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load item."})
		return
	}
	c.JSON(http.StatusOK, toDetailDTO(it))
}

// ------------------------------
// POST /admin/portfolio (multipart)
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	form := submission.PortfolioForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		TagsText:    c.PostForm("tags"),
	}

	// unknown values fall back to the form's defaults
	form.Type = portfolio.TypeMural
	if t, ok := portfolio.ParseType(c.PostForm("type")); ok {
		form.Type = t
	}
	form.Category = portfolio.CategoryIndoor
	if cat, ok := portfolio.ParseCategory(c.PostForm("category")); ok {
		form.Category = cat
	}

	if raw := strings.TrimSpace(c.PostForm("coverIndex")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			n = -1
		}
		form.CoverIndex = n
	}

	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for _, fh := range mf.File["images"] {
			form.Images = append(form.Images, submission.FromFileHeader(fh))
		}
	}

	var steps []string
	id, err := h.flow.SubmitPortfolio(c.Request.Context(), form, func(s string) {
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
		h.log.Error("portfolio create failed", zap.String("item_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, CreateResponse{
			ID:     id,
			Status: apperrors.Describe(err, "Upload failed."),
			Steps:  steps,
		})
		return
	}

	c.JSON(http.StatusCreated, CreateResponse{OK: true, ID: id, Status: submission.MsgPortfolioDone, Steps: steps})
}
