package submission

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"creative-edge/internal/domain/portfolio"
	"creative-edge/internal/infra/objectstore"
)

const (
	MsgTitleRequired = "Title is required."
	MsgNoImages      = "Please add at least one image."
	MsgBadCover      = "Cover image selection is invalid."
	MsgPortfolioDone = "Portfolio item created!"
)

type PortfolioForm struct {
	Title       string
	Type        portfolio.Type
	Category    portfolio.Category
	Description string
	TagsText    string
	Images      []File
	CoverIndex  int
}

// SubmitPortfolio validates form, writes a placeholder item, uploads every
// image in order under the item's id and then patches in the URLs. It returns
// the item id, which is set even when a later step failed.
func (f *Flow) SubmitPortfolio(ctx context.Context, form PortfolioForm, progress Progress) (string, error) {
	if strings.TrimSpace(form.Title) == "" {
		return "", invalid(MsgTitleRequired)
	}
	if len(form.Images) == 0 {
		return "", invalid(MsgNoImages)
	}
	if form.CoverIndex < 0 || form.CoverIndex >= len(form.Images) {
		return "", invalid(MsgBadCover)
	}

	fields := portfolio.PlaceholderFields(form.Title, form.Type, form.Category, form.Description, portfolio.ParseTags(form.TagsText))
	id, err := f.records.Create(ctx, portfolio.Collection, fields)
	if err != nil {
		return "", err
	}

	urls := make([]string, 0, len(form.Images))
	for i, img := range form.Images {
		path := objectstore.PortfolioPath(id, f.now(), i, img.Name)
		url, err := f.upload(ctx, img, path)
		if err != nil {
			f.log.Warn("portfolio upload failed, placeholder left in place",
				zap.String("item_id", id), zap.Int("index", i), zap.Error(err))
			return id, err
		}
		urls = append(urls, url)
		report(progress, fmt.Sprintf("Uploaded %d/%d...", i+1, len(form.Images)))
	}

	patch, _ := portfolio.ImagesPatch(urls, form.CoverIndex)
	if err := f.records.Update(ctx, portfolio.Collection, id, patch, f.now()); err != nil {
		return id, err
	}

	report(progress, MsgPortfolioDone)
	f.log.Info("portfolio item created", zap.String("item_id", id), zap.Int("images", len(urls)))
	return id, nil
}
