package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/util"
	"errors"

	"gorm.io/gorm"
)

// toPage 把查询结果映射为分页 DTO
func toPage[M any, D any](items []*M, total int64, q dto.ListQuery, shape func(*M) D) *dto.PageDTO[D] {
	q.Normalize()
	rows := make([]D, 0, len(items))
	for _, m := range items {
		rows = append(rows, shape(m))
	}
	return dto.NewPage(rows, total, q)
}

// writeErr 唯一键冲突统一转换为 ErrDuplicate
func writeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func authorName(u *model.User) string {
	if u == nil || u.Username == "" {
		return consts.AnonymousAuthor
	}
	return u.Username
}

func toUserRow(u *model.User) dto.UserRowDTO {
	return dto.UserRowDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     util.DerefString(u.Email),
		Phone:     util.DerefString(u.Phone),
		Nickname:  u.Nickname,
		IsActive:  u.IsActive,
		Points:    u.Points,
		Level:     u.Level,
		CreatedAt: util.FormatTime(u.CreatedAt, consts.TimeLayout),
	}
}

func toPostRow(p *model.Post) dto.PostRowDTO {
	return dto.PostRowDTO{
		ID:           p.ID,
		Title:        p.Title,
		Category:     p.Category,
		Author:       authorName(p.Author),
		ViewCount:    p.ViewCount,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		IsPinned:     p.IsPinned,
		Status:       p.Status,
		CreatedAt:    util.FormatTime(p.CreatedAt, consts.TimeLayout),
	}
}

func toProductRow(p *model.Product) dto.ProductRowDTO {
	return dto.ProductRowDTO{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		Stock:      p.Stock,
		SalesCount: p.SalesCount,
		Rating:     p.Rating,
		Status:     p.Status,
		CreatedAt:  util.FormatTime(p.CreatedAt, consts.TimeLayout),
	}
}

func toOrderRow(o *model.Order) dto.OrderRowDTO {
	user := consts.UnknownUser
	if o.User != nil && o.User.Username != "" {
		user = o.User.Username
	}
	return dto.OrderRowDTO{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		User:          user,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     util.FormatTime(o.CreatedAt, consts.TimeLayout),
	}
}

func toEncyclopediaRow(e *model.EncyclopediaContent) dto.EncyclopediaRowDTO {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.EncyclopediaRowDTO{
		ID:        e.ID,
		Title:     e.Title,
		Category:  e.Category,
		Tags:      tags,
		ViewCount: e.ViewCount,
		LikeCount: e.LikeCount,
		Status:    e.Status,
		CreatedAt: util.FormatTime(e.CreatedAt, consts.TimeLayout),
	}
}

func toTutorialRow(t *model.Tutorial) dto.TutorialRowDTO {
	return dto.TutorialRowDTO{
		ID:              t.ID,
		Title:           t.Title,
		Category:        t.Category,
		VideoURL:        t.VideoURL,
		ThumbnailURL:    t.ThumbnailURL,
		Duration:        t.Duration,
		DifficultyLevel: t.DifficultyLevel,
		ViewCount:       t.ViewCount,
		Status:          t.Status,
		CreatedAt:       util.FormatTime(t.CreatedAt, consts.TimeLayout),
	}
}

func toProfile(u *model.User) dto.UserProfileDTO {
	return dto.UserProfileDTO{
		ID:       u.ID,
		Username: u.Username,
		Nickname: u.Nickname,
		Email:    util.DerefString(u.Email),
		Phone:    util.DerefString(u.Phone),
		Avatar:   orDefault(u.Avatar, consts.DefaultAvatarURL),
		Bio:      u.Bio,
		Points:   u.Points,
		Level:    u.Level,
	}
}
